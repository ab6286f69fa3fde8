// task_summary.go defines the count_tasks tool types and the aggregate
// counts shared by every tool output.
package main

// CountTasksArgs is the input for the count_tasks tool. No arguments needed.
type CountTasksArgs struct{}

// CountTasksOutput wraps the aggregate counts.
type CountTasksOutput struct {
	Counts TaskCounts `json:"counts"`
}

// TaskCounts provides aggregate counts across the whole list.
// Active + Completed == Total.
type TaskCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

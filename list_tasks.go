// list_tasks.go defines the list_tasks and get_task tool types.
package main

// ListTasksArgs is the input for the list_tasks tool.
type ListTasksArgs struct {
	Status string `json:"status,omitempty" jsonschema:"One of all, active, completed. Empty means all."`
}

// ListTasksOutput holds the filtered view, newest first, plus counts for the
// whole list (not just the filtered subset).
type ListTasksOutput struct {
	Status Status     `json:"status"`
	Tasks  []TaskView `json:"tasks"`
	Counts TaskCounts `json:"counts"`
}

// GetTaskArgs is the input for the get_task tool.
type GetTaskArgs struct {
	TaskIDs []string `json:"task_ids" jsonschema:"Task IDs to look up"`
}

// GetTaskOutput has one entry per requested ID, in request order.
type GetTaskOutput struct {
	Results []TaskResult `json:"results"`
}

// TaskResult is either a found task or a not_found marker for the ID.
type TaskResult struct {
	ID    string    `json:"id"`
	Found bool      `json:"found"`
	Task  *TaskView `json:"task,omitempty"`
	Error string    `json:"error,omitempty"`
}

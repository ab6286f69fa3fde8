// add_task.go defines the add_task tool types.
package main

// AddTaskArgs is the input for the add_task tool.
type AddTaskArgs struct {
	Title       string `json:"title"                 jsonschema:"Task title. Surrounding whitespace is trimmed; must not be empty."`
	Description string `json:"description,omitempty" jsonschema:"Optional details. Dropped if empty after trimming."`
}

// AddTaskOutput reports the created task. Added is false (and Task nil)
// when the title was empty.
type AddTaskOutput struct {
	Added  bool       `json:"added"`
	Task   *TaskView  `json:"task,omitempty"`
	Counts TaskCounts `json:"counts"`
}

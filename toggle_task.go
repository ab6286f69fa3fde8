// toggle_task.go defines the toggle_task and delete_task tool types.
package main

// ToggleTaskArgs is the input for the toggle_task tool.
type ToggleTaskArgs struct {
	TaskID string `json:"task_id" jsonschema:"ID of the task whose completion flag should flip"`
}

// ToggleTaskOutput reports the task after the flip. Toggled is false when
// no task had that ID.
type ToggleTaskOutput struct {
	Toggled bool       `json:"toggled"`
	Task    *TaskView  `json:"task,omitempty"`
	Counts  TaskCounts `json:"counts"`
}

// DeleteTaskArgs is the input for the delete_task tool.
type DeleteTaskArgs struct {
	TaskID string `json:"task_id" jsonschema:"ID of the task to remove permanently"`
}

// DeleteTaskOutput reports whether a task was removed.
type DeleteTaskOutput struct {
	Deleted bool       `json:"deleted"`
	Counts  TaskCounts `json:"counts"`
}

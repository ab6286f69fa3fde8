// task_view.go defines the JSON shape of a task as returned by every tool.
package main

import "time"

// TaskView is the external representation of a Task.
type TaskView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"` // RFC 3339
}

func viewOf(t Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
}

func viewsOf(tasks []Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = viewOf(t)
	}
	return views
}

// task.go defines the internal task representation owned by the store.
// Tools and the TUI only ever see copies.
package main

import (
	"fmt"
	"strings"
	"time"
)

// Task is a single to-do entry.
//
// ID and CreatedAt are set once by TaskStore.Add. Completed is the only
// field that changes afterwards (via TaskStore.Toggle).
type Task struct {
	ID          string
	Title       string
	Description string // empty means absent
	Completed   bool
	CreatedAt   time.Time
}

// Status selects a subsequence of the task list.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// statusOrder is the tab order used by the TUI.
var statusOrder = []Status{StatusAll, StatusActive, StatusCompleted}

// ParseStatus accepts all/active/completed in any case. An empty string
// means all.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, nil
	case "active":
		return StatusActive, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown status %q (want all, active or completed)", s)
}

// Matches reports whether t belongs in the view selected by s.
func (s Status) Matches(t Task) bool {
	switch s {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	}
	return true
}

// Label is the capitalized tab name.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	}
	return "All"
}

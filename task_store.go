// task_store.go implements a thread-safe, in-memory task store.
//
// The MCP tool handlers and the TUI access tasks through this store. State
// is ephemeral: it lives only for the duration of the process (one session)
// and is never written anywhere.
package main

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	welcomeTitle       = "Welcome to your Todo App!"
	welcomeDescription = "Tap the + button to add your first todo"
)

// TaskStore holds all tasks in memory, protected by a mutex. Tasks are stored
// in a map for O(1) lookup and a separate slice holding display order,
// newest first. Display order follows insertion, never CreatedAt.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[string]*Task
	order []string // newest first

	newID func() string
	now   func() time.Time
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*Task),
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// NewSessionStore creates the store for one application session, seeded
// with a single welcome task. An empty title falls back to the default
// welcome text.
func NewSessionStore(seed SeedConfig) *TaskStore {
	s := NewTaskStore()
	title, description := seed.Title, seed.Description
	if strings.TrimSpace(title) == "" {
		title, description = welcomeTitle, welcomeDescription
	}
	s.Add(title, description)
	return s
}

// Add trims title and description and inserts a new active task at the
// front of the list. A title that is empty after trimming is rejected:
// the store is left unchanged and ok is false. The returned Task is a copy.
func (s *TaskStore) Add(title, description string) (task Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}
	description = strings.TrimSpace(description)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for s.tasks[id] != nil {
		id = s.newID()
	}
	t := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.tasks[id] = t
	s.order = append(s.order, "")
	copy(s.order[1:], s.order)
	s.order[0] = id
	return *t, true
}

// Get returns a copy of a single task by ID.
func (s *TaskStore) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// Toggle flips Completed on the task with the given ID. Missing IDs are a
// no-op (a delete may have won the race); the return value reports whether
// anything changed.
func (s *TaskStore) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	t.Completed = !t.Completed
	return true
}

// Delete removes the task with the given ID, keeping the relative order of
// the rest. Missing IDs are a no-op.
func (s *TaskStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns copies of every task, newest first.
func (s *TaskStore) List() []Task {
	return s.ListFiltered(StatusAll)
}

// ListFiltered returns copies of the tasks matching status, in display
// order. The result is never nil.
func (s *TaskStore) ListFiltered(status Status) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.tasks[id]
		if status.Matches(*t) {
			result = append(result, *t)
		}
	}
	return result
}

// Counts returns the aggregate counts. Active+Completed always equals Total
// because both are computed in one pass under the lock.
func (s *TaskStore) Counts() TaskCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c TaskCounts
	for _, t := range s.tasks {
		c.Total++
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

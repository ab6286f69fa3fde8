package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(m tuiModel, s string) tuiModel {
	for _, r := range s {
		updated, _ := m.Update(runeKey(r))
		m = updated.(tuiModel)
	}
	return m
}

func press(m tuiModel, msg tea.KeyMsg) tuiModel {
	updated, _ := m.Update(msg)
	return updated.(tuiModel)
}

func TestTUIAddTask(t *testing.T) {
	store := NewSessionStore(DefaultConfig().Seed)
	m := newTUIModel(store, StatusAll)

	m = press(m, runeKey('a'))
	if m.mode != modeAdd {
		t.Fatal("a should open the add form")
	}
	m = typeText(m, "Buy milk")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "semi-skimmed")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeList {
		t.Fatal("submit should close the form")
	}
	all := store.List()
	if len(all) != 2 || all[0].Title != "Buy milk" || all[0].Description != "semi-skimmed" {
		t.Fatalf("unexpected store contents %+v", all)
	}
	if len(m.tasks) != 2 || m.tasks[0].Title != "Buy milk" {
		t.Fatal("view should be refreshed after add")
	}
}

func TestTUIRejectsEmptyTitle(t *testing.T) {
	store := NewTaskStore()
	m := newTUIModel(store, StatusAll)

	m = press(m, runeKey('a'))
	m = typeText(m, "   ")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeAdd {
		t.Fatal("form should stay open on empty title")
	}
	if m.status != "Title cannot be empty" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if store.Counts().Total != 0 {
		t.Fatal("nothing should be added")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeList || m.title.Value() != "" {
		t.Fatal("esc should close and clear the form")
	}
}

func TestTUIToggleAndDelete(t *testing.T) {
	store := NewTaskStore()
	store.Add("a", "")
	store.Add("b", "")
	m := newTUIModel(store, StatusAll)

	m = press(m, runeKey('j'))
	m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if c := store.Counts(); c.Completed != 1 {
		t.Fatalf("expected one completed task, got %+v", c)
	}
	if !m.tasks[1].Completed || m.tasks[1].Title != "a" {
		t.Fatalf("cursor task should be toggled, got %+v", m.tasks)
	}

	m = press(m, runeKey('d'))
	if store.Counts().Total != 1 || store.List()[0].Title != "b" {
		t.Fatalf("unexpected store after delete %+v", store.List())
	}
	if m.cursor != 0 {
		t.Fatalf("cursor should be clamped, got %d", m.cursor)
	}

	m = press(m, runeKey('d'))
	m = press(m, runeKey('d'))
	if store.Counts().Total != 0 || m.cursor != 0 {
		t.Fatal("deleting from an empty view should be a no-op")
	}
}

func TestTUIFilters(t *testing.T) {
	store := NewTaskStore()
	a, _ := store.Add("a", "")
	store.Add("b", "")
	store.Toggle(a.ID)
	m := newTUIModel(store, StatusAll)

	m = press(m, runeKey('2'))
	if m.filter != StatusActive || len(m.tasks) != 1 || m.tasks[0].Title != "b" {
		t.Fatalf("active filter: %+v", m.tasks)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.filter != StatusCompleted || len(m.tasks) != 1 || m.tasks[0].Title != "a" {
		t.Fatalf("completed filter: %+v", m.tasks)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.filter != StatusAll || len(m.tasks) != 2 {
		t.Fatalf("tab should wrap to all, got %s", m.filter)
	}
}

func TestTUIEmptyState(t *testing.T) {
	store := NewTaskStore()
	m := newTUIModel(store, StatusAll)
	if view := m.View(); !strings.Contains(view, "No todos yet") {
		t.Fatalf("expected empty state, got:\n%s", view)
	}

	m = press(m, runeKey('3'))
	if view := m.View(); !strings.Contains(view, "No completed todos") || !strings.Contains(view, "Try switching to a different filter") {
		t.Fatalf("expected completed empty state, got:\n%s", view)
	}
}

func TestTUIViewShowsCounts(t *testing.T) {
	store := NewSessionStore(DefaultConfig().Seed)
	m := newTUIModel(store, StatusAll)
	view := m.View()
	for _, want := range []string{"1 Active", "0 Completed", "1 Total", welcomeTitle} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTUIQuit(t *testing.T) {
	m := newTUIModel(NewTaskStore(), StatusAll)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

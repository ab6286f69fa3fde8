// tui.go is the interactive terminal front end. It owns no task state: every
// change goes through the injected TaskStore and the visible list is
// re-derived from the store after each change.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tuiMode int

const (
	modeList tuiMode = iota
	modeAdd
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	statStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244"))
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3B82F6")).Bold(true)
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("244"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Bold(true)
)

type tuiModel struct {
	store  *TaskStore
	keys   keyMap
	filter Status
	tasks  []Task // current filtered view
	cursor int
	mode   tuiMode
	status string

	title       textinput.Model
	description textinput.Model
}

func newTUIModel(store *TaskStore, filter Status) tuiModel {
	title := textinput.New()
	title.Placeholder = "What needs to be done?"
	title.CharLimit = 256

	description := textinput.New()
	description.Placeholder = "Add more details..."
	description.CharLimit = 1024

	m := tuiModel{
		store:       store,
		keys:        defaultKeyMap,
		filter:      filter,
		title:       title,
		description: description,
	}
	m.refresh()
	return m
}

// runTUI blocks until the user quits or ctx is cancelled.
func runTUI(ctx context.Context, store *TaskStore, filter Status) error {
	program := tea.NewProgram(newTUIModel(store, filter), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeAdd {
			return m.updateInputs(msg)
		}
		return m, nil
	}
	if m.mode == modeAdd {
		return m.updateAddMode(keyMsg)
	}
	return m.updateListMode(keyMsg)
}

func (m tuiModel) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			m.store.Toggle(task.ID)
			m.status = ""
			m.refresh()
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			m.store.Delete(task.ID)
			m.status = fmt.Sprintf("Deleted %q", task.Title)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = ""
		m.description.Blur()
		cmd := m.title.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(nextStatus(m.filter))
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(StatusAll)
	case key.Matches(msg, m.keys.FilterAct):
		m.setFilter(StatusActive)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(StatusCompleted)
	}
	return m, nil
}

func (m tuiModel) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		task, ok := m.store.Add(m.title.Value(), m.description.Value())
		if !ok {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.closeForm()
		m.status = fmt.Sprintf("Added %q", task.Title)
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		var cmd tea.Cmd
		if m.title.Focused() {
			m.title.Blur()
			cmd = m.description.Focus()
		} else {
			m.description.Blur()
			cmd = m.title.Focus()
		}
		return m, cmd
	}
	return m.updateInputs(msg)
}

func (m tuiModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var titleCmd, descriptionCmd tea.Cmd
	m.title, titleCmd = m.title.Update(msg)
	m.description, descriptionCmd = m.description.Update(msg)
	return m, tea.Batch(titleCmd, descriptionCmd)
}

func (m *tuiModel) closeForm() {
	m.mode = modeList
	m.title.Reset()
	m.description.Reset()
	m.title.Blur()
	m.description.Blur()
}

func (m *tuiModel) setFilter(s Status) {
	m.filter = s
	m.cursor = 0
	m.refresh()
}

// refresh re-reads the filtered view and clamps the cursor into it.
func (m *tuiModel) refresh() {
	m.tasks = m.store.ListFiltered(m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m tuiModel) selected() (Task, bool) {
	if len(m.tasks) == 0 {
		return Task{}, false
	}
	return m.tasks[m.cursor], true
}

func nextStatus(s Status) Status {
	for i, candidate := range statusOrder {
		if candidate == s {
			return statusOrder[(i+1)%len(statusOrder)]
		}
	}
	return StatusAll
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("My Todos"))
	b.WriteString("\n\n")

	counts := m.store.Counts()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("%d Active", counts.Active)),
		statStyle.Render(fmt.Sprintf("%d Completed", counts.Completed)),
		statStyle.Render(fmt.Sprintf("%d Total", counts.Total)),
	))
	b.WriteString("\n\n")

	tabs := make([]string, len(statusOrder))
	for i, s := range statusOrder {
		if s == m.filter {
			tabs[i] = activeTabStyle.Render(s.Label())
		} else {
			tabs[i] = tabStyle.Render(s.Label())
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.formView())
	} else {
		b.WriteString(m.listView())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}

	help := m.keys.listHelp()
	if m.mode == modeAdd {
		help = m.keys.formHelp()
	}
	parts := make([]string, len(help))
	for i, binding := range help {
		parts[i] = binding.Help().Key + " " + binding.Help().Desc
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Join(parts, " • ")))
	b.WriteString("\n")
	return b.String()
}

func (m tuiModel) listView() string {
	if len(m.tasks) == 0 {
		title, hint := emptyState(m.filter)
		return labelStyle.Render(title) + "\n" + dimStyle.Render(hint) + "\n"
	}

	var b strings.Builder
	for i, t := range m.tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		box, title := "[ ]", t.Title
		if t.Completed {
			box, title = "[x]", doneStyle.Render(t.Title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, box, title)
		if t.Description != "" {
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render(t.Description))
		}
	}
	return b.String()
}

func (m tuiModel) formView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("New Todo"))
	b.WriteString("\n\n")
	b.WriteString("Title *\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nDescription (optional)\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")
	return b.String()
}

// emptyState returns the heading and hint shown when the filtered view is
// empty.
func emptyState(filter Status) (string, string) {
	switch filter {
	case StatusActive:
		return "No active todos", "Try switching to a different filter"
	case StatusCompleted:
		return "No completed todos", "Try switching to a different filter"
	}
	return "No todos yet", "Press a to add your first todo"
}

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the list-mode key bindings. The add form only uses
// submit, cancel and nextField.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Add        key.Binding
	NextFilter key.Binding
	FilterAll  key.Binding
	FilterAct  key.Binding
	FilterDone key.Binding
	Quit       key.Binding

	Submit    key.Binding
	Cancel    key.Binding
	NextField key.Binding
}

var defaultKeyMap = keyMap{
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
	Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Add:        key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
	NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next filter")),
	FilterAll:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	FilterAct:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
	FilterDone: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add todo")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
}

// listHelp is the footer shown in list mode.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Add, k.NextFilter, k.Quit}
}

// formHelp is the footer shown while the add form is open.
func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Cancel}
}

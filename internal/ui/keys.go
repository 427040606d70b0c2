package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Dismiss key.Binding
	Quit    key.Binding

	// active while the add input is focused
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Remove:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear active")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss banner")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// help lists the bindings shown under the list, in addition to its own.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.Clear, k.Theme, k.Dismiss}
}

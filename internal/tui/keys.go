package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	sync      key.Binding
	copy      key.Binding
	showError key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:      key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	showError: key.NewBinding(key.WithKeys("e")),
}

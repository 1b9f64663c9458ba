// Package tui provides the interactive stack playground terminal interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions available in the playground.
type keymap struct {
	push, emplace, pop, destroy, swap, quit key.Binding
}

func newKeymap() keymap {
	return keymap{
		push: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "push (copy)"),
		),
		emplace: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "emplace (transfer)"),
		),
		pop: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pop"),
		),
		destroy: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "destroy chain"),
		),
		swap: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "swap with shelf"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// bindings returns the help-ordered list of all active key bindings.
func (k keymap) bindings() []key.Binding {
	return []key.Binding{k.push, k.emplace, k.pop, k.swap, k.destroy, k.quit}
}

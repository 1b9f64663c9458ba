// Package tui provides the interactive stack playground terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the playground.
type Options struct {
	// Width is the element byte width; 0 falls back to the configured default.
	Width int
}

// Run initializes and executes the playground Bubble Tea application loop.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}

// Package tui provides the interactive stack playground terminal interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/wrap"
)

// maxVisibleHidden caps how many opaque placeholder rows the chain rendering shows.
const maxVisibleHidden = 6

// View implements tea.Model.
func (b *bubble) View() string {
	var view strings.Builder

	view.WriteString(style.Title(" lifo playground "))
	view.WriteString("\n\n")

	view.WriteString(b.renderStack("active", b.active))
	view.WriteString("\n")
	view.WriteString(b.renderStack("shelf", b.shelf))
	view.WriteString("\n")

	view.WriteString(fmt.Sprintf("%s %s\n\n",
		style.Faint("slots:"),
		style.Faint(fmt.Sprintf("%d allocated, %d freed, %d live",
			b.counter.Allocs(), b.counter.Frees(), b.counter.Live())),
	))

	view.WriteString(b.input.View())
	view.WriteString("\n\n")

	if b.status != "" {
		view.WriteString(style.Italic(b.status))
		view.WriteString("\n\n")
	}

	view.WriteString(style.Faint(b.renderHelp()))
	view.WriteString("\n")

	if b.termWidth > 0 {
		return wrap.String(view.String(), b.termWidth)
	}
	return view.String()
}

// renderStack draws one container: the borrowed top value plus opaque
// placeholders for the rest of the chain. Only the top is readable; the
// container deliberately offers no traversal.
func (b *bubble) renderStack(name string, r *stack.Raw) string {
	var out strings.Builder

	header := style.Bold(name) + " " + style.Faint(fmt.Sprintf(
		"(width %d, %s)", r.Width(), util.Quantify(r.Len(), "element", "elements")))
	out.WriteString(header)
	out.WriteString("\n")

	top, ok := r.Peek()
	if !ok {
		out.WriteString(style.Faint("  ∅ empty\n"))
		return out.String()
	}

	out.WriteString(fmt.Sprintf("  %s %s\n",
		style.Fg(style.Teal)("▶"),
		style.Bold(fmt.Sprintf("%d", decode(top))),
	))

	hidden := r.Len() - 1
	shown := util.Min(hidden, maxVisibleHidden)
	for i := 0; i < shown; i++ {
		out.WriteString(style.Faint("    ▒▒▒▒\n"))
	}
	if hidden > shown {
		out.WriteString(style.Faint(fmt.Sprintf("    … %d more\n", hidden-shown)))
	}

	return out.String()
}

// renderHelp joins the keymap help entries into one line.
func (b *bubble) renderHelp() string {
	entries := make([]string, 0, len(b.keymap.bindings()))
	for _, binding := range b.keymap.bindings() {
		help := binding.Help()
		entries = append(entries, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(entries, " • ")
}

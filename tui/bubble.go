// Package tui provides the interactive stack playground terminal interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	ckey "github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/stack"
	"github.com/spf13/viper"
)

// bubble is the playground model: an active stack, a shelf stack to swap
// with, and a shared instrumented allocator.
type bubble struct {
	width   int
	active  *stack.Raw
	shelf   *stack.Raw
	counter *stack.CountingAllocator

	input     textinput.Model
	keymap    keymap
	status    string
	termWidth int
}

func newBubble(options *Options) (*bubble, error) {
	width := options.Width
	if width <= 0 {
		width = viper.GetInt(ckey.DemoElementWidth)
	}

	var inner stack.Allocator
	if max := viper.GetInt(ckey.PlayMaxElements); max > 0 {
		inner = stack.NewBounded(max * width)
	}
	counter := stack.NewCounting(inner)

	active, err := stack.NewRaw(width, stack.WithAllocator(counter))
	if err != nil {
		return nil, err
	}
	shelf, err := stack.NewRaw(width, stack.WithAllocator(counter))
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "value"
	input.Focus()

	return &bubble{
		width:   width,
		active:  active,
		shelf:   shelf,
		counter: counter,
		input:   input,
		keymap:  newKeymap(),
	}, nil
}

// Init implements tea.Model.
func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.termWidth = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit

		case key.Matches(msg, b.keymap.push):
			b.insert(false)
			return b, nil

		case key.Matches(msg, b.keymap.emplace):
			b.insert(true)
			return b, nil

		case key.Matches(msg, b.keymap.pop):
			if b.active.Pop() {
				b.status = "popped the top element"
			} else {
				b.status = "nothing to pop: the stack is empty"
			}
			return b, nil

		case key.Matches(msg, b.keymap.destroy):
			n := b.active.Len()
			b.active.Destroy()
			b.status = fmt.Sprintf("destroyed the chain, released %d elements", n)
			return b, nil

		case key.Matches(msg, b.keymap.swap):
			if err := b.active.Swap(b.shelf); err != nil {
				b.status = err.Error()
			} else {
				b.status = "swapped the active stack with the shelf"
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

// insert pushes the typed value, either by copy or by ownership transfer.
func (b *bubble) insert(emplace bool) {
	raw := strings.TrimSpace(b.input.Value())
	if raw == "" {
		b.status = "type a value first"
		return
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		b.status = fmt.Sprintf("not an unsigned integer: %s", raw)
		return
	}

	record := encode(v, b.width)

	if emplace {
		// The record must belong to the stack's allocator, since the stack
		// frees it through that allocator on pop.
		slot, err := b.counter.Alloc(b.width)
		if err != nil {
			b.status = err.Error()
			return
		}
		copy(slot, record)
		if err := b.active.Emplace(slot); err != nil {
			b.counter.Free(slot)
			b.status = err.Error()
			return
		}
		b.status = fmt.Sprintf("emplaced %d, buffer ownership transferred", v)
	} else {
		if err := b.active.Push(record); err != nil {
			b.status = err.Error()
			return
		}
		b.status = fmt.Sprintf("pushed a copy of %d", v)
	}

	b.input.Reset()
}

// encode packs v into a little-endian record of exactly width bytes.
func encode(v uint64, width int) []byte {
	buf := make([]byte, width)
	for i := 0; i < width && i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	return buf
}

// decode unpacks a little-endian record into a value.
func decode(buf []byte) uint64 {
	var v uint64
	for i := 0; i < len(buf) && i < 8; i++ {
		v |= uint64(buf[i]) << (8 * i)
	}
	return v
}

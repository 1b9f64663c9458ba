// Package demo implements the built-in demonstration harness for the stack containers.
package demo

import (
	"fmt"

	"github.com/lifo-cli/lifo/stack"
)

// Report is a machine-readable account of a scripted demonstration run.
type Report struct {
	Width int        `json:"width" jsonschema:"description=Element byte width of the stack"`
	Steps []Step     `json:"steps" jsonschema:"description=Container status after each operation"`
	Slots Accounting `json:"slots" jsonschema:"description=Slot allocator accounting for the whole run"`
}

// Step captures the observable container state right after one operation.
type Step struct {
	Op   string  `json:"op"`
	Size int     `json:"size"`
	Top  *uint64 `json:"top,omitempty"`
}

// Accounting summarizes slot allocator activity.
type Accounting struct {
	Allocated int `json:"allocated"`
	Freed     int `json:"freed"`
	Live      int `json:"live"`
}

// BuildReport runs the scripted scenario without terminal output and returns
// its machine-readable trace.
func BuildReport(width int) (*Report, error) {
	if width <= 0 {
		width = (&Options{}).width()
	}

	counter := stack.NewCounting(nil)
	r, err := stack.NewRaw(width, stack.WithAllocator(counter))
	if err != nil {
		return nil, fmt.Errorf("initialise stack: %w", err)
	}

	report := &Report{Width: width}

	record := func(op string) {
		step := Step{Op: op, Size: r.Len()}
		if top, ok := r.Peek(); ok {
			v := decode(top)
			step.Top = &v
		}
		report.Steps = append(report.Steps, step)
	}

	record("initialise")

	for _, v := range []uint64{500, 1000} {
		if err := r.Push(encode(v, width)); err != nil {
			return nil, fmt.Errorf("push %d: %w", v, err)
		}
		record(fmt.Sprintf("push %d", v))
	}

	r.Pop()
	record("pop")
	r.Pop()
	record("pop")

	owned, err := counter.Alloc(width)
	if err != nil {
		return nil, fmt.Errorf("allocate record for emplace: %w", err)
	}
	copy(owned, encode(500, width))
	if err := r.Emplace(owned); err != nil {
		return nil, fmt.Errorf("emplace: %w", err)
	}
	record("emplace 500")

	r.Pop()
	record("pop")

	r.Destroy()
	record("destroy")

	report.Slots = Accounting{
		Allocated: counter.Allocs(),
		Freed:     counter.Frees(),
		Live:      counter.Live(),
	}

	return report, nil
}

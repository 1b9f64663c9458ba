// Package demo implements the built-in demonstration harness for the stack containers.
//
// It drives a Raw stack through a full lifecycle (copy inserts, pops, an
// ownership-transfer insert, teardown) while printing the container status
// after every mutation, exercising exactly the public contract a library
// consumer sees.
package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the demonstration harness.
type Options struct {
	// Width is the element byte width; 0 falls back to the configured default.
	Width int

	// Interactive prompts for values to push instead of running the scripted scenario.
	Interactive bool
}

// width resolves the effective element width for a run.
func (o *Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	return viper.GetInt(key.DemoElementWidth)
}

// encode packs v into a little-endian record of exactly width bytes.
// Values wider than the record are truncated, mirroring fixed-width storage.
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

// printStatus renders the container status line shown after every mutation.
func printStatus(r *stack.Raw) {
	label := style.Faint(fmt.Sprintf("Stack width: %d | Size: %d | Top:", r.Width(), r.Len()))

	if top, ok := r.Peek(); ok {
		fmt.Printf("%s %s\n", label, style.Bold(strconv.FormatUint(decode(top), 10)))
		return
	}
	fmt.Printf("%s %s %s\n", label, icon.Get(icon.Empty), style.Fg(color.Gray)("empty"))
}

// Run executes the demonstration against a freshly initialised Raw stack.
func Run(options *Options) error {
	width := options.width()

	counter := stack.NewCounting(nil)
	r, err := stack.NewRaw(width, stack.WithAllocator(counter))
	if err != nil {
		return fmt.Errorf("initialise stack: %w", err)
	}
	log.Infof("demo: initialised stack with element width %d", width)

	if termWidth, _, err := util.TerminalSize(); err == nil {
		fmt.Println(style.Faint(strings.Repeat("─", util.Min(termWidth, 48))))
	}

	if r.IsEmpty() {
		fmt.Printf("%s Freshly initialised stack is empty\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	}

	if options.Interactive {
		err = runInteractive(r, width)
	} else {
		err = runScripted(r, counter, width)
	}
	if err != nil {
		return err
	}

	if viper.GetBool(key.DemoShowAllocations) {
		fmt.Printf("\n%s allocated, %s freed, %s leaked\n",
			style.Bold(util.Quantify(counter.Allocs(), "slot", "slots")),
			style.Bold(strconv.Itoa(counter.Frees())),
			style.Bold(strconv.Itoa(counter.Live())),
		)
	}

	return nil
}

// runScripted plays the canonical lifecycle: two copy inserts, two pops, one
// ownership-transfer insert, one pop, teardown.
func runScripted(r *stack.Raw, counter *stack.CountingAllocator, width int) error {
	push := func(v uint64) error {
		if err := r.Push(encode(v, width)); err != nil {
			return fmt.Errorf("push %d: %w", v, err)
		}
		fmt.Printf("%s Pushed %d\n", icon.Get(icon.Push), v)
		printStatus(r)
		return nil
	}

	pop := func() {
		if r.Pop() {
			fmt.Printf("%s Popped\n", icon.Get(icon.Pop))
		}
		printStatus(r)
	}

	for _, v := range []uint64{500, 1000} {
		if err := push(v); err != nil {
			return err
		}
	}

	pop()
	pop()

	// Ownership transfer: the record is allocated up front and handed over
	// wholesale; the stack frees it on the next pop.
	owned, err := counter.Alloc(width)
	if err != nil {
		return fmt.Errorf("allocate record for emplace: %w", err)
	}
	copy(owned, encode(500, width))
	if err := r.Emplace(owned); err != nil {
		return fmt.Errorf("emplace: %w", err)
	}
	fmt.Printf("%s Emplaced 500 (ownership transferred)\n", icon.Get(icon.Push))
	printStatus(r)

	pop()

	r.Destroy()
	return nil
}

// runInteractive prompts for values until a blank line, then drains the stack.
func runInteractive(r *stack.Raw, width int) error {
	for {
		var input string
		if err := survey.AskOne(&survey.Input{Message: "Value to push (blank to finish):"}, &input); err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			break
		}

		v, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			fmt.Printf("%s Not an unsigned integer: %s\n", icon.Get(icon.Fail), input)
			continue
		}

		if err := r.Push(encode(v, width)); err != nil {
			return fmt.Errorf("push %d: %w", v, err)
		}
		printStatus(r)
	}

	if r.IsEmpty() {
		return nil
	}

	fmt.Println(style.Faint("Draining in LIFO order:"))
	for !r.IsEmpty() {
		top, _ := r.Peek()
		fmt.Printf("%s %d\n", icon.Get(icon.Pop), decode(top))
		r.Pop()
	}
	printStatus(r)

	return nil
}

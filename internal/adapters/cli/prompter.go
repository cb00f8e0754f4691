package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/housekeeping/internal/interaction"
)

// Prompter asks y/N questions on a terminal and prints notices.
// It implements interaction.Prompter.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
	declined  bool
}

// NewPrompter creates a Prompter reading answers from in.
// With assumeYes every confirmation is accepted without reading.
func NewPrompter(in io.Reader, out io.Writer, assumeYes bool) *Prompter {
	return &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

// Confirm prints msg and reads a y/N answer. Anything but y or yes is no.
func (p *Prompter) Confirm(msg string) bool {
	ok := p.ask(msg)
	p.declined = !ok
	return ok
}

// Declined reports whether the last confirmation was answered no.
func (p *Prompter) Declined() bool {
	return p.declined
}

func (p *Prompter) ask(msg string) bool {
	if p.assumeYes {
		return true
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", msg)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Notify prints msg with a ✓ for success notices and ✗ otherwise.
func (p *Prompter) Notify(msg string) {
	if interaction.IsSuccess(msg) {
		fmt.Fprintf(p.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), msg)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", color.New(color.FgRed).Sprint("✗"), msg)
}

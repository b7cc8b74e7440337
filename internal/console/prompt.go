// Package console implements the interactive menu surface: one blocking
// read-evaluate-print loop per role, driving the workflow services. Every
// prompt runs on stdin/stdout; logs go to stderr.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Prompter reads console input line by line with retry loops on parse
// failures.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewPrompter constructs a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input stream has ended. Once set, every prompt
// returns its zero value immediately instead of retrying.
func (p *Prompter) EOF() bool {
	return p.eof
}

// Printf writes formatted output to the console.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the console.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Line prompts once and returns the trimmed input. The end of the input
// stream reads as empty and sets the EOF flag.
func (p *Prompter) Line(prompt string) string {
	if p.eof {
		return ""
	}
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// IntInRange prompts until the input parses as a number within [lo, hi], or
// the input stream ends, which reads as lo.
func (p *Prompter) IntInRange(prompt string, lo, hi int) int {
	for {
		raw := p.Line(prompt)
		if p.eof {
			return lo
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			p.Println("Invalid input. Please enter a number.")
			continue
		}
		if n < lo || n > hi {
			p.Printf("Please enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n
	}
}

// Select prompts for a 1-based choice out of n items, with 0 cancelling.
// It returns the 0-based index and false when cancelled.
func (p *Prompter) Select(prompt string, n int) (int, bool) {
	choice := p.IntInRange(prompt, 0, n)
	if choice == 0 {
		p.Println("Cancelled.")
		return 0, false
	}
	return choice - 1, true
}

// Date prompts until the input parses as a yyyy-MM-dd date and returns the
// raw string, or empty when the input stream ends.
func (p *Prompter) Date(prompt string) string {
	for {
		raw := p.Line(prompt)
		if p.eof {
			return ""
		}
		if _, err := time.Parse(dateLayout, raw); err != nil {
			p.Println("Invalid date format. Please use yyyy-MM-dd (e.g., 2025-11-01)")
			continue
		}
		return raw
	}
}

// Confirm prompts for an explicit yes.
func (p *Prompter) Confirm(prompt string) bool {
	return strings.EqualFold(p.Line(prompt), "yes")
}

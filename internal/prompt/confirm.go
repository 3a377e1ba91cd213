// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer reads y/n answers from an input stream.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Confirmer that writes questions to out and reads answers from in.
func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints question followed by "(y/n) " and reads one line.
// Only y or yes (any case) affirm; end of input declines.
func (c *Confirmer) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s (y/n) ", question); err != nil {
		return false, fmt.Errorf("writing prompt: %w", err)
	}

	response, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the next line of output off the prompt line.
		_, _ = fmt.Fprintln(c.out)
	}
	return IsYes(response), nil
}

// IsYes reports whether answer affirms.
func IsYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// Package notify implements the toast and confirmation surfaces used by the
// list pages.
package notify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console prints toasts to a writer and reads confirmation answers from the
// same line stream the console session reads commands from.
type Console struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a console notifier. in is shared with the caller.
func NewConsole(in *bufio.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Success prints a success toast.
func (c *Console) Success(_ context.Context, msg string) {
	c.print("✔ " + msg)
}

// Error prints an error toast.
func (c *Console) Error(_ context.Context, msg string) {
	c.print("✖ " + msg)
}

func (c *Console) print(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}

// Confirm asks a yes/no question. End of input counts as no.
func (c *Console) Confirm(ctx context.Context, title, msg string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s\n%s [s/N]: ", title, msg)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("notify: read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(c.out)
		return false, nil
	}
	return IsYes(line), nil
}

// IsYes accepts y, yes, s, si and sí in any case.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

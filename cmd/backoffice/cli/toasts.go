package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/odyssey-erp/backoffice/internal/notify"
)

// ToastSource is the read side of the shared toast feed.
type ToastSource interface {
	Recent(ctx context.Context) ([]notify.Toast, error)
	Subscribe(ctx context.Context) (<-chan notify.Toast, error)
}

// ToastsOptions defines the flags of the toasts command.
type ToastsOptions struct {
	Follow     bool
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// ToastsCommand prints the toasts still alive in the feed. With Follow it
// keeps printing new ones until ctx is cancelled.
func ToastsCommand(ctx context.Context, src ToastSource, opts ToastsOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	emit := func(t notify.Toast) error {
		if opts.JSONOutput {
			return json.NewEncoder(opts.Stdout).Encode(t)
		}
		_, err := fmt.Fprintln(opts.Stdout, t.String())
		return err
	}

	// subscribe before reading history so nothing published in between is lost
	var live <-chan notify.Toast
	if opts.Follow {
		ch, err := src.Subscribe(ctx)
		if err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "toasts: %v\n", err)
			return 1
		}
		live = ch
	}

	recent, err := src.Recent(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "toasts: %v\n", err)
		return 1
	}
	seen := make(map[string]struct{}, len(recent))
	for _, t := range recent {
		seen[t.ID] = struct{}{}
		if err := emit(t); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "toasts: %v\n", err)
			return 1
		}
	}
	if live == nil {
		return 0
	}

	for t := range live {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		if err := emit(t); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "toasts: %v\n", err)
			return 1
		}
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintf(opts.Stderr, "toasts: %v\n", err)
		return 1
	}
	return 0
}

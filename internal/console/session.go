package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/notify"
)

var (
	// ErrUsage marks a malformed command.
	ErrUsage = errors.New("console: usage")
	// ErrNoHistory is returned by the toasts command when no feed is attached.
	ErrNoHistory = errors.New("console: no toast feed configured")
)

// History lists the toasts every session has published recently.
type History interface {
	Recent(ctx context.Context) ([]notify.Toast, error)
}

const helpText = `commands:
  use <page>                     switch page (%s)
  list | reload                  fetch the list again
  search [text]                  filter by name; empty clears
  page <n>                       go to page n
  new                            open an empty form
  edit <id>                      edit a record
  show <id>                      show record details
  set <field> <value>            set a form field
  item add                       add a line item
  item rm <i>                    remove line item i
  item set <i> <field> <value>   set a line item field
  save                           submit the form
  rm <id>                        delete a record
  close                          close open dialogs
  toasts                         recent notifications from all sessions
  help                           this text
  quit                           leave
`

// Session reads commands from in and renders the current screen to out
// after each one.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
	screens []Screen
	current Screen
	history History
}

// NewSession builds a session over screens; the first one is current. in
// must be the same reader the confirmation notifier reads from.
func NewSession(in *bufio.Reader, out io.Writer, logger *slog.Logger, screens ...Screen) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{in: in, out: out, logger: logger, screens: screens}
	if len(screens) > 0 {
		s.current = screens[0]
	}
	return s
}

// WithHistory enables the toasts command.
func (s *Session) WithHistory(h History) *Session {
	s.history = h
	return s
}

// Current returns the active screen.
func (s *Session) Current() Screen { return s.current }

// Use makes the screen with the given key current.
func (s *Session) Use(key string) error {
	for _, sc := range s.screens {
		if sc.Key() == key {
			s.current = sc
			return nil
		}
	}
	return fmt.Errorf("%w: unknown page %q", ErrUsage, key)
}

// Run loads the current screen and processes commands until quit, end of
// input or ctx cancellation.
func (s *Session) Run(ctx context.Context) error {
	if s.current == nil {
		return errors.New("console: no screens")
	}
	s.reload(ctx)
	s.current.Render(s.out)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("console: read command: %w", err)
		}
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			fmt.Fprintln(s.out)
			return nil
		}
		quit, cmdErr := s.Exec(ctx, line)
		if quit {
			return nil
		}
		if cmdErr != nil {
			fmt.Fprintf(s.out, "error: %v\n", cmdErr)
		}
		s.current.Render(s.out)
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// Exec runs one command line. Failures the page already reported through
// its notifier are not returned.
func (s *Session) Exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, rest := cut(strings.TrimSpace(line))
	sc := s.current
	switch cmd {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		keys := make([]string, 0, len(s.screens))
		for _, x := range s.screens {
			keys = append(keys, x.Key())
		}
		fmt.Fprintf(s.out, helpText, strings.Join(keys, ", "))
		return false, nil
	case "use":
		if err := s.Use(rest); err != nil {
			return false, err
		}
		s.reload(ctx)
		return false, nil
	case "list", "reload":
		s.reload(ctx)
		return false, nil
	case "search":
		sc.SetSearch(rest)
		return false, nil
	case "page":
		n, err := number(rest)
		if err != nil {
			return false, err
		}
		return false, sc.GoTo(int(n))
	case "new":
		sc.OpenCreate()
		return false, nil
	case "edit":
		n, err := number(rest)
		if err != nil {
			return false, err
		}
		return false, sc.Edit(n)
	case "show":
		n, err := number(rest)
		if err != nil {
			return false, err
		}
		return false, sc.Show(n)
	case "set":
		field, value := cut(rest)
		if field == "" {
			return false, fmt.Errorf("%w: set <field> <value>", ErrUsage)
		}
		return false, sc.SetField(field, value)
	case "item":
		return false, s.item(rest)
	case "save":
		err := sc.Submit(ctx)
		if errors.Is(err, listview.ErrDialogClosed) {
			return false, err
		}
		s.quiet("submit", err)
		return false, nil
	case "rm":
		n, err := number(rest)
		if err != nil {
			return false, err
		}
		_, err = sc.Remove(ctx, n)
		if errors.Is(err, ErrNoRecord) {
			return false, err
		}
		s.quiet("remove", err)
		return false, nil
	case "close":
		sc.Close()
		return false, nil
	case "toasts":
		return false, s.toasts(ctx)
	}
	return false, fmt.Errorf("%w: unknown command %q, try help", ErrUsage, cmd)
}

func (s *Session) item(args string) error {
	editor, ok := s.current.(LineEditor)
	if !ok {
		return ErrNoLineItems
	}
	sub, rest := cut(args)
	switch sub {
	case "add":
		return editor.AddLineItem()
	case "rm":
		n, err := number(rest)
		if err != nil {
			return err
		}
		return editor.RemoveLineItem(int(n))
	case "set":
		idx, rest := cut(rest)
		field, value := cut(rest)
		n, err := number(idx)
		if err != nil || field == "" {
			return fmt.Errorf("%w: item set <i> <field> <value>", ErrUsage)
		}
		return editor.SetLineField(int(n), field, value)
	}
	return fmt.Errorf("%w: item add | item rm <i> | item set <i> <field> <value>", ErrUsage)
}

func (s *Session) toasts(ctx context.Context) error {
	if s.history == nil {
		return ErrNoHistory
	}
	recent, err := s.history.Recent(ctx)
	if err != nil {
		return fmt.Errorf("console: recent toasts: %w", err)
	}
	if len(recent) == 0 {
		fmt.Fprintln(s.out, "(no recent notifications)")
		return nil
	}
	for _, t := range recent {
		fmt.Fprintln(s.out, t.String())
	}
	return nil
}

func (s *Session) reload(ctx context.Context) {
	s.quiet("load", s.current.Load(ctx))
}

// quiet logs errors the page has already shown to the user.
func (s *Session) quiet(op string, err error) {
	if err == nil {
		return
	}
	var verr *listview.ValidationError
	if errors.As(err, &verr) {
		return
	}
	s.logger.Debug("command failed", slog.String("op", op), slog.Any("error", err))
}

func cut(s string) (string, string) {
	head, tail, _ := strings.Cut(strings.TrimSpace(s), " ")
	return head, strings.TrimSpace(tail)
}

func number(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, s)
	}
	return n, nil
}

// Package console is a line-oriented front-end for the list pages. Each
// command changes page state and the page is rendered again as text.
package console

import (
	"context"
	"errors"
	"io"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
)

// ErrNoRecord is returned when an id is not in the loaded list.
var ErrNoRecord = errors.New("console: no record with that id")

// ErrNoLineItems is returned by item commands on pages without line items.
var ErrNoLineItems = errors.New("console: this page has no line items")

// Screen is the id-based surface the session drives.
type Screen interface {
	// Key is the short name used by the "use" command.
	Key() string
	Load(ctx context.Context) error
	SetSearch(text string)
	GoTo(page int) error
	OpenCreate()
	Edit(id int64) error
	Show(id int64) error
	SetField(name, value string) error
	Submit(ctx context.Context) error
	Remove(ctx context.Context, id int64) (bool, error)
	Close()
	Render(w io.Writer)
}

// LineEditor is implemented by screens whose draft owns line items.
type LineEditor interface {
	AddLineItem() error
	RemoveLineItem(index int) error
	SetLineField(index int, name, value string) error
}

// Field is one labelled value in a form or detail view. Key is the field
// path errors are reported under.
type Field struct {
	Label string
	Key   string
	Value string
}

// Layout describes how a page is drawn.
type Layout[T, D any] struct {
	Title   string
	Columns []string
	Row     func(T) []string
	Form    func(D) []Field
	Detail  func(T) []Field
	// Extra draws additional detail sections such as line tables.
	Extra func(w io.Writer, item T)
}

type bound[T, D any] struct {
	key    string
	c      *listview.Controller[T, D]
	layout Layout[T, D]
	p      *message.Printer
}

// Bind adapts a list controller to a Screen.
func Bind[T, D any](key string, c *listview.Controller[T, D], layout Layout[T, D], p *message.Printer) Screen {
	return &bound[T, D]{key: key, c: c, layout: layout, p: p}
}

func (b *bound[T, D]) Key() string { return b.key }
func (b *bound[T, D]) Load(ctx context.Context) error { return b.c.Load(ctx) }
func (b *bound[T, D]) SetSearch(text string) { b.c.SetSearch(text) }
func (b *bound[T, D]) GoTo(page int) error { return b.c.GoTo(page) }
func (b *bound[T, D]) OpenCreate() { b.c.OpenCreate() }
func (b *bound[T, D]) SetField(name, value string) error { return b.c.SetField(name, value) }
func (b *bound[T, D]) Submit(ctx context.Context) error { return b.c.Submit(ctx) }

func (b *bound[T, D]) Edit(id int64) error {
	item, ok := b.c.Find(id)
	if !ok {
		return ErrNoRecord
	}
	b.c.OpenEdit(item)
	return nil
}

func (b *bound[T, D]) Show(id int64) error {
	item, ok := b.c.Find(id)
	if !ok {
		return ErrNoRecord
	}
	b.c.OpenDetails(item)
	return nil
}

func (b *bound[T, D]) Remove(ctx context.Context, id int64) (bool, error) {
	item, ok := b.c.Find(id)
	if !ok {
		return false, ErrNoRecord
	}
	return b.c.Remove(ctx, item)
}

// Close closes whichever dialogs are open.
func (b *bound[T, D]) Close() {
	b.c.CloseEdit()
	b.c.CloseDetails()
}

func (b *bound[T, D]) Render(w io.Writer) {
	render(w, b.p, b.layout, b.c.Snapshot())
}

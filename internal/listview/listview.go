// Package listview implements the list page shared by every backoffice
// entity: fetch the full collection, filter it by name in memory, page it in
// memory, and drive the create/edit/detail/delete dialogs against a Store.
//
// A page is a Schema plus a Store and a Notifier. T is the record type as the
// API returns it; D is the editable draft bound to the form inputs.
package listview

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var (
	// ErrDialogClosed is returned when a draft operation runs without an open edit dialog.
	ErrDialogClosed = errors.New("listview: edit dialog is not open")
	// ErrUnknownField is returned by SetField for names the schema does not know.
	ErrUnknownField = errors.New("listview: unknown field")
	// ErrInvalidPage is returned by GoTo for pages below 1.
	ErrInvalidPage = errors.New("listview: page must be 1 or greater")
)

// Store is the REST collection behind a page.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload any) (T, error)
	Update(ctx context.Context, id int64, payload any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier presents toasts and blocking confirmations.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// Messages are the localized texts a page shows.
type Messages struct {
	Created      string
	Updated      string
	Deleted      string
	SaveFailed   string
	DeleteFailed string
	LoadFailed   string
	// Invalid, when set, is also shown as an error toast on validation failure.
	Invalid      string
	ConfirmTitle string
	ConfirmText  func(name string) string
}

// Schema parameterises a Controller for one entity.
type Schema[T, D any] struct {
	Resource string
	PageSize int

	ID   func(T) int64
	Name func(T) string

	Blank   func() D
	Draft   func(T) D
	DraftID func(D) int64
	// Clone deep-copies a draft. Needed when D holds slices or maps.
	Clone func(D) D
	// Detail prepares a record for the read-only dialog, e.g. filling nested
	// collections the API may omit.
	Detail func(T) T

	SetField func(d *D, name, value string) error
	Validate func(D) FieldErrors
	Payload  func(D) (any, error)

	Messages Messages
}

func (s Schema[T, D]) check() error {
	var missing []string
	if s.Resource == "" {
		missing = append(missing, "Resource")
	}
	if s.PageSize < 1 {
		missing = append(missing, "PageSize")
	}
	if s.ID == nil {
		missing = append(missing, "ID")
	}
	if s.Name == nil {
		missing = append(missing, "Name")
	}
	if s.Blank == nil {
		missing = append(missing, "Blank")
	}
	if s.Draft == nil {
		missing = append(missing, "Draft")
	}
	if s.DraftID == nil {
		missing = append(missing, "DraftID")
	}
	if s.SetField == nil {
		missing = append(missing, "SetField")
	}
	if s.Validate == nil {
		missing = append(missing, "Validate")
	}
	if s.Payload == nil {
		missing = append(missing, "Payload")
	}
	if len(missing) > 0 {
		return errors.New("listview: incomplete schema, missing " + strings.Join(missing, ", "))
	}
	return nil
}

// FieldErrors maps a JSON field path to its validation message.
type FieldErrors map[string]string

// Fields returns the failing field paths in sorted order.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidationError is returned by Submit when the draft fails local checks.
// It never reaches the Store.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "listview: validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

// Discard is a Notifier that drops toasts and declines every confirmation.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Success(context.Context, string) {}
func (discard) Error(context.Context, string) {}
func (discard) Confirm(context.Context, string, string) (bool, error) {
	return false, nil
}

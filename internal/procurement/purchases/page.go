// Package purchases is the purchase list page. Besides the shared list
// behaviour it edits the ordered line items of the open draft.
package purchases

import (
	"log/slog"
	"slices"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

const (
	Resource = "compras"
	PageSize = 5
)

// Page is the purchase list controller with line-item editing.
type Page struct {
	*listview.Controller[Purchase, Form]
}

// NewSchema describes the purchase page. Purchases are searched by supplier
// name.
func NewSchema(p *message.Printer, v *validation.Validator) listview.Schema[Purchase, Form] {
	return listview.Schema[Purchase, Form]{
		Resource: Resource,
		PageSize: PageSize,
		ID:       func(c Purchase) int64 { return c.ID },
		Name:     Purchase.SupplierName,
		Blank:    blank,
		Draft:    draft,
		DraftID:  func(f Form) int64 { return f.ID },
		Clone:    clone,
		Detail:   detail,
		SetField: setField,
		Validate: func(f Form) listview.FieldErrors { return validate(v, p, f) },
		Payload:  toInput,
		Messages: listview.Messages{
			Created:      p.Sprintf("The purchase has been created successfully."),
			Updated:      p.Sprintf("The purchase has been updated successfully."),
			Deleted:      p.Sprintf("The purchase has been deleted."),
			SaveFailed:   p.Sprintf("There was a problem saving the purchase."),
			DeleteFailed: p.Sprintf("There was a problem deleting the purchase."),
			LoadFailed:   p.Sprintf("Error loading purchases."),
			Invalid:      p.Sprintf("Please complete all required fields."),
			ConfirmTitle: p.Sprintf("Are you sure?"),
			ConfirmText: func(name string) string {
				return p.Sprintf("Are you sure you want to delete the purchase from %s?", name)
			},
		},
	}
}

func NewPage(store listview.Store[Purchase], notifier listview.Notifier, p *message.Printer, v *validation.Validator, logger *slog.Logger) *Page {
	return &Page{Controller: listview.New(NewSchema(p, v), store, notifier, logger)}
}

// AddLineItem appends an empty line to the draft.
func (p *Page) AddLineItem() error {
	return p.Mutate(func(f *Form) error {
		f.Lines = append(f.Lines, LineForm{})
		return nil
	})
}

// RemoveLineItem deletes the line at index; later lines shift down.
func (p *Page) RemoveLineItem(index int) error {
	return p.Mutate(func(f *Form) error {
		if index < 0 || index >= len(f.Lines) {
			return ErrLineIndex
		}
		f.Lines = slices.Delete(f.Lines, index, index+1)
		return nil
	})
}

// SetLineField updates one field of the line at index. Supply and quantity
// keep digits only; the unit price keeps digits and one decimal point.
func (p *Page) SetLineField(index int, name, value string) error {
	return p.Mutate(func(f *Form) error {
		return setLineField(f, index, name, value)
	})
}

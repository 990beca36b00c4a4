// Package suppliers is the supplier list page.
package suppliers

import (
	"log/slog"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

const (
	// Resource is the API collection name.
	Resource = "proveedores"
	// PageSize is the number of suppliers shown per page.
	PageSize = 3
)

// Page is the supplier list controller.
type Page = listview.Controller[Supplier, Form]

// NewSchema describes the supplier page for the given locale printer.
func NewSchema(p *message.Printer, v *validation.Validator) listview.Schema[Supplier, Form] {
	return listview.Schema[Supplier, Form]{
		Resource: Resource,
		PageSize: PageSize,
		ID:       func(s Supplier) int64 { return s.ID },
		Name:     func(s Supplier) string { return s.Name },
		Blank:    func() Form { return Form{} },
		Draft: func(s Supplier) Form {
			return Form{ID: s.ID, Name: s.Name, Contact: s.Contact}
		},
		DraftID:  func(f Form) int64 { return f.ID },
		SetField: setField,
		Validate: func(f Form) listview.FieldErrors { return validate(v, p, f) },
		Payload:  func(f Form) (any, error) { return f, nil },
		Messages: listview.Messages{
			Created:      p.Sprintf("Supplier created successfully."),
			Updated:      p.Sprintf("Supplier updated successfully."),
			Deleted:      p.Sprintf("The supplier has been deleted."),
			SaveFailed:   p.Sprintf("There was a problem saving the supplier."),
			DeleteFailed: p.Sprintf("The supplier cannot be deleted because it is associated with a purchase."),
			LoadFailed:   p.Sprintf("Error loading suppliers."),
			ConfirmTitle: p.Sprintf("Are you sure?"),
			ConfirmText: func(name string) string {
				return p.Sprintf("Are you sure you want to delete supplier %s?", name)
			},
		},
	}
}

// NewPage wires the supplier page to its store and notifier.
func NewPage(store listview.Store[Supplier], notifier listview.Notifier, p *message.Printer, v *validation.Validator, logger *slog.Logger) *Page {
	return listview.New(NewSchema(p, v), store, notifier, logger)
}

// Package clients is the client list page.
package clients

import (
	"log/slog"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

const (
	Resource = "clientes"
	PageSize = 3
)

type Page = listview.Controller[Client, Form]

// NewSchema describes the client page.
func NewSchema(p *message.Printer, v *validation.Validator) listview.Schema[Client, Form] {
	return listview.Schema[Client, Form]{
		Resource: Resource,
		PageSize: PageSize,
		ID:       func(c Client) int64 { return c.ID },
		Name:     func(c Client) string { return c.Name },
		Blank:    func() Form { return Form{} },
		Draft: func(c Client) Form {
			return Form{ID: c.ID, Name: c.Name, Contact: c.Contact}
		},
		DraftID:  func(f Form) int64 { return f.ID },
		SetField: setField,
		Validate: func(f Form) listview.FieldErrors { return validate(v, p, f) },
		Payload:  func(f Form) (any, error) { return f, nil },
		Messages: listview.Messages{
			Created:      p.Sprintf("Client created successfully."),
			Updated:      p.Sprintf("Client updated successfully."),
			Deleted:      p.Sprintf("Client deleted."),
			SaveFailed:   p.Sprintf("Error saving client. Please try again."),
			DeleteFailed: p.Sprintf("Error deleting client. Please try again."),
			LoadFailed:   p.Sprintf("Error loading clients."),
			ConfirmTitle: p.Sprintf("Are you sure?"),
			ConfirmText: func(string) string {
				return p.Sprintf("You won't be able to revert this!")
			},
		},
	}
}

func NewPage(store listview.Store[Client], notifier listview.Notifier, p *message.Printer, v *validation.Validator, logger *slog.Logger) *Page {
	return listview.New(NewSchema(p, v), store, notifier, logger)
}

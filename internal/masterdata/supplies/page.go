// Package supplies is the supply (insumo) list page.
package supplies

import (
	"log/slog"
	"strconv"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

const (
	Resource = "insumos"
	PageSize = 6
)

type Page = listview.Controller[Supply, Form]

func NewSchema(p *message.Printer, v *validation.Validator) listview.Schema[Supply, Form] {
	return listview.Schema[Supply, Form]{
		Resource: Resource,
		PageSize: PageSize,
		ID:       func(s Supply) int64 { return s.ID },
		Name:     func(s Supply) string { return s.Name },
		Blank:    func() Form { return Form{} },
		Draft: func(s Supply) Form {
			return Form{ID: s.ID, Name: s.Name, Stock: strconv.FormatInt(s.Stock, 10)}
		},
		DraftID:  func(f Form) int64 { return f.ID },
		SetField: setField,
		Validate: func(f Form) listview.FieldErrors { return validate(v, p, f) },
		Payload:  toInput,
		Messages: listview.Messages{
			Created:      p.Sprintf("Supply created successfully."),
			Updated:      p.Sprintf("Supply updated successfully."),
			Deleted:      p.Sprintf("The supply has been deleted."),
			SaveFailed:   p.Sprintf("There was a problem saving the supply."),
			DeleteFailed: p.Sprintf("There was a problem deleting the supply."),
			LoadFailed:   p.Sprintf("Error loading supplies."),
			ConfirmTitle: p.Sprintf("Are you sure?"),
			ConfirmText: func(name string) string {
				return p.Sprintf("Are you sure you want to delete supply %s?", name)
			},
		},
	}
}

func NewPage(store listview.Store[Supply], notifier listview.Notifier, p *message.Printer, v *validation.Validator, logger *slog.Logger) *Page {
	return listview.New(NewSchema(p, v), store, notifier, logger)
}

package suppliers

import (
	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

var fieldMessages = map[string]string{
	"nombre.nonblank":   "The supplier name is required.",
	"nombre.personname": "The supplier name may only contain letters and spaces.",
	"contacto.nonblank": "The contact is required.",
	"contacto.digits":   "The contact must contain at least 7 numeric digits.",
	"contacto.min":      "The contact must contain at least 7 numeric digits.",
}

func validate(v *validation.Validator, p *message.Printer, f Form) listview.FieldErrors {
	return listview.FieldErrors(validation.Translate(p, v.Check(f), fieldMessages))
}

func setField(f *Form, name, value string) error {
	switch name {
	case FieldName:
		f.Name = value
	case FieldContact:
		f.Contact = value
	default:
		return listview.ErrUnknownField
	}
	return nil
}

package clients

import (
	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

var fieldMessages = map[string]string{
	"nombre.nonblank":   "The client name is required.",
	"nombre.personname": "The client name may only contain letters and spaces.",
	"nombre.min":        "The name must contain at least 3 letters.",
	"contacto.nonblank": "The phone number is required.",
	"contacto.digits":   "The phone number must contain at least 7 digits.",
	"contacto.min":      "The phone number must contain at least 7 digits.",
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

package supplies

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

var fieldMessages = map[string]string{
	"nombre.nonblank":     "The supply name is required.",
	"nombre.personname":   "The supply name may only contain letters and spaces.",
	"stock_actual.digits": "The stock must be a whole number.",
	"stock_actual.int64":  "The stock is too large.",
}

func validate(v *validation.Validator, p *message.Printer, f Form) listview.FieldErrors {
	return listview.FieldErrors(validation.Translate(p, v.Check(f), fieldMessages))
}

func setField(f *Form, name, value string) error {
	switch name {
	case FieldName:
		f.Name = value
	case FieldStock:
		f.Stock = value
	default:
		return listview.ErrUnknownField
	}
	return nil
}

func toInput(f Form) (any, error) {
	in := Input{Name: f.Name}
	if s := strings.TrimSpace(f.Stock); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("supplies: stock %q: %w", f.Stock, err)
		}
		in.Stock = n
	}
	return in, nil
}

package purchases

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

// ErrLineIndex is returned for a line index outside the draft.
var ErrLineIndex = errors.New("purchases: line item index out of range")

var fieldMessages = map[string]string{
	"id_proveedor.nonblank":    "The supplier is required.",
	"id_proveedor.digits":      "The supplier ID must be numeric.",
	"id_proveedor.int64":       "The supplier ID is too large.",
	"fecha_compra.nonblank":    "The purchase date is required.",
	"fecha_compra.datetime":    "The purchase date must be YYYY-MM-DD.",
	"estado.nonblank":          "The status is required.",
	"detalleCompras.min":       "Add at least one line item.",
	"id_insumo.nonblank":       "The supply ID is required.",
	"id_insumo.digits":         "The supply ID must be numeric.",
	"id_insumo.int64":          "The supply ID is too large.",
	"cantidad.nonblank":        "The quantity is required.",
	"cantidad.digits":          "The quantity must be a whole number greater than zero.",
	"cantidad.positive":        "The quantity must be a whole number greater than zero.",
	"cantidad.int64":           "The quantity is too large.",
	"precio_unitario.nonblank": "The unit price is required.",
	"precio_unitario.decimal":  "The unit price must be a decimal number.",
}

func blank() Form {
	return Form{Status: string(StatusPending), Lines: []LineForm{}}
}

func draft(p Purchase) Form {
	f := Form{
		ID:     p.ID,
		Date:   p.Day(),
		Status: string(p.Status),
		Lines:  make([]LineForm, 0, len(p.Lines)),
	}
	if p.SupplierID > 0 {
		f.SupplierID = strconv.FormatInt(p.SupplierID, 10)
	}
	if f.Status == "" {
		f.Status = string(StatusPending)
	}
	for _, l := range p.Lines {
		f.Lines = append(f.Lines, LineForm{
			ID:        l.ID,
			SupplyID:  strconv.FormatInt(l.SupplyID, 10),
			Quantity:  strconv.FormatInt(l.Quantity, 10),
			UnitPrice: l.UnitPrice.String(),
		})
	}
	return f
}

func clone(f Form) Form {
	f.Lines = append([]LineForm{}, f.Lines...)
	return f
}

// detail fills the nested parts the API may omit.
func detail(p Purchase) Purchase {
	if p.Supplier == nil {
		p.Supplier = &SupplierRef{}
	} else {
		s := *p.Supplier
		p.Supplier = &s
	}
	p.Lines = append([]LineItem{}, p.Lines...)
	return p
}

func validate(v *validation.Validator, p *message.Printer, f Form) listview.FieldErrors {
	return listview.FieldErrors(validation.Translate(p, v.Check(f), fieldMessages))
}

func setField(f *Form, name, value string) error {
	switch name {
	case FieldSupplier:
		f.SupplierID = value
	case FieldDate:
		f.Date = value
	case FieldStatus:
		f.Status = value
	default:
		return listview.ErrUnknownField
	}
	return nil
}

func setLineField(f *Form, index int, name, value string) error {
	if index < 0 || index >= len(f.Lines) {
		return ErrLineIndex
	}
	line := &f.Lines[index]
	switch name {
	case LineSupply:
		line.SupplyID = validation.KeepDigits(value)
	case LineQuantity:
		line.Quantity = validation.KeepDigits(value)
	case LineUnitPrice:
		line.UnitPrice = validation.KeepDecimal(value)
	default:
		return listview.ErrUnknownField
	}
	return nil
}

func toInput(f Form) (any, error) {
	supplierID, err := strconv.ParseInt(strings.TrimSpace(f.SupplierID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("purchases: supplier id %q: %w", f.SupplierID, err)
	}
	in := Input{
		SupplierID: supplierID,
		Date:       f.Date,
		Status:     f.Status,
		Lines:      make([]LineInput, 0, len(f.Lines)),
	}
	for i, l := range f.Lines {
		supplyID, err := strconv.ParseInt(l.SupplyID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("purchases: line %d supply id: %w", i, err)
		}
		qty, err := strconv.ParseInt(l.Quantity, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("purchases: line %d quantity: %w", i, err)
		}
		price, err := decimal.NewFromString(l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("purchases: line %d unit price: %w", i, err)
		}
		in.Lines = append(in.Lines, LineInput{
			SupplyID:  supplyID,
			Quantity:  qty,
			UnitPrice: json.Number(price.String()),
		})
	}
	return in, nil
}

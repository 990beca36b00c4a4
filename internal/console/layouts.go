package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
)

const stampLayout = "2006-01-02 15:04"

func id(n int64) string { return strconv.FormatInt(n, 10) }

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(stampLayout)
}

// Clients binds the client page.
func Clients(page *clients.Page, p *message.Printer) Screen {
	return Bind("clientes", page, Layout[clients.Client, clients.Form]{
		Title:   p.Sprintf("Clients"),
		Columns: []string{p.Sprintf("ID"), p.Sprintf("Name"), p.Sprintf("Phone")},
		Row: func(c clients.Client) []string {
			return []string{id(c.ID), c.Name, c.Contact}
		},
		Form: func(f clients.Form) []Field {
			return []Field{
				{Label: p.Sprintf("Name"), Key: clients.FieldName, Value: f.Name},
				{Label: p.Sprintf("Phone"), Key: clients.FieldContact, Value: f.Contact},
			}
		},
		Detail: func(c clients.Client) []Field {
			return []Field{
				{Label: p.Sprintf("ID"), Key: "id_cliente", Value: id(c.ID)},
				{Label: p.Sprintf("Name"), Key: clients.FieldName, Value: c.Name},
				{Label: p.Sprintf("Phone"), Key: clients.FieldContact, Value: c.Contact},
				{Label: p.Sprintf("Created at"), Key: "createdAt", Value: stamp(c.CreatedAt)},
				{Label: p.Sprintf("Updated at"), Key: "updatedAt", Value: stamp(c.UpdatedAt)},
			}
		},
	}, p)
}

// Suppliers binds the supplier page.
func Suppliers(page *suppliers.Page, p *message.Printer) Screen {
	return Bind("proveedores", page, Layout[suppliers.Supplier, suppliers.Form]{
		Title:   p.Sprintf("Suppliers"),
		Columns: []string{p.Sprintf("ID"), p.Sprintf("Name"), p.Sprintf("Contact")},
		Row: func(s suppliers.Supplier) []string {
			return []string{id(s.ID), s.Name, s.Contact}
		},
		Form: func(f suppliers.Form) []Field {
			return []Field{
				{Label: p.Sprintf("Name"), Key: suppliers.FieldName, Value: f.Name},
				{Label: p.Sprintf("Contact"), Key: suppliers.FieldContact, Value: f.Contact},
			}
		},
		Detail: func(s suppliers.Supplier) []Field {
			return []Field{
				{Label: p.Sprintf("ID"), Key: "id_proveedor", Value: id(s.ID)},
				{Label: p.Sprintf("Name"), Key: suppliers.FieldName, Value: s.Name},
				{Label: p.Sprintf("Contact"), Key: suppliers.FieldContact, Value: s.Contact},
				{Label: p.Sprintf("Created at"), Key: "createdAt", Value: stamp(s.CreatedAt)},
				{Label: p.Sprintf("Updated at"), Key: "updatedAt", Value: stamp(s.UpdatedAt)},
			}
		},
	}, p)
}

// Supplies binds the supply page.
func Supplies(page *supplies.Page, p *message.Printer) Screen {
	return Bind("insumos", page, Layout[supplies.Supply, supplies.Form]{
		Title:   p.Sprintf("Supplies"),
		Columns: []string{p.Sprintf("ID"), p.Sprintf("Name"), p.Sprintf("Stock")},
		Row: func(s supplies.Supply) []string {
			return []string{id(s.ID), s.Name, id(s.Stock)}
		},
		Form: func(f supplies.Form) []Field {
			return []Field{
				{Label: p.Sprintf("Name"), Key: supplies.FieldName, Value: f.Name},
				{Label: p.Sprintf("Stock"), Key: supplies.FieldStock, Value: f.Stock},
			}
		},
		Detail: func(s supplies.Supply) []Field {
			return []Field{
				{Label: p.Sprintf("ID"), Key: "id_insumo", Value: id(s.ID)},
				{Label: p.Sprintf("Name"), Key: supplies.FieldName, Value: s.Name},
				{Label: p.Sprintf("Stock"), Key: supplies.FieldStock, Value: id(s.Stock)},
				{Label: p.Sprintf("Created at"), Key: "createdAt", Value: stamp(s.CreatedAt)},
				{Label: p.Sprintf("Updated at"), Key: "updatedAt", Value: stamp(s.UpdatedAt)},
			}
		},
	}, p)
}

type purchaseScreen struct {
	Screen
	page *purchases.Page
}

func (s purchaseScreen) AddLineItem() error { return s.page.AddLineItem() }
func (s purchaseScreen) RemoveLineItem(index int) error { return s.page.RemoveLineItem(index) }
func (s purchaseScreen) SetLineField(index int, name, value string) error {
	return s.page.SetLineField(index, name, value)
}

// Purchases binds the purchase page. The returned Screen is a LineEditor.
func Purchases(page *purchases.Page, p *message.Printer) Screen {
	layout := Layout[purchases.Purchase, purchases.Form]{
		Title: p.Sprintf("Purchases"),
		Columns: []string{
			p.Sprintf("ID"), p.Sprintf("Supplier"), p.Sprintf("Purchase date"),
			p.Sprintf("Status"), p.Sprintf("Total"),
		},
		Row: func(c purchases.Purchase) []string {
			return []string{id(c.ID), c.SupplierName(), c.Day(), string(c.Status), c.Total().StringFixed(2)}
		},
		Form: func(f purchases.Form) []Field {
			fields := []Field{
				{Label: p.Sprintf("Supplier ID"), Key: purchases.FieldSupplier, Value: f.SupplierID},
				{Label: p.Sprintf("Purchase date"), Key: purchases.FieldDate, Value: f.Date},
				{Label: p.Sprintf("Status"), Key: purchases.FieldStatus, Value: f.Status},
			}
			for i, l := range f.Lines {
				prefix := fmt.Sprintf("detalleCompras[%d].", i)
				fields = append(fields,
					Field{Label: fmt.Sprintf("#%d %s", i, p.Sprintf("Supply ID")), Key: prefix + purchases.LineSupply, Value: l.SupplyID},
					Field{Label: fmt.Sprintf("#%d %s", i, p.Sprintf("Quantity")), Key: prefix + purchases.LineQuantity, Value: l.Quantity},
					Field{Label: fmt.Sprintf("#%d %s", i, p.Sprintf("Unit price")), Key: prefix + purchases.LineUnitPrice, Value: l.UnitPrice},
				)
			}
			return fields
		},
		Detail: func(c purchases.Purchase) []Field {
			return []Field{
				{Label: p.Sprintf("ID"), Key: "id_compra", Value: id(c.ID)},
				{Label: p.Sprintf("Supplier ID"), Key: purchases.FieldSupplier, Value: id(c.Supplier.ID)},
				{Label: p.Sprintf("Supplier"), Key: "proveedorCompra.nombre", Value: c.Supplier.Name},
				{Label: p.Sprintf("Contact"), Key: "proveedorCompra.contacto", Value: c.Supplier.Contact},
				{Label: p.Sprintf("Purchase date"), Key: purchases.FieldDate, Value: c.Day()},
				{Label: p.Sprintf("Status"), Key: purchases.FieldStatus, Value: string(c.Status)},
				{Label: p.Sprintf("Created at"), Key: "createdAt", Value: stamp(c.CreatedAt)},
				{Label: p.Sprintf("Updated at"), Key: "updatedAt", Value: stamp(c.UpdatedAt)},
			}
		},
		Extra: func(w io.Writer, c purchases.Purchase) {
			fmt.Fprintf(w, "%s:\n", p.Sprintf("Line items"))
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Sprintf("Line ID"), p.Sprintf("Supply ID"), p.Sprintf("Quantity"), p.Sprintf("Unit price"))
			for _, l := range c.Lines {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", l.ID, l.SupplyID, l.Quantity, l.UnitPrice.String())
			}
			_ = tw.Flush()
			fmt.Fprintf(w, "%s: %s\n", p.Sprintf("Total"), c.Total().StringFixed(2))
		},
	}
	return purchaseScreen{Screen: Bind("compras", page.Controller, layout, p), page: page}
}

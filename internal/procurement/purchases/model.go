package purchases

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the purchase workflow state. The API stores it as free text.
type Status string

// StatusPending is the state of a purchase that has not been received.
const StatusPending Status = "pendiente"

// SupplierRef is the supplier sub-record embedded in a purchase listing.
type SupplierRef struct {
	ID        int64     `json:"id_proveedor"`
	Name      string    `json:"nombre"`
	Contact   string    `json:"contacto"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LineItem is one supply line of a purchase.
type LineItem struct {
	ID        int64           `json:"id_detalle_compra"`
	SupplyID  int64           `json:"id_insumo"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// MarshalJSON writes the unit price as a JSON number.
func (l LineItem) MarshalJSON() ([]byte, error) {
	type wire LineItem
	return json.Marshal(struct {
		wire
		UnitPrice json.Number `json:"precio_unitario"`
	}{wire(l), json.Number(l.UnitPrice.String())})
}

// Subtotal is Quantity times UnitPrice.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Purchase is a record from /api/compras with its supplier and lines
// denormalized.
type Purchase struct {
	ID         int64        `json:"id_compra"`
	SupplierID int64        `json:"id_proveedor"`
	Date       string       `json:"fecha_compra"`
	Status     Status       `json:"estado"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Supplier   *SupplierRef `json:"proveedorCompra,omitempty"`
	Lines      []LineItem   `json:"detalleComprasCompra"`
}

// SupplierName returns the embedded supplier name or "" when absent.
func (p Purchase) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return p.Supplier.Name
}

// Day returns the purchase date truncated to YYYY-MM-DD. The API may send a
// bare date or a full timestamp.
func (p Purchase) Day() string {
	if len(p.Date) >= len(dateLayout) {
		return p.Date[:len(dateLayout)]
	}
	return p.Date
}

// Total sums the line subtotals.
func (p Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range p.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

const dateLayout = "2006-01-02"

// LineForm is one editable line. Values are kept as typed.
type LineForm struct {
	ID        int64  `json:"-"`
	SupplyID  string `json:"id_insumo" validate:"nonblank,digits,int64"`
	Quantity  string `json:"cantidad" validate:"nonblank,digits,positive,int64"`
	UnitPrice string `json:"precio_unitario" validate:"nonblank,decimal"`
}

// Form is the purchase draft.
type Form struct {
	ID         int64      `json:"-"`
	SupplierID string     `json:"id_proveedor" validate:"nonblank,digits,int64"`
	Date       string     `json:"fecha_compra" validate:"nonblank,datetime=2006-01-02"`
	Status     string     `json:"estado" validate:"nonblank"`
	Lines      []LineForm `json:"detalleCompras" validate:"min=1,dive"`
}

// Input is the create and update payload.
type Input struct {
	SupplierID int64       `json:"id_proveedor"`
	Date       string      `json:"fecha_compra"`
	Status     string      `json:"estado"`
	Lines      []LineInput `json:"detalleCompras"`
}

// LineInput is one payload line. UnitPrice is sent as a JSON number.
type LineInput struct {
	SupplyID  int64       `json:"id_insumo"`
	Quantity  int64       `json:"cantidad"`
	UnitPrice json.Number `json:"precio_unitario"`
}

// Top-level fields accepted by SetField.
const (
	FieldSupplier = "id_proveedor"
	FieldDate     = "fecha_compra"
	FieldStatus   = "estado"
)

// Line fields accepted by SetLineField.
const (
	LineSupply    = "id_insumo"
	LineQuantity  = "cantidad"
	LineUnitPrice = "precio_unitario"
)

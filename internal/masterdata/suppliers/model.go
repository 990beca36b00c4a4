package suppliers

import (
	"time"
)

// Supplier represents a supplier as returned by /api/proveedores.
type Supplier struct {
	ID        int64     `json:"id_proveedor"`
	Name      string    `json:"nombre"`
	Contact   string    `json:"contacto"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Form is the editable supplier draft. Its JSON shape is the request payload.
type Form struct {
	ID      int64  `json:"-"`
	Name    string `json:"nombre" validate:"nonblank,personname"`
	Contact string `json:"contacto" validate:"nonblank,digits,min=7"`
}

// Field names accepted by SetField.
const (
	FieldName    = "nombre"
	FieldContact = "contacto"
)

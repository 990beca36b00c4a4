package clients

import "time"

// Client is a customer record from /api/clientes.
type Client struct {
	ID        int64     `json:"id_cliente"`
	Name      string    `json:"nombre"`
	Contact   string    `json:"contacto"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Form is the client draft; it doubles as the create and update payload.
type Form struct {
	ID      int64  `json:"-"`
	Name    string `json:"nombre" validate:"nonblank,personname,min=3"`
	Contact string `json:"contacto" validate:"nonblank,digits,min=7"`
}

const (
	FieldName    = "nombre"
	FieldContact = "contacto"
)

package supplies

import "time"

// Supply is an inventory input from /api/insumos.
type Supply struct {
	ID        int64     `json:"id_insumo"`
	Name      string    `json:"nombre"`
	Stock     int64     `json:"stock_actual"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Form is the supply draft. Stock is kept as typed; blank means zero.
type Form struct {
	ID    int64  `json:"-"`
	Name  string `json:"nombre" validate:"nonblank,personname"`
	Stock string `json:"stock_actual" validate:"omitempty,digits,int64"`
}

// Input is the create and update payload.
type Input struct {
	Name  string `json:"nombre"`
	Stock int64  `json:"stock_actual"`
}

const (
	FieldName  = "nombre"
	FieldStock = "stock_actual"
)

package model

import "time"

// Supply is a consumable kept in stock (tinte, shampoo, ...).
type Supply struct {
	ID        int       `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Unit      string    `json:"unit" validate:"required"`
	Stock     float64   `json:"stock" validate:"gte=0"`
	MinStock  float64   `json:"min_stock" validate:"gte=0"`
	Status    Activity  `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports whether the supply fell under its minimum.
func (s Supply) LowStock() bool {
	return s.Stock < s.MinStock
}

package model

import "time"

// Product is a retail item sold over the counter.
type Product struct {
	ID         int       `json:"id"`
	Name       string    `json:"name" validate:"required"`
	CategoryID int       `json:"category_id" validate:"required"`
	Price      float64   `json:"price" validate:"required,gt=0"`
	Stock      int       `json:"stock" validate:"gte=0"`
	Status     Activity  `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package model

import "time"

// Service is a salon offering (haircut, manicure, ...). Price is in
// Colombian pesos, Duration in minutes.
type Service struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Duration    int       `json:"duration" validate:"required,gt=0"`
	CategoryID  int       `json:"category_id"`
	Status      Activity  `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package model

import "time"

type Supplier struct {
	ID        int       `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone"`
	Status    Activity  `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

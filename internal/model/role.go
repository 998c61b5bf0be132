package model

import "time"

// Role groups the permission keys granted to its users.
type Role struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	Status      Activity  `json:"status"`
	Protected   bool      `json:"protected"` // the super-admin role
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

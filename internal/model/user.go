package model

import "time"

// User is a staff account of the salon back office.
type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Name      string    `json:"name"` // derived, frozen at save time
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	RoleID    int       `json:"role_id" validate:"required"`
	Status    Activity  `json:"status"`
	Protected bool      `json:"protected"` // the seeded admin account
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recompute refreshes denormalized fields on save.
func (u *User) Recompute() {
	u.Name = u.FirstName + " " + u.LastName
}

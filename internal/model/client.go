package model

import "time"

type Client struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	Name       string    `json:"name"` // derived, frozen at save time
	DocumentID string    `json:"document_id" validate:"required"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Phone      string    `json:"phone"`
	Status     Activity  `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Client) Recompute() {
	c.Name = c.FirstName + " " + c.LastName
}

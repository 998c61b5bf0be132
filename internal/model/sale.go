package model

import (
	"fmt"
	"time"
)

type SaleItem struct {
	ServiceID int     `json:"service_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
}

// Sale is a registered point-of-sale ticket. Code and Total are
// derived: Code from the assigned ID, Total from the items.
type Sale struct {
	ID            int        `json:"id"`
	Code          string     `json:"code"` // "VNT-004"
	ClientID      int        `json:"client_id" validate:"required"`
	Items         []SaleItem `json:"items" validate:"required,min=1,dive"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method" validate:"required"`
	Date          string     `json:"date" validate:"required,datetime=2006-01-02"`
	Status        SaleStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *Sale) Recompute() {
	s.Code = fmt.Sprintf("VNT-%03d", s.ID)
	total := 0.0
	for _, it := range s.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	s.Total = total
}

package model

import (
	"fmt"
	"time"
)

type PurchaseItem struct {
	SupplyID int     `json:"supply_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" validate:"required,gt=0"`
}

// Purchase is a supplier order. Enters approved; can only be cancelled.
type Purchase struct {
	ID         int            `json:"id"`
	Code       string         `json:"code"` // "CMP-004"
	SupplierID int            `json:"supplier_id" validate:"required"`
	Items      []PurchaseItem `json:"items" validate:"required,min=1,dive"`
	Total      float64        `json:"total"`
	Date       string         `json:"date" validate:"required,datetime=2006-01-02"`
	Status     PurchaseStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (p *Purchase) Recompute() {
	p.Code = fmt.Sprintf("CMP-%03d", p.ID)
	total := 0.0
	for _, it := range p.Items {
		total += float64(it.Quantity) * it.UnitCost
	}
	p.Total = total
}

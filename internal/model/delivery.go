package model

import "time"

// Delivery tracks one scheduled supply delivery from a supplier.
type Delivery struct {
	ID            int            `json:"id"`
	SupplierID    int            `json:"supplier_id" validate:"required"`
	SupplyID      int            `json:"supply_id" validate:"required"`
	Quantity      float64        `json:"quantity" validate:"required,gt=0"`
	ScheduledDate string         `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Status        DeliveryStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

package model

import "time"

// Appointment books a client with an employee for one service at a
// date ("2006-01-02") and time slot ("15:04").
type Appointment struct {
	ID         int               `json:"id"`
	ClientID   int               `json:"client_id" validate:"required"`
	EmployeeID int               `json:"employee_id" validate:"required"`
	ServiceID  int               `json:"service_id" validate:"required"`
	Date       string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string            `json:"time" validate:"required,timeslot"`
	Notes      string            `json:"notes"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

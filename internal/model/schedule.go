package model

import "time"

// Schedule is one weekly working-hours window for an employee.
// Start and End are "15:04" strings, End exclusive.
type Schedule struct {
	ID         int          `json:"id"`
	EmployeeID int          `json:"employee_id" validate:"required"`
	Weekday    time.Weekday `json:"weekday"`
	Start      string       `json:"start" validate:"required,timeslot"`
	End        string       `json:"end" validate:"required,timeslot"`
	Status     Activity     `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

package service

import (
	"time"

	"asthroapp/internal/model"
)

// IsAvailable reports whether an employee can take a booking at date
// ("2006-01-02") and slot ("15:04"). Available only if an active
// working-hours window covers that weekday and time, and no existing
// non-cancelled appointment for the employee occupies the same
// date+time. Pure function over the two snapshots; the appointment
// dialog calls it without reading any collection.
func IsAvailable(employeeID int, date, slot string, schedules []model.Schedule, appointments []model.Appointment) bool {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	at, err := time.Parse("15:04", slot)
	if err != nil {
		return false
	}

	covered := false
	for _, s := range schedules {
		if s.EmployeeID != employeeID || s.Status != model.Active || s.Weekday != day.Weekday() {
			continue
		}
		start, err := time.Parse("15:04", s.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse("15:04", s.End)
		if err != nil {
			continue
		}
		// window is [start, end)
		if !at.Before(start) && at.Before(end) {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}

	for _, a := range appointments {
		if a.EmployeeID != employeeID || a.Date != date || a.Time != slot {
			continue
		}
		// cancelled and no-show bookings free their slot
		if a.Status == model.AppointmentCancelled || a.Status == model.AppointmentNoShow {
			continue
		}
		return false
	}
	return true
}

package controller

import (
	"time"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/service"
	"asthroapp/internal/session"
)

// Appointments manages bookings and their lifecycle.
type Appointments struct {
	Module[model.Appointment]
}

func appointmentDescriptor() collection.Descriptor[model.Appointment] {
	return collection.Descriptor[model.Appointment]{
		ID:    func(a model.Appointment) int { return a.ID },
		SetID: func(a *model.Appointment, id int) { a.ID = id },
		OnCreate: func(a *model.Appointment) {
			if a.Status == "" {
				a.Status = model.AppointmentPending
			}
			now := time.Now()
			a.CreatedAt = now
			a.UpdatedAt = now
		},
		OnUpdate: func(a *model.Appointment) { a.UpdatedAt = time.Now() },
		Terminal: func(a model.Appointment) bool { return a.Status.Terminal() },
		SearchText: func(a model.Appointment) []string {
			return []string{a.Date, a.Notes}
		},
		Filters: map[string]func(model.Appointment, string) bool{
			"status": func(a model.Appointment, v string) bool { return string(a.Status) == v },
		},
	}
}

func NewAppointments(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Appointments {
	col := collection.New(appointmentDescriptor(), repository.SeedAppointments())
	list := collection.NewList(col, pageSize)
	return &Appointments{newModule("appointments", caps.Has(auth.PermAppointments), list, ws, log)}
}

// Transition steps the booking through its lifecycle table. Terminal
// bookings refuse with ErrTerminal, illegal steps with ErrTransition.
func (a *Appointments) Transition(id int, to model.AppointmentStatus) (model.Appointment, error) {
	return a.Mutate(id, func(rec *model.Appointment) error {
		if rec.Status.Terminal() {
			return collection.ErrTerminal
		}
		if !rec.Status.CanStep(to) {
			return collection.ErrTransition
		}
		rec.Status = to
		return nil
	})
}

func (a *Appointments) Cancel(id int) (model.Appointment, error) {
	return a.Transition(id, model.AppointmentCancelled)
}

// AvailabilityCheck builds the slot-conflict rule for the booking
// dialog over snapshots of both collections. The draft's own booking
// is excluded so an edit may keep its slot.
func AvailabilityCheck(schedules []model.Schedule, appointments []model.Appointment) form.Check[model.Appointment] {
	return func(draft model.Appointment, errs form.FieldErrors) {
		if draft.EmployeeID == 0 || draft.Date == "" || draft.Time == "" {
			return // field rules flag these already
		}
		others := make([]model.Appointment, 0, len(appointments))
		for _, appt := range appointments {
			if appt.ID != draft.ID {
				others = append(others, appt)
			}
		}
		if !service.IsAvailable(draft.EmployeeID, draft.Date, draft.Time, schedules, others) {
			errs["time"] = "slot not available"
		}
	}
}

// Schedules manages weekly working-hours windows.
type Schedules struct {
	Module[model.Schedule]
}

func scheduleDescriptor() collection.Descriptor[model.Schedule] {
	return collection.Descriptor[model.Schedule]{
		ID:    func(s model.Schedule) int { return s.ID },
		SetID: func(s *model.Schedule, id int) { s.ID = id },
		OnCreate: func(s *model.Schedule) {
			if s.Status == "" {
				s.Status = model.Active
			}
			now := time.Now()
			s.CreatedAt = now
			s.UpdatedAt = now
		},
		OnUpdate: func(s *model.Schedule) { s.UpdatedAt = time.Now() },
		SearchText: func(s model.Schedule) []string {
			return []string{s.Weekday.String(), s.Start, s.End}
		},
		Filters: map[string]func(model.Schedule, string) bool{
			"status": func(s model.Schedule, v string) bool { return string(s.Status) == v },
		},
	}
}

func NewSchedules(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Schedules {
	col := collection.New(scheduleDescriptor(), repository.SeedSchedules())
	list := collection.NewList(col, pageSize)
	return &Schedules{newModule("schedules", caps.Has(auth.PermSchedules), list, ws, log)}
}

func (s *Schedules) ToggleStatus(id int) (model.Schedule, error) {
	return s.Mutate(id, func(rec *model.Schedule) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

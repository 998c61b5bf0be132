package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"asthroapp/internal/model"
)

// 2025-03-10 is a Monday, 2025-03-11 a Tuesday.
func mondaySchedule(employeeID int) []model.Schedule {
	return []model.Schedule{{
		ID:         1,
		EmployeeID: employeeID,
		Weekday:    time.Monday,
		Start:      "08:00",
		End:        "18:00",
		Status:     model.Active,
	}}
}

func TestIsAvailable(t *testing.T) {
	schedules := mondaySchedule(3)
	appointments := []model.Appointment{{
		ID:         1,
		ClientID:   1,
		EmployeeID: 3,
		ServiceID:  1,
		Date:       "2025-03-10",
		Time:       "10:00",
		Status:     model.AppointmentConfirmed,
	}}

	cases := []struct {
		name string
		date string
		slot string
		want bool
	}{
		{"occupied slot", "2025-03-10", "10:00", false},
		{"free slot same day", "2025-03-10", "11:00", true},
		{"no schedule on tuesday", "2025-03-11", "10:00", false},
		{"before window", "2025-03-10", "07:30", false},
		{"window end is exclusive", "2025-03-10", "18:00", false},
		{"window start inclusive", "2025-03-10", "08:00", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsAvailable(3, tc.date, tc.slot, schedules, appointments)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCancelledAppointmentFreesSlot(t *testing.T) {
	schedules := mondaySchedule(3)
	appointments := []model.Appointment{{
		EmployeeID: 3,
		Date:       "2025-03-10",
		Time:       "10:00",
		Status:     model.AppointmentCancelled,
	}}
	assert.True(t, IsAvailable(3, "2025-03-10", "10:00", schedules, appointments))
}

func TestOtherEmployeeDoesNotBlock(t *testing.T) {
	schedules := mondaySchedule(3)
	appointments := []model.Appointment{{
		EmployeeID: 9,
		Date:       "2025-03-10",
		Time:       "10:00",
		Status:     model.AppointmentConfirmed,
	}}
	assert.True(t, IsAvailable(3, "2025-03-10", "10:00", schedules, appointments))
}

func TestInactiveScheduleDoesNotCover(t *testing.T) {
	schedules := mondaySchedule(3)
	schedules[0].Status = model.Inactive
	assert.False(t, IsAvailable(3, "2025-03-10", "10:00", schedules, nil))
}

func TestMalformedInputsAreUnavailable(t *testing.T) {
	schedules := mondaySchedule(3)
	assert.False(t, IsAvailable(3, "10/03/2025", "10:00", schedules, nil))
	assert.False(t, IsAvailable(3, "2025-03-10", "10h00", schedules, nil))
}

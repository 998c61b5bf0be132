package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asthroapp/internal/model"
)

func TestValidateFlagsMissingRequiredFields(t *testing.T) {
	f := New(model.Service{}, func(model.Service) error { return nil })

	errs := f.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "duration")
}

func TestValidatePositiveNumbers(t *testing.T) {
	f := New(model.Service{Name: "Corte", Price: -5, Duration: 0},
		func(model.Service) error { return nil })

	errs := f.Validate()
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "duration")
	assert.NotContains(t, errs, "name")
}

func TestValidateDateAndTimeSlots(t *testing.T) {
	appt := model.Appointment{
		ClientID:   1,
		EmployeeID: 1,
		ServiceID:  1,
		Date:       "10-03-2025",
		Time:       "25:99",
	}
	f := New(appt, func(model.Appointment) error { return nil })

	errs := f.Validate()
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "time")

	appt.Date = "2025-03-10"
	appt.Time = "10:00"
	f = New(appt, func(model.Appointment) error { return nil })
	assert.Empty(t, f.Validate())
}

func TestCrossFieldCheckJoinsErrorMap(t *testing.T) {
	refs := []Option{{ID: 1, Label: "Ana"}}
	check := func(draft model.Appointment, errs FieldErrors) {
		if !HasOption(refs, draft.EmployeeID) {
			errs["employee_id"] = "unknown employee"
		}
	}

	appt := model.Appointment{ClientID: 1, EmployeeID: 7, ServiceID: 1, Date: "2025-03-10", Time: "10:00"}
	f := New(appt, func(model.Appointment) error { return nil }, check)

	errs := f.Validate()
	assert.Equal(t, "unknown employee", errs["employee_id"])
}

func TestSaveCommitsOnlyWhenClean(t *testing.T) {
	saved := 0
	onSave := func(model.Service) error { saved++; return nil }

	dirty := New(model.Service{}, onSave)
	err := dirty.Save()
	var errs FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Zero(t, saved, "invalid draft must not reach the controller")

	clean := New(model.Service{Name: "Corte", Price: 50000, Duration: 30}, onSave)
	require.NoError(t, clean.Save())
	assert.Equal(t, 1, saved)
}

func TestSavePropagatesCommitError(t *testing.T) {
	boom := errors.New("boom")
	f := New(model.Service{Name: "Corte", Price: 50000, Duration: 30},
		func(model.Service) error { return boom })
	assert.ErrorIs(t, f.Save(), boom)
}

func TestDelayedSubmitterHonoursCancellation(t *testing.T) {
	inner := func(ctx context.Context, s model.Service) error { return nil }
	sub := Delayed(50*time.Millisecond, inner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sub(ctx, model.Service{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDelayedSubmitterRunsInner(t *testing.T) {
	ran := false
	sub := Delayed(time.Millisecond, func(ctx context.Context, s model.Service) error {
		ran = true
		return nil
	})
	require.NoError(t, sub(context.Background(), model.Service{}))
	assert.True(t, ran)
}

// Package form is the staged-draft half of every edit dialog: it
// holds a draft copy of a record, validates it, and hands it to the
// owning controller only on an explicit save. It never touches a
// collection directly.
package form

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps field names (json tag names) to messages. It is a
// value, not an exception: an invalid draft blocks save and surfaces
// inline, nothing is thrown.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// shared validator instance, custom rules registered once
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = validate.RegisterValidation("timeslot", validateTimeSlot)
}

// validateTimeSlot accepts "15:04" wall-clock strings.
func validateTimeSlot(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// Check is a cross-field rule (slot conflicts, foreign-key existence)
// evaluated after tag validation over the same error map.
type Check[T any] func(draft T, errs FieldErrors)

// Form stages one draft. Zero-value draft means creation mode.
type Form[T any] struct {
	Draft  T
	Errors FieldErrors

	checks []Check[T]
	onSave func(T) error
}

func New[T any](draft T, onSave func(T) error, checks ...Check[T]) *Form[T] {
	return &Form[T]{Draft: draft, onSave: onSave, checks: checks}
}

// Validate fills the error map from struct tags plus cross-field
// checks. Pure with respect to the draft.
func (f *Form[T]) Validate() FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(f.Draft); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs[fe.Field()] = messageFor(fe)
			}
		}
	}
	for _, check := range f.checks {
		check(f.Draft, errs)
	}
	f.Errors = errs
	return errs
}

// Save commits through the callback only when the draft is clean.
func (f *Form[T]) Save() error {
	if errs := f.Validate(); !errs.Empty() {
		return errs
	}
	return f.onSave(f.Draft)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "needs at least " + fe.Param()
	case "datetime":
		return "invalid date"
	case "timeslot":
		return "invalid time (HH:MM)"
	default:
		return "invalid value"
	}
}

// Option is one entry of a reference snapshot handed to a form so
// choice fields can be validated without reading any collection.
type Option struct {
	ID    int
	Label string
}

// HasOption reports whether id exists in the snapshot.
func HasOption(opts []Option, id int) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

// RefCheck builds the referential rule for one choice field: the
// selected id must exist in the supplied snapshot.
func RefCheck[T any](field string, opts []Option, id func(T) int) Check[T] {
	return func(draft T, errs FieldErrors) {
		if !HasOption(opts, id(draft)) {
			errs[field] = "unknown reference"
		}
	}
}

package controller

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/session"
)

// ErrStock reports an adjustment that would leave negative stock.
var ErrStock = errors.New("stock cannot go negative")

// Suppliers manages the vendor list.
type Suppliers struct {
	Module[model.Supplier]
}

func supplierDescriptor() collection.Descriptor[model.Supplier] {
	return collection.Descriptor[model.Supplier]{
		ID:    func(s model.Supplier) int { return s.ID },
		SetID: func(s *model.Supplier, id int) { s.ID = id },
		OnCreate: func(s *model.Supplier) {
			if s.Status == "" {
				s.Status = model.Active
			}
			now := time.Now()
			s.CreatedAt = now
			s.UpdatedAt = now
		},
		OnUpdate: func(s *model.Supplier) { s.UpdatedAt = time.Now() },
		SearchText: func(s model.Supplier) []string {
			return []string{s.Name, s.Contact, s.Email, s.Phone}
		},
		Filters: map[string]func(model.Supplier, string) bool{
			"status": func(s model.Supplier, v string) bool { return string(s.Status) == v },
		},
	}
}

func NewSuppliers(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Suppliers {
	col := collection.New(supplierDescriptor(), repository.SeedSuppliers())
	list := collection.NewList(col, pageSize)
	return &Suppliers{newModule("suppliers", caps.Has(auth.PermSuppliers), list, ws, log)}
}

func (s *Suppliers) ToggleStatus(id int) (model.Supplier, error) {
	return s.Mutate(id, func(rec *model.Supplier) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

func (s *Suppliers) Options() []form.Option {
	var out []form.Option
	for _, rec := range s.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Supplies manages consumable stock.
type Supplies struct {
	Module[model.Supply]
}

func supplyDescriptor() collection.Descriptor[model.Supply] {
	return collection.Descriptor[model.Supply]{
		ID:    func(s model.Supply) int { return s.ID },
		SetID: func(s *model.Supply, id int) { s.ID = id },
		OnCreate: func(s *model.Supply) {
			if s.Status == "" {
				s.Status = model.Active
			}
			now := time.Now()
			s.CreatedAt = now
			s.UpdatedAt = now
		},
		OnUpdate: func(s *model.Supply) { s.UpdatedAt = time.Now() },
		SearchText: func(s model.Supply) []string {
			return []string{s.Name, s.Unit}
		},
		Filters: map[string]func(model.Supply, string) bool{
			"status": func(s model.Supply, v string) bool { return string(s.Status) == v },
		},
	}
}

func NewSupplies(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Supplies {
	col := collection.New(supplyDescriptor(), repository.SeedSupplies())
	list := collection.NewList(col, pageSize)
	return &Supplies{newModule("supplies", caps.Has(auth.PermSupplies), list, ws, log)}
}

func (s *Supplies) ToggleStatus(id int) (model.Supply, error) {
	return s.Mutate(id, func(rec *model.Supply) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

// AdjustStock applies a signed delta, refusing negative results.
func (s *Supplies) AdjustStock(id int, delta float64) (model.Supply, error) {
	return s.Mutate(id, func(rec *model.Supply) error {
		next := rec.Stock + delta
		if next < 0 {
			return ErrStock
		}
		rec.Stock = next
		return nil
	})
}

func (s *Supplies) Options() []form.Option {
	var out []form.Option
	for _, rec := range s.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Deliveries tracks scheduled supply deliveries.
type Deliveries struct {
	Module[model.Delivery]
}

func deliveryDescriptor() collection.Descriptor[model.Delivery] {
	return collection.Descriptor[model.Delivery]{
		ID:    func(d model.Delivery) int { return d.ID },
		SetID: func(d *model.Delivery, id int) { d.ID = id },
		OnCreate: func(d *model.Delivery) {
			if d.Status == "" {
				d.Status = model.DeliveryPending
			}
			now := time.Now()
			d.CreatedAt = now
			d.UpdatedAt = now
		},
		OnUpdate: func(d *model.Delivery) { d.UpdatedAt = time.Now() },
		Terminal: func(d model.Delivery) bool { return d.Status.Terminal() },
		SearchText: func(d model.Delivery) []string {
			return []string{d.ScheduledDate}
		},
		Filters: map[string]func(model.Delivery, string) bool{
			"status": func(d model.Delivery, v string) bool { return string(d.Status) == v },
		},
	}
}

func NewDeliveries(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Deliveries {
	col := collection.New(deliveryDescriptor(), repository.SeedDeliveries())
	list := collection.NewList(col, pageSize)
	return &Deliveries{newModule("deliveries", caps.Has(auth.PermDeliveries), list, ws, log)}
}

func (d *Deliveries) Transition(id int, to model.DeliveryStatus) (model.Delivery, error) {
	return d.Mutate(id, func(rec *model.Delivery) error {
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

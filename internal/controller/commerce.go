package controller

import (
	"time"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/session"
)

// Sales manages registered tickets. A completed sale can only be
// refunded; it cannot be edited or deleted.
type Sales struct {
	Module[model.Sale]
}

func saleDescriptor() collection.Descriptor[model.Sale] {
	return collection.Descriptor[model.Sale]{
		ID:    func(s model.Sale) int { return s.ID },
		SetID: func(s *model.Sale, id int) { s.ID = id },
		OnCreate: func(s *model.Sale) {
			if s.Status == "" {
				s.Status = model.SaleCompleted
			}
			now := time.Now()
			s.CreatedAt = now
			s.UpdatedAt = now
			s.Recompute()
		},
		OnUpdate: func(s *model.Sale) {
			s.UpdatedAt = time.Now()
			s.Recompute()
		},
		// edit-lock covers completed as well as refunded
		Terminal: func(s model.Sale) bool { return s.Status.EditLocked() },
		SearchText: func(s model.Sale) []string {
			return []string{s.Code, s.Date, s.PaymentMethod}
		},
		Filters: map[string]func(model.Sale, string) bool{
			"status": func(s model.Sale, v string) bool { return string(s.Status) == v },
		},
	}
}

func NewSales(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Sales {
	col := collection.New(saleDescriptor(), repository.SeedSales())
	list := collection.NewList(col, pageSize)
	return &Sales{newModule("sales", caps.Has(auth.PermSales), list, ws, log)}
}

func (s *Sales) Refund(id int) (model.Sale, error) {
	return s.Mutate(id, func(rec *model.Sale) error {
		if rec.Status.Terminal() {
			return collection.ErrTerminal
		}
		if !rec.Status.CanStep(model.SaleRefunded) {
			return collection.ErrTransition
		}
		rec.Status = model.SaleRefunded
		return nil
	})
}

// Purchases manages supplier orders: approved on entry, cancellable,
// immutable once cancelled.
type Purchases struct {
	Module[model.Purchase]
}

func purchaseDescriptor() collection.Descriptor[model.Purchase] {
	return collection.Descriptor[model.Purchase]{
		ID:    func(p model.Purchase) int { return p.ID },
		SetID: func(p *model.Purchase, id int) { p.ID = id },
		OnCreate: func(p *model.Purchase) {
			if p.Status == "" {
				p.Status = model.PurchaseApproved
			}
			now := time.Now()
			p.CreatedAt = now
			p.UpdatedAt = now
			p.Recompute()
		},
		OnUpdate: func(p *model.Purchase) {
			p.UpdatedAt = time.Now()
			p.Recompute()
		},
		Terminal: func(p model.Purchase) bool { return p.Status.Terminal() },
		SearchText: func(p model.Purchase) []string {
			return []string{p.Code, p.Date}
		},
		Filters: map[string]func(model.Purchase, string) bool{
			"status": func(p model.Purchase, v string) bool { return string(p.Status) == v },
		},
	}
}

func NewPurchases(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Purchases {
	col := collection.New(purchaseDescriptor(), repository.SeedPurchases())
	list := collection.NewList(col, pageSize)
	return &Purchases{newModule("purchases", caps.Has(auth.PermPurchases), list, ws, log)}
}

func (p *Purchases) Cancel(id int) (model.Purchase, error) {
	return p.Mutate(id, func(rec *model.Purchase) error {
		if rec.Status.Terminal() {
			return collection.ErrTerminal
		}
		if !rec.Status.CanStep(model.PurchaseCancelled) {
			return collection.ErrTransition
		}
		rec.Status = model.PurchaseCancelled
		return nil
	})
}

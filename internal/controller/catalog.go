package controller

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/session"
)

// Services manages the salon offerings.
type Services struct {
	Module[model.Service]
}

func serviceDescriptor() collection.Descriptor[model.Service] {
	return collection.Descriptor[model.Service]{
		ID:    func(s model.Service) int { return s.ID },
		SetID: func(s *model.Service, id int) { s.ID = id },
		OnCreate: func(s *model.Service) {
			if s.Status == "" {
				s.Status = model.Active
			}
			now := time.Now()
			s.CreatedAt = now
			s.UpdatedAt = now
		},
		OnUpdate: func(s *model.Service) { s.UpdatedAt = time.Now() },
		SearchText: func(s model.Service) []string {
			return []string{s.Name, s.Description}
		},
		Filters: map[string]func(model.Service, string) bool{
			"status":   func(s model.Service, v string) bool { return string(s.Status) == v },
			"category": func(s model.Service, v string) bool { return strconv.Itoa(s.CategoryID) == v },
		},
	}
}

func NewServices(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Services {
	col := collection.New(serviceDescriptor(), repository.SeedServices())
	list := collection.NewList(col, pageSize)
	return &Services{newModule("services", caps.Has(auth.PermServices), list, ws, log)}
}

func (s *Services) ToggleStatus(id int) (model.Service, error) {
	return s.Mutate(id, func(rec *model.Service) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

func (s *Services) Options() []form.Option {
	var out []form.Option
	for _, rec := range s.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Categories groups services and products.
type Categories struct {
	Module[model.Category]
}

func categoryDescriptor() collection.Descriptor[model.Category] {
	return collection.Descriptor[model.Category]{
		ID:    func(c model.Category) int { return c.ID },
		SetID: func(c *model.Category, id int) { c.ID = id },
		OnCreate: func(c *model.Category) {
			if c.Status == "" {
				c.Status = model.Active
			}
			now := time.Now()
			c.CreatedAt = now
			c.UpdatedAt = now
		},
		OnUpdate: func(c *model.Category) { c.UpdatedAt = time.Now() },
		SearchText: func(c model.Category) []string {
			return []string{c.Name, c.Description}
		},
		Filters: map[string]func(model.Category, string) bool{
			"status": func(c model.Category, v string) bool { return string(c.Status) == v },
		},
	}
}

func NewCategories(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Categories {
	col := collection.New(categoryDescriptor(), repository.SeedCategories())
	list := collection.NewList(col, pageSize)
	return &Categories{newModule("categories", caps.Has(auth.PermCategories), list, ws, log)}
}

func (c *Categories) ToggleStatus(id int) (model.Category, error) {
	return c.Mutate(id, func(rec *model.Category) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

func (c *Categories) Options() []form.Option {
	var out []form.Option
	for _, rec := range c.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Products manages the retail catalogue.
type Products struct {
	Module[model.Product]
}

func productDescriptor() collection.Descriptor[model.Product] {
	return collection.Descriptor[model.Product]{
		ID:    func(p model.Product) int { return p.ID },
		SetID: func(p *model.Product, id int) { p.ID = id },
		OnCreate: func(p *model.Product) {
			if p.Status == "" {
				p.Status = model.Active
			}
			now := time.Now()
			p.CreatedAt = now
			p.UpdatedAt = now
		},
		OnUpdate: func(p *model.Product) { p.UpdatedAt = time.Now() },
		SearchText: func(p model.Product) []string {
			return []string{p.Name}
		},
		Filters: map[string]func(model.Product, string) bool{
			"status":   func(p model.Product, v string) bool { return string(p.Status) == v },
			"category": func(p model.Product, v string) bool { return strconv.Itoa(p.CategoryID) == v },
		},
	}
}

func NewProducts(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Products {
	col := collection.New(productDescriptor(), repository.SeedProducts())
	list := collection.NewList(col, pageSize)
	return &Products{newModule("products", caps.Has(auth.PermProducts), list, ws, log)}
}

func (p *Products) ToggleStatus(id int) (model.Product, error) {
	return p.Mutate(id, func(rec *model.Product) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

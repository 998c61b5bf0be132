package controller

import (
	"time"

	"github.com/rs/zerolog"

	"asthroapp/internal/auth"
	"asthroapp/internal/collection"
	"asthroapp/internal/form"
	"asthroapp/internal/model"
	"asthroapp/internal/repository"
	"asthroapp/internal/session"
)

// Users manages staff accounts.
type Users struct {
	Module[model.User]
}

func userDescriptor() collection.Descriptor[model.User] {
	return collection.Descriptor[model.User]{
		ID:    func(u model.User) int { return u.ID },
		SetID: func(u *model.User, id int) { u.ID = id },
		OnCreate: func(u *model.User) {
			if u.Status == "" {
				u.Status = model.Active
			}
			now := time.Now()
			u.CreatedAt = now
			u.UpdatedAt = now
			u.Recompute()
		},
		OnUpdate: func(u *model.User) {
			u.UpdatedAt = time.Now()
			u.Recompute()
		},
		Protected: func(u model.User) bool { return u.Protected },
		SearchText: func(u model.User) []string {
			return []string{u.Name, u.Email, u.Phone}
		},
		Filters: map[string]func(model.User, string) bool{
			"status": func(u model.User, v string) bool { return string(u.Status) == v },
		},
	}
}

func NewUsers(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Users {
	col := collection.New(userDescriptor(), repository.SeedUsers())
	list := collection.NewList(col, pageSize)
	return &Users{newModule("users", caps.Has(auth.PermUsers), list, ws, log)}
}

func (u *Users) ToggleStatus(id int) (model.User, error) {
	return u.Mutate(id, func(rec *model.User) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

// Options lists active users for choice fields (employee pickers).
func (u *Users) Options() []form.Option {
	var out []form.Option
	for _, rec := range u.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Roles manages the permission groups.
type Roles struct {
	Module[model.Role]
}

func roleDescriptor() collection.Descriptor[model.Role] {
	return collection.Descriptor[model.Role]{
		ID:    func(r model.Role) int { return r.ID },
		SetID: func(r *model.Role, id int) { r.ID = id },
		OnCreate: func(r *model.Role) {
			if r.Status == "" {
				r.Status = model.Active
			}
			now := time.Now()
			r.CreatedAt = now
			r.UpdatedAt = now
		},
		OnUpdate:  func(r *model.Role) { r.UpdatedAt = time.Now() },
		Protected: func(r model.Role) bool { return r.Protected },
		SearchText: func(r model.Role) []string {
			return []string{r.Name, r.Description}
		},
		Filters: map[string]func(model.Role, string) bool{
			"status": func(r model.Role, v string) bool { return string(r.Status) == v },
		},
	}
}

func NewRoles(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Roles {
	col := collection.New(roleDescriptor(), repository.SeedRoles())
	list := collection.NewList(col, pageSize)
	return &Roles{newModule("roles", caps.Has(auth.PermRoles), list, ws, log)}
}

func (r *Roles) ToggleStatus(id int) (model.Role, error) {
	return r.Mutate(id, func(rec *model.Role) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

func (r *Roles) Options() []form.Option {
	var out []form.Option
	for _, rec := range r.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// Clients manages the customer list, including CSV import/export.
type Clients struct {
	Module[model.Client]
}

func clientDescriptor() collection.Descriptor[model.Client] {
	return collection.Descriptor[model.Client]{
		ID:    func(c model.Client) int { return c.ID },
		SetID: func(c *model.Client, id int) { c.ID = id },
		OnCreate: func(c *model.Client) {
			if c.Status == "" {
				c.Status = model.Active
			}
			now := time.Now()
			c.CreatedAt = now
			c.UpdatedAt = now
			c.Recompute()
		},
		OnUpdate: func(c *model.Client) {
			c.UpdatedAt = time.Now()
			c.Recompute()
		},
		SearchText: func(c model.Client) []string {
			return []string{c.Name, c.Email, c.Phone, c.DocumentID}
		},
		Filters: map[string]func(model.Client, string) bool{
			"status": func(c model.Client, v string) bool { return string(c.Status) == v },
		},
	}
}

func NewClients(caps auth.Capabilities, ws *session.Workspace, log zerolog.Logger, pageSize int) *Clients {
	col := collection.New(clientDescriptor(), repository.SeedClients())
	list := collection.NewList(col, pageSize)
	return &Clients{newModule("clients", caps.Has(auth.PermClients), list, ws, log)}
}

func (c *Clients) ToggleStatus(id int) (model.Client, error) {
	return c.Mutate(id, func(rec *model.Client) error {
		rec.Status = rec.Status.Toggled()
		return nil
	})
}

func (c *Clients) Options() []form.Option {
	var out []form.Option
	for _, rec := range c.List().Collection().Items() {
		if rec.Status == model.Active {
			out = append(out, form.Option{ID: rec.ID, Label: rec.Name})
		}
	}
	return out
}

// ExportCSV writes the whole client list to path.
func (c *Clients) ExportCSV(path string) error {
	if !c.CanMutate() {
		return ErrDenied
	}
	return repository.SaveClientsCSV(path, c.List().Collection().Items())
}

// ImportCSV appends the file's rows as freshly created clients; ids
// from the file are reassigned so id uniqueness holds.
func (c *Clients) ImportCSV(path string) (int, error) {
	if !c.CanMutate() {
		return 0, ErrDenied
	}
	loaded, err := repository.LoadClientsCSV(path)
	if err != nil {
		return 0, err
	}
	imported := 0
	for _, client := range loaded {
		client.ID = 0
		if _, err := c.Create(client); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

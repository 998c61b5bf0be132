// Package controller wires one facade per admin module around the
// generic collection core. Mutations are gated by the injected
// capability set; domain rules (terminal states, protected records,
// lifecycle tables) are enforced here and in the core, never only by
// hiding a button.
package controller

import (
	"errors"

	"github.com/rs/zerolog"

	"asthroapp/internal/collection"
	"asthroapp/internal/session"
)

// ErrDenied reports a mutation attempted without the module permission.
var ErrDenied = errors.New("permission denied")

// Module is the list controller for one admin screen.
type Module[T any] struct {
	name    string
	allowed bool
	list    *collection.List[T]
	ws      *session.Workspace
	log     zerolog.Logger
}

func newModule[T any](name string, allowed bool, list *collection.List[T], ws *session.Workspace, log zerolog.Logger) Module[T] {
	return Module[T]{
		name:    name,
		allowed: allowed,
		list:    list,
		ws:      ws,
		log:     log.With().Str("module", name).Logger(),
	}
}

func (m *Module[T]) Name() string { return m.name }

// CanMutate reports whether create/edit/delete/toggle actions are
// offered at all. Read access is not gated.
func (m *Module[T]) CanMutate() bool { return m.allowed }

// List exposes the search/filter/page view state for rendering.
func (m *Module[T]) List() *collection.List[T] { return m.list }

func (m *Module[T]) Get(id int) (T, error) {
	return m.list.Collection().Get(id)
}

func (m *Module[T]) Create(draft T) (T, error) {
	var zero T
	if !m.allowed {
		return zero, ErrDenied
	}
	created, err := m.list.Collection().Create(draft)
	if err != nil {
		return zero, err
	}
	m.touch()
	m.log.Info().Msg("record created")
	return created, nil
}

func (m *Module[T]) Update(rec T) (T, error) {
	var zero T
	if !m.allowed {
		return zero, ErrDenied
	}
	updated, err := m.list.Collection().Update(rec)
	if err != nil {
		return zero, err
	}
	m.touch()
	m.log.Info().Msg("record updated")
	return updated, nil
}

func (m *Module[T]) Remove(id int) error {
	if !m.allowed {
		return ErrDenied
	}
	if err := m.list.Collection().Remove(id); err != nil {
		return err
	}
	m.touch()
	m.list.Clamp()
	m.log.Info().Int("id", id).Msg("record removed")
	return nil
}

// Mutate runs a targeted status change under the permission and
// protected-record gates.
func (m *Module[T]) Mutate(id int, fn func(*T) error) (T, error) {
	var zero T
	if !m.allowed {
		return zero, ErrDenied
	}
	changed, err := m.list.Collection().Mutate(id, fn)
	if err != nil {
		return zero, err
	}
	m.touch()
	m.log.Info().Int("id", id).Msg("status changed")
	return changed, nil
}

func (m *Module[T]) touch() {
	if m.ws != nil {
		m.ws.Touch()
	}
}

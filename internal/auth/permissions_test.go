package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	caps := NewCapabilities(PermClients, PermSales)
	assert.True(t, caps.Has(PermClients))
	assert.True(t, caps.Has(PermSales))
	assert.False(t, caps.Has(PermRoles))
}

func TestWildcardGrantsEverything(t *testing.T) {
	caps := NewCapabilities(Wildcard)
	for _, e := range Menu() {
		assert.True(t, caps.Has(e.Permission), e.ID)
	}
}

func TestMenuForFilters(t *testing.T) {
	caps := NewCapabilities(PermDashboard, PermClients)
	entries := MenuFor(caps)
	assert.Len(t, entries, 2)
	assert.Equal(t, "dashboard", entries[0].ID)
	assert.Equal(t, "clients", entries[1].ID)
}

func TestCategoriesKeepMenuOrder(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []string{"Inicio", "Configuración", "Personas", "Agenda", "Catálogo", "Movimientos", "Inventario"}, cats)
}

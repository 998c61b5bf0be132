package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceIDStaysStable(t *testing.T) {
	ws := NewWorkspace()
	id := ws.ID

	ws.Touch()
	ws.ActiveModule = "clients"
	ws.Touch()

	assert.Equal(t, id, ws.ID)
	assert.True(t, ws.Unsaved)
}

func TestExportRefIsPerDocument(t *testing.T) {
	ws := NewWorkspace()

	a := ws.ExportRef()
	b := ws.ExportRef()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, ws.ID, a)
}

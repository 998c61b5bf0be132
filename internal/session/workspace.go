package session

import (
	"time"

	"github.com/google/uuid"
)

// Workspace tracks one running back-office session: a stable
// identity for exports, the active module, and whether anything was
// changed since the collections were seeded.
type Workspace struct {
	ID           string
	ActiveModule string
	Unsaved      bool
	LastModified time.Time
}

func NewWorkspace() *Workspace {
	return &Workspace{
		ID:           uuid.New().String(),
		ActiveModule: "dashboard",
		LastModified: time.Now(),
	}
}

// Touch marks the workspace dirty after any collection mutation.
func (w *Workspace) Touch() {
	w.Unsaved = true
	w.LastModified = time.Now()
}

// ExportRef returns a fresh reference for a generated document
// (receipt PDF, CSV export).
func (w *Workspace) ExportRef() string {
	return uuid.New().String()
}

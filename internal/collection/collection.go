// Package collection is the list-management core shared by every
// admin module: an ordered in-memory collection with max+1 id
// assignment, plus a filtered/paginated view over it.
package collection

// Descriptor parameterizes the generic core for one entity type.
// Only ID and SetID are mandatory; the rest default to permissive
// no-ops so catalogue modules stay short.
type Descriptor[T any] struct {
	ID    func(T) int
	SetID func(*T, int)

	// OnCreate stamps defaults (initial status, created-at, derived
	// fields) on a validated draft before it is appended.
	OnCreate func(*T)
	// OnUpdate recomputes derived fields and the updated-at stamp.
	OnUpdate func(*T)

	// Protected records refuse remove and status toggles.
	Protected func(T) bool
	// Terminal records refuse update and remove.
	Terminal func(T) bool

	// SearchText lists the field values matched (case-insensitively)
	// by the search term.
	SearchText func(T) []string
	// Filters maps a filter field to its exact-match predicate. The
	// sentinel value "all" is handled by List and never reaches these.
	Filters map[string]func(T, string) bool
}

// Collection owns the canonical ordered slice for one module. It is
// the single writer; every mutation goes through Create, Update,
// Remove or Mutate.
type Collection[T any] struct {
	desc  Descriptor[T]
	items []T
}

func New[T any](desc Descriptor[T], seed []T) *Collection[T] {
	c := &Collection[T]{desc: desc}
	c.items = append(c.items, seed...)
	return c
}

// Items returns a copy; callers must not mutate records in place.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// ID reads the record's id through the descriptor.
func (c *Collection[T]) ID(item T) int {
	return c.desc.ID(item)
}

func (c *Collection[T]) Get(id int) (T, error) {
	for _, item := range c.items {
		if c.desc.ID(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Create assigns the next id and appends the draft. The id is
// computed from the collection's contents at this very moment, never
// cached, so ids stay unique even if creates are ever queued.
func (c *Collection[T]) Create(draft T) (T, error) {
	maxID := 0
	for _, item := range c.items {
		if id := c.desc.ID(item); id > maxID {
			maxID = id
		}
	}
	c.desc.SetID(&draft, maxID+1)
	if c.desc.OnCreate != nil {
		c.desc.OnCreate(&draft)
	}
	c.items = append(c.items, draft)
	return draft, nil
}

// Update replaces the record with the same id. The record keeps its
// position; derived fields are recomputed via OnUpdate.
func (c *Collection[T]) Update(rec T) (T, error) {
	var zero T
	id := c.desc.ID(rec)
	for i, item := range c.items {
		if c.desc.ID(item) != id {
			continue
		}
		if c.desc.Terminal != nil && c.desc.Terminal(item) {
			return zero, ErrTerminal
		}
		if c.desc.OnUpdate != nil {
			c.desc.OnUpdate(&rec)
		}
		c.items[i] = rec
		return rec, nil
	}
	return zero, ErrNotFound
}

// Remove deletes the record outright. Protected and terminal records
// refuse; the rule lives here, not behind a disabled button.
func (c *Collection[T]) Remove(id int) error {
	for i, item := range c.items {
		if c.desc.ID(item) != id {
			continue
		}
		if c.desc.Protected != nil && c.desc.Protected(item) {
			return ErrProtected
		}
		if c.desc.Terminal != nil && c.desc.Terminal(item) {
			return ErrTerminal
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// Mutate applies a targeted change (status toggle, lifecycle step)
// under the protected-record gate. fn may refuse with its own error,
// in which case the collection is left unchanged.
func (c *Collection[T]) Mutate(id int, fn func(*T) error) (T, error) {
	var zero T
	for i, item := range c.items {
		if c.desc.ID(item) != id {
			continue
		}
		if c.desc.Protected != nil && c.desc.Protected(item) {
			return zero, ErrProtected
		}
		changed := item
		if err := fn(&changed); err != nil {
			return zero, err
		}
		if c.desc.OnUpdate != nil {
			c.desc.OnUpdate(&changed)
		}
		c.items[i] = changed
		return changed, nil
	}
	return zero, ErrNotFound
}

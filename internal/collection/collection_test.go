package collection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRec struct {
	ID        int
	Name      string
	Status    string
	Protected bool
}

func testDesc() Descriptor[testRec] {
	return Descriptor[testRec]{
		ID:    func(r testRec) int { return r.ID },
		SetID: func(r *testRec, id int) { r.ID = id },
		OnCreate: func(r *testRec) {
			if r.Status == "" {
				r.Status = "active"
			}
		},
		Protected: func(r testRec) bool { return r.Protected },
		Terminal:  func(r testRec) bool { return r.Status == "completed" },
		SearchText: func(r testRec) []string {
			return []string{r.Name}
		},
		Filters: map[string]func(testRec, string) bool{
			"status": func(r testRec, v string) bool { return r.Status == v },
		},
	}
}

func seedN(t *testing.T, c *Collection[testRec], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := c.Create(testRec{Name: fmt.Sprintf("rec %02d", i+1)})
		require.NoError(t, err)
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 20)

	seen := map[int]bool{}
	for _, r := range c.Items() {
		require.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestCreateDoesNotReuseIDsAfterDelete(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 3)

	require.NoError(t, c.Remove(2))
	created, err := c.Create(testRec{Name: "nuevo"})
	require.NoError(t, err)

	// max+1 over current contents: 3 is still present, so next is 4.
	assert.Equal(t, 4, created.ID)
}

func TestCreateStampsDefaults(t *testing.T) {
	c := New(testDesc(), nil)
	created, err := c.Create(testRec{Name: "Corte"})
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, 1, c.Len())
}

func TestUpdateReplacesByID(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 2)

	updated, err := c.Update(testRec{ID: 2, Name: "renombrado", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, "renombrado", updated.Name)

	got, err := c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "renombrado", got.Name)
}

func TestUpdateUnknownIDSurfacesNotFound(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 1)

	_, err := c.Update(testRec{ID: 99, Name: "fantasma"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTerminalRecordIsImmutable(t *testing.T) {
	c := New(testDesc(), []testRec{{ID: 1, Name: "done", Status: "completed"}})

	_, err := c.Update(testRec{ID: 1, Name: "edited"})
	assert.ErrorIs(t, err, ErrTerminal)

	err = c.Remove(1)
	assert.ErrorIs(t, err, ErrTerminal)

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "done", got.Name, "collection must be unchanged")
	assert.Equal(t, 1, c.Len())
}

func TestProtectedRecordRefusesRemoveAndMutate(t *testing.T) {
	c := New(testDesc(), []testRec{{ID: 1, Name: "admin", Status: "active", Protected: true}})

	err := c.Remove(1)
	assert.ErrorIs(t, err, ErrProtected)

	_, err = c.Mutate(1, func(r *testRec) error {
		r.Status = "inactive"
		return nil
	})
	assert.ErrorIs(t, err, ErrProtected)

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)
}

func TestMutateRollsBackOnRefusal(t *testing.T) {
	c := New(testDesc(), []testRec{{ID: 1, Name: "a", Status: "active"}})

	_, err := c.Mutate(1, func(r *testRec) error {
		r.Status = "broken"
		return ErrTransition
	})
	assert.ErrorIs(t, err, ErrTransition)

	got, _ := c.Get(1)
	assert.Equal(t, "active", got.Status)
}

func TestRemoveUnknownIDSurfacesNotFound(t *testing.T) {
	c := New(testDesc(), nil)
	assert.ErrorIs(t, c.Remove(5), ErrNotFound)
}

func TestFilteredIsPureAndOrderPreserving(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 12)
	l := NewList(c, 5)
	l.SetSearchTerm("rec 0")

	first := l.Filtered()
	second := l.Filtered()
	assert.Equal(t, first, second, "same inputs must give identical views")

	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID, first[i].ID, "insertion order must survive filtering")
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := New(testDesc(), []testRec{
		{ID: 1, Name: "Corte Clásico", Status: "active"},
		{ID: 2, Name: "Manicure", Status: "active"},
	})
	l := NewList(c, 5)

	l.SetSearchTerm("corte")
	require.Len(t, l.Filtered(), 1)
	assert.Equal(t, 1, l.Filtered()[0].ID)

	l.SetSearchTerm("ZZZ")
	assert.Empty(t, l.Filtered(), "unmatched search yields empty view, not an error")
}

func TestFilterSentinelAllMatchesEverything(t *testing.T) {
	c := New(testDesc(), []testRec{
		{ID: 1, Status: "active"},
		{ID: 2, Status: "inactive"},
	})
	l := NewList(c, 5)

	l.SetFilter("status", FilterAll)
	assert.Len(t, l.Filtered(), 2)

	l.SetFilter("status", "inactive")
	require.Len(t, l.Filtered(), 1)
	assert.Equal(t, 2, l.Filtered()[0].ID)
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 30)
	l := NewList(c, 5)

	l.SetPage(4)
	require.Equal(t, 4, l.CurrentPage())

	l.SetSearchTerm("rec")
	assert.Equal(t, 1, l.CurrentPage())

	l.SetPage(3)
	l.SetFilter("status", "active")
	assert.Equal(t, 1, l.CurrentPage())
}

func TestPaginationCoversFilteredExactlyOnce(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 23)
	l := NewList(c, 5)

	var union []testRec
	for p := 1; p <= l.TotalPages(); p++ {
		l.SetPage(p)
		union = append(union, l.Page()...)
	}
	assert.Equal(t, l.Filtered(), union, "pages must cover the view exactly once")
}

func TestSearchAndPaginateScenario(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 12)
	l := NewList(c, 5)

	require.Equal(t, 3, l.TotalPages())

	l.SetPage(2)
	page := l.Page()
	require.Len(t, page, 5)
	assert.Equal(t, 6, page[0].ID)
	assert.Equal(t, 10, page[4].ID)

	l.SetPage(3)
	page = l.Page()
	require.Len(t, page, 2)
	assert.Equal(t, 11, page[0].ID)
	assert.Equal(t, 12, page[1].ID)
}

func TestClampAfterShrink(t *testing.T) {
	c := New(testDesc(), nil)
	seedN(t, c, 6)
	l := NewList(c, 5)
	l.SetPage(2)

	require.NoError(t, c.Remove(6))
	l.Clamp()

	assert.Equal(t, 1, l.CurrentPage())
	assert.Len(t, l.Page(), 5)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New(testDesc(), []testRec{{ID: 1, Name: "a"}})
	items := c.Items()
	items[0].Name = "mutated"

	got, _ := c.Get(1)
	assert.Equal(t, "a", got.Name)
}

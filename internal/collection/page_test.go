package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPagesNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
}

func TestSliceOutOfRangeIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, Slice(items, 2, 5))
	assert.Empty(t, Slice(items, 0, 5))
	assert.Equal(t, []int{1, 2, 3}, Slice(items, 1, 5))
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"single page", 1, 1, []int{1}},
		{"fewer than five", 2, 3, []int{1, 2, 3}},
		{"centered", 5, 9, []int{3, 4, 5, 6, 7}},
		{"left edge", 1, 9, []int{1, 2, 3, 4, 5}},
		{"near left edge", 2, 9, []int{1, 2, 3, 4, 5}},
		{"right edge", 9, 9, []int{5, 6, 7, 8, 9}},
		{"near right edge", 8, 9, []int{5, 6, 7, 8, 9}},
		{"current clamped", 20, 4, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Window(tc.current, tc.total)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, len(got), 5)
			for _, p := range got {
				assert.GreaterOrEqual(t, p, 1)
				assert.LessOrEqual(t, p, max(tc.total, 1))
			}
		})
	}
}

func TestPrevNextBounds(t *testing.T) {
	assert.False(t, CanPrev(1))
	assert.True(t, CanPrev(2))
	assert.False(t, CanNext(3, 3))
	assert.True(t, CanNext(2, 3))
}

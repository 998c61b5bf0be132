package collection

import "strings"

// FilterAll is the sentinel filter value that matches every record.
const FilterAll = "all"

// List is the view state over a Collection: search term, filter
// values and current page. Filtering is pure and order-preserving;
// any change to the term or a filter resets the page to 1.
type List[T any] struct {
	col      *Collection[T]
	pageSize int

	searchTerm string
	filters    map[string]string
	page       int
}

func NewList[T any](col *Collection[T], pageSize int) *List[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List[T]{
		col:      col,
		pageSize: pageSize,
		filters:  map[string]string{},
		page:     1,
	}
}

func (l *List[T]) Collection() *Collection[T] { return l.col }

func (l *List[T]) PageSize() int { return l.pageSize }

func (l *List[T]) SearchTerm() string { return l.searchTerm }

func (l *List[T]) SetSearchTerm(term string) {
	l.searchTerm = term
	l.page = 1
}

func (l *List[T]) Filter(field string) string {
	if v, ok := l.filters[field]; ok {
		return v
	}
	return FilterAll
}

func (l *List[T]) SetFilter(field, value string) {
	l.filters[field] = value
	l.page = 1
}

// Filtered applies the search predicate AND every active filter,
// preserving insertion order. An unmatched term yields an empty
// view, never an error.
func (l *List[T]) Filtered() []T {
	term := strings.ToLower(strings.TrimSpace(l.searchTerm))
	var out []T
	for _, item := range l.col.items {
		if term != "" && !matchesSearch(l.col.desc, item, term) {
			continue
		}
		if !matchesFilters(l.col.desc, item, l.filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](desc Descriptor[T], item T, term string) bool {
	if desc.SearchText == nil {
		return false
	}
	for _, field := range desc.SearchText(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](desc Descriptor[T], item T, filters map[string]string) bool {
	for field, value := range filters {
		if value == "" || value == FilterAll {
			continue
		}
		pred, ok := desc.Filters[field]
		if !ok {
			continue
		}
		if !pred(item, value) {
			return false
		}
	}
	return true
}

func (l *List[T]) CurrentPage() int { return l.page }

func (l *List[T]) TotalPages() int {
	return TotalPages(len(l.Filtered()), l.pageSize)
}

// SetPage clamps out-of-range targets instead of failing.
func (l *List[T]) SetPage(page int) {
	total := l.TotalPages()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	l.page = page
}

func (l *List[T]) NextPage() { l.SetPage(l.page + 1) }

func (l *List[T]) PrevPage() { l.SetPage(l.page - 1) }

// Clamp re-fits the page after the underlying collection changed
// (a delete can shrink the filtered view under the current page).
func (l *List[T]) Clamp() {
	l.SetPage(l.page)
}

// Page returns the slice for the current page. If the page ran past
// the end the slice is empty and the UI shows its no-records state.
func (l *List[T]) Page() []T {
	return Slice(l.Filtered(), l.page, l.pageSize)
}

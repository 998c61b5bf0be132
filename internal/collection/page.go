package collection

// TotalPages is never below 1, so the pagination bar always has a
// page to show even over an empty view.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Slice returns the records of one page. Out-of-range pages come
// back empty rather than panicking.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window returns at most 5 consecutive page numbers centered on
// current, sliding at the boundaries so min(5, total) numbers show.
func Window(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + 4
	if end > total {
		end = total
		start = end - 4
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

func CanPrev(current int) bool { return current > 1 }

func CanNext(current, total int) bool { return current < total }

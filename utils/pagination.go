package utils

// Paginate returns the sub-slice [offset, offset+limit) of items clamped to
// the available length, plus the length of items before slicing. The input
// slice is never mutated, so repeated calls with the same arguments yield
// the same page.
func Paginate[T any](items []T, offset, limit int) ([]T, int) {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []T{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], total
}

package views

import "github.com/jrazmi/dashboard/core/scaffolding/fop"

// Paginate returns the 1-based page of items. A page below 1 is treated as
// 1 and a page past the end is empty. A non-positive size falls back to
// fop.DefaultPageSize.
func Paginate[T any](items []T, page fop.PageNumber) ([]T, fop.PageInfo) {
	size := page.PageSize
	if size <= 0 {
		size = fop.DefaultPageSize
	}
	n := page.Page
	if n < 1 {
		n = 1
	}

	info := fop.PageInfo{
		Page:       n,
		PageSize:   size,
		Total:      len(items),
		TotalPages: (len(items) + size - 1) / size,
	}

	start := (n - 1) * size
	if start >= len(items) {
		return []T{}, info
	}
	end := min(start+size, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, info
}

package listview

// Page is one slice of a filtered collection. Number is the effective page
// after clamping, which may differ from the page that was requested.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	Total      int
}

// Paginate slices items for the requested page. TotalPages is never below 1,
// so an empty collection still renders as "page 1 of 1" with no items, and
// any requested page is clamped into [1, TotalPages].
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
	}
}

package catalog

// Paginate returns the page-th slice of items (1-based), pageSize items per
// page, clamped to the collection bounds. An out-of-range page yields an
// empty slice rather than an error.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page <= 0 {
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

// TotalPages is the number of pages needed for count items; 0 for an empty
// collection.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage keeps a requested page inside [1, TotalPages(count, pageSize)].
// Callers clamp before paginating so a stale page number after a deletion
// still lands on a real page.
func ClampPage(page, count, pageSize int) int {
	if page < 1 {
		return 1
	}
	total := TotalPages(count, pageSize)
	if total == 0 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

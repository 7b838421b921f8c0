package filter

// Paginate returns the 1-based page of items, clamped to the available
// length. Out of range pages and non-positive sizes yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// TotalPages returns how many pages of pageSize are needed for n items.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// LimitTier truncates items to limit unless premium is set. A non-positive
// limit disables truncation.
func LimitTier[T any](items []T, premium bool, limit int) ([]T, bool) {
	if premium || limit <= 0 || len(items) <= limit {
		return items, false
	}
	return items[:limit], true
}

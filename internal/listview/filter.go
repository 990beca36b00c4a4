package listview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter keeps the items whose name contains search, ignoring case. Order is
// preserved and the result never aliases items.
func Filter[T any](items []T, search string, name func(T) string) []T {
	out := make([]T, 0, len(items))
	if search == "" {
		return append(out, items...)
	}
	lower := cases.Lower(language.Und)
	needle := lower.String(search)
	for _, item := range items {
		if strings.Contains(lower.String(name(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Paginate returns items[(page-1)*size : page*size] bounded to the slice.
// Pages past the end yield an empty slice; they are not clamped.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

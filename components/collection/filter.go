package collection

import "strings"

// Filter is the Filter View's query state.
type Filter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

// Query returns the records matching search and category, preserving input
// order. A record matches when any of its search fields contains search
// case-insensitively, and category is empty or equals the record's
// categorical field exactly.
func Query[T any](kind Kind[T], records []T, search, category string) []T {
	needle := strings.ToLower(search)
	out := make([]T, 0, len(records))
	for _, record := range records {
		if category != "" && kind.Category(record) != category {
			continue
		}
		if needle != "" && !matchesAny(kind.SearchText(record), needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesAny(fields []string, needle string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Categories returns the filter options for a collection: the kind's fixed
// list when it has one, otherwise the distinct categories present in
// records, in first-seen order.
func Categories[T any](kind Kind[T], records []T) []string {
	if lister, ok := any(kind).(CategoryLister); ok {
		return append([]string{}, lister.CategoryOptions()...)
	}
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, record := range records {
		category := kind.Category(record)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

package listview

import "strings"

// MatchAll is the reserved filter value meaning "impose no constraint on this
// dimension".
const MatchAll = "all"

// Query is the filter state of one admin screen: a free-text search plus the
// selected value per categorical dimension, keyed by dimension name.
type Query struct {
	Search  string
	Filters map[string]string
}

// Dimension describes one categorical filter: its name as it appears in the
// query, and how to read the compared field off an item.
type Dimension[T any] struct {
	Name  string
	Value func(T) string
}

// Filter applies the free-text search and every categorical dimension to
// items, AND-ing all predicates. The result preserves input order and the
// input slice is never modified.
//
// Text matching is a case-insensitive substring test over the fields returned
// by searchFields; an item matches when any field contains the query. An
// empty query matches everything. Categorical matching is exact, case
// sensitive equality, bypassed when the selected value is MatchAll or the
// dimension is absent from the query.
func Filter[T any](items []T, q Query, searchFields func(T) []string, dims []Dimension[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesText(item, needle, searchFields) {
			continue
		}
		if !matchesDimensions(item, q.Filters, dims) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesText[T any](item T, needle string, searchFields func(T) []string) bool {
	if searchFields == nil {
		return false
	}
	for _, field := range searchFields(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func matchesDimensions[T any](item T, selected map[string]string, dims []Dimension[T]) bool {
	for _, dim := range dims {
		want, ok := selected[dim.Name]
		if !ok || want == "" || want == MatchAll {
			continue
		}
		if dim.Value(item) != want {
			return false
		}
	}
	return true
}

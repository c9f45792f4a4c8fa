// Package listing narrows and aggregates in-memory entity lists the way the
// admin tables present them: a search box, a date range and status tabs.
package listing

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
)

// Query describes the filters applied to a list. Zero values disable a filter.
type Query struct {
	Search string
	From   time.Time
	To     time.Time
	Status string
}

// Accessors extract the fields a Query looks at.
type Accessors[T any] struct {
	// SearchFields returns the values matched against the search term.
	SearchFields func(T) []string
	CreatedAt    func(T) time.Time
	Status       func(T) string
}

// MatchesSearch reports whether any field contains term, ignoring case.
// An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// InRange reports whether t lies in [from, to). Zero bounds are open.
func InRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}

// Filter returns the items matching q. The result never aliases items.
func Filter[T any](items []T, q Query, acc Accessors[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if acc.SearchFields != nil && !MatchesSearch(q.Search, acc.SearchFields(it)...) {
			continue
		}
		if acc.CreatedAt != nil && !InRange(acc.CreatedAt(it), q.From, q.To) {
			continue
		}
		if q.Status != "" && acc.Status != nil && acc.Status(it) != q.Status {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Count tallies items per status. Every status in the vocabulary is present,
// values outside it are counted under their raw key, and "all" equals the sum
// of every other key. Items whose status is literally "all" are skipped.
func Count[T any](items []T, statuses []string, statusOf func(T) string) entities.StatusCounts {
	counts := emptyCounts(statuses)
	for _, it := range items {
		status := statusOf(it)
		if status == entities.CountAll {
			continue
		}
		counts[status]++
		counts[entities.CountAll]++
	}
	return counts
}

// Normalize turns grouped database counts into StatusCounts with the same
// guarantees as Count.
func Normalize(grouped map[string]int, statuses []string) entities.StatusCounts {
	counts := emptyCounts(statuses)
	for status, n := range grouped {
		if status == entities.CountAll {
			continue
		}
		counts[status] += n
		counts[entities.CountAll] += n
	}
	return counts
}

func emptyCounts(statuses []string) entities.StatusCounts {
	counts := make(entities.StatusCounts, len(statuses)+1)
	counts[entities.CountAll] = 0
	for _, s := range statuses {
		counts[s] = 0
	}
	return counts
}

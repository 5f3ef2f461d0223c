package store

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// SortKey orders the list view
type SortKey string

const (
	SortCreated SortKey = "created"
	SortTitle   SortKey = "title"
	SortStatus  SortKey = "status"
)

// SortKeys in the order the TUI cycles through them
var SortKeys = []SortKey{SortCreated, SortTitle, SortStatus}

// ParseSortKey accepts a sort key name; empty means SortCreated
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "", SortCreated:
		return SortCreated, nil
	case SortTitle, SortStatus:
		return k, nil
	default:
		return "", fmt.Errorf("invalid sort key %q (must be: created, title, status)", s)
	}
}

// Next cycles created -> title -> status -> created
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// Query filters and orders the list view. Zero values mean "all" and
// newest first.
type Query struct {
	Status     *models.Status
	CategoryID string
	Sort       SortKey
}

// Matches reports whether t passes the query's filters
func (q Query) Matches(t models.Task) bool {
	if q.Status != nil && t.Status != *q.Status {
		return false
	}
	if q.CategoryID != "" && t.CategoryID != q.CategoryID {
		return false
	}
	return true
}

// List returns the tasks matching q in q.Sort order
func (s *Store) List(q Query) []models.Task {
	out := make([]models.Task, 0, len(s.st.tasks))
	for _, t := range s.st.tasks {
		if q.Matches(t) {
			out = append(out, t)
		}
	}

	slices.SortStableFunc(out, compareFor(q.Sort))
	return out
}

// compareFor returns the ordering for key. Equal keys compare as 0 so the
// stable sort keeps collection (creation) order for ties.
func compareFor(key SortKey) func(a, b models.Task) int {
	switch key {
	case SortTitle:
		return func(a, b models.Task) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortStatus:
		return func(a, b models.Task) int {
			return cmp.Compare(a.Status.Order(), b.Status.Order())
		}
	default:
		return func(a, b models.Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}
}

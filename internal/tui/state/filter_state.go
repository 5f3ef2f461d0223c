package state

import (
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// FilterState holds the list view's sort key and the filters shared by
// both views
type FilterState struct {
	sort       store.SortKey
	status     *models.Status
	categoryID string
}

// NewFilterState starts unfiltered, newest first
func NewFilterState() *FilterState {
	return &FilterState{sort: store.SortCreated}
}

func (s *FilterState) Sort() store.SortKey { return s.sort }
func (s *FilterState) CategoryID() string  { return s.categoryID }

// Status returns the status filter, or nil for all
func (s *FilterState) Status() *models.Status { return s.status }

// CycleSort steps created -> title -> status
func (s *FilterState) CycleSort() {
	s.sort = s.sort.Next()
}

// CycleStatus steps all -> todo -> in-progress -> done -> all
func (s *FilterState) CycleStatus() {
	if s.status == nil {
		first := models.Statuses[0]
		s.status = &first
		return
	}
	if *s.status == models.Statuses[len(models.Statuses)-1] {
		s.status = nil
		return
	}
	next := s.status.Next()
	s.status = &next
}

// CycleCategory steps all -> each id in order -> all. A filter on a
// category that no longer exists restarts from all.
func (s *FilterState) CycleCategory(ids []string) {
	if s.categoryID == "" {
		if len(ids) > 0 {
			s.categoryID = ids[0]
		}
		return
	}
	for i, id := range ids {
		if id == s.categoryID {
			if i+1 < len(ids) {
				s.categoryID = ids[i+1]
			} else {
				s.categoryID = ""
			}
			return
		}
	}
	s.categoryID = ""
}

// DropCategory clears the category filter if it points at id
func (s *FilterState) DropCategory(id string) {
	if s.categoryID == id {
		s.categoryID = ""
	}
}

// Reset returns to unfiltered, keeping the sort key
func (s *FilterState) Reset() {
	s.status = nil
	s.categoryID = ""
}

// Query builds the store query for the list view
func (s *FilterState) Query() store.Query {
	return store.Query{Status: s.status, CategoryID: s.categoryID, Sort: s.sort}
}

// StatusLabel names the status filter for the header
func (s *FilterState) StatusLabel() string {
	if s.status == nil {
		return "all"
	}
	return s.status.String()
}

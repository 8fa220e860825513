// Package client holds the visitor-side registration workflow: event
// selection, fee totals, the draft hand-off and payment confirmation.
package client

import (
	"sort"

	"altranzfest/internal/domain"
)

// Selection is the set of chosen event ids. The zero value is an empty selection.
type Selection struct {
	ids map[int]struct{}
}

// Toggle adds id if absent and removes it if present. It reports whether id
// is selected afterwards.
func (s *Selection) Toggle(id int) bool {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Selection) IsSelected(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (s *Selection) Clear() {
	s.ids = nil
}

// TotalFee sums the fees of the selected events found in catalog.
// Ids missing from catalog are skipped.
func TotalFee(sel *Selection, catalog domain.Catalog) int {
	total := 0
	for _, e := range catalog {
		if sel.IsSelected(e.ID) {
			total += e.Fee
		}
	}
	return total
}

// Selected returns the catalog entries for the selection, in catalog order.
func Selected(sel *Selection, catalog domain.Catalog) []domain.Event {
	out := make([]domain.Event, 0, sel.Len())
	for _, e := range catalog {
		if sel.IsSelected(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

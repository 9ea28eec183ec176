package skillgap

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// SortByPriority orders entries by descending priority. Equal priorities
// keep their relative order, so callers control tie-breaking by the order
// they pass entries in.
func SortByPriority(entries []*domain.RoadmapEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})
}

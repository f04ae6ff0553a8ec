package merge

import (
	"sort"

	"github.com/Maxamed/gaza-genocide/internal/model"
)

// Tally counts records per category. Records without a string
// "category" land in the "unknown" bucket.
func Tally(c model.Collection) map[string]int {
	tally := make(map[string]int)
	for _, b := range c {
		tally[b.Category()]++
	}
	return tally
}

// SortedCategories returns the tally's category names in ascending
// lexicographic order, for deterministic reporting.
func SortedCategories(tally map[string]int) []string {
	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// README: Suggestion merging: dedup across sources, rank ordering, display cap.
package search

import (
	"sort"

	"wayfind/internal/modules/location"
)

// mergeRanked combines the three suggestion sources into one display list.
// Local (metro) results are taken as-is; remote results are dropped when
// they sit within threshold degrees of a local result; gazetteer results
// are dropped on an id collision or proximity to anything already kept.
// The final list is stably sorted by rank and capped.
func mergeRanked(local, remote, gazetteer []location.Location, threshold float64, limit int) []location.Location {
	merged := make([]location.Location, 0, len(local)+len(remote)+len(gazetteer))
	merged = append(merged, local...)

	for _, r := range remote {
		if nearAny(r, local, threshold) {
			continue
		}
		merged = append(merged, r)
	}

	for _, g := range gazetteer {
		if sameIDAny(g, merged) || nearAny(g, merged, threshold) {
			continue
		}
		merged = append(merged, g)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rank < merged[j].Rank
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func nearAny(loc location.Location, existing []location.Location, threshold float64) bool {
	for _, e := range existing {
		if loc.Near(e, threshold) {
			return true
		}
	}
	return false
}

func sameIDAny(loc location.Location, existing []location.Location) bool {
	if loc.ID == "" {
		return false
	}
	for _, e := range existing {
		if e.ID == loc.ID {
			return true
		}
	}
	return false
}

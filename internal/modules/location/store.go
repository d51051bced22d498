// README: Gazetteer-backed location store for the REST surface.
package location

import (
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("location not found")
	ErrBadRequest = errors.New("bad request")
)

// Store serves the location list loaded from the gazetteer file. The data
// is immutable after startup, so reads need no locking.
type Store struct {
	locations []Location
	byID      map[string]Location
}

func NewStore(ds Dataset) *Store {
	byID := make(map[string]Location, len(ds.Gazetteer))
	for _, loc := range ds.Gazetteer {
		loc.EnsureRanges()
		byID[loc.ID] = loc
	}
	locations := make([]Location, 0, len(byID))
	for _, loc := range ds.Gazetteer {
		locations = append(locations, byID[loc.ID])
	}
	return &Store{locations: locations, byID: byID}
}

// All returns every location in the list.
func (s *Store) All() []Location {
	out := make([]Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Search returns locations whose name, address, or area contains the query
// (case-insensitive). An empty query matches nothing.
func (s *Store) Search(query string) []Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Location{}
	}
	results := []Location{}
	for _, loc := range s.locations {
		if strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.Address), q) ||
			strings.Contains(strings.ToLower(loc.Area), q) {
			results = append(results, loc)
		}
	}
	return results
}

// Get returns the location with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Location, error) {
	loc, ok := s.byID[id]
	if !ok {
		return Location{}, ErrNotFound
	}
	return loc, nil
}

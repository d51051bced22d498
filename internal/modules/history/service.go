// README: History service: records selections and serves the recent list.
package history

import (
	"context"
	"time"

	"wayfind/internal/modules/location"

	"github.com/google/uuid"
)

// Service sits between the REST surface and the store. The clock is
// injectable for tests.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Record appends an entry for the selected location and returns it.
func (s *Service) Record(ctx context.Context, loc location.Location) (Entry, error) {
	e := NewEntry(loc, s.now())
	if err := s.store.Append(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// RecordEntry appends a caller-built entry, filling in the id, timestamp,
// and display date when absent.
func (s *Service) RecordEntry(ctx context.Context, e Entry) (Entry, error) {
	now := s.now()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
	if e.SearchDate == "" {
		e.SearchDate = e.Timestamp.Format("1/2/2006, 3:04:05 PM")
	}
	if e.LatitudeRange == nil || e.LongitudeRange == nil {
		loc := location.Location{
			Latitude:       e.Latitude,
			Longitude:      e.Longitude,
			LatitudeRange:  e.LatitudeRange,
			LongitudeRange: e.LongitudeRange,
		}
		loc.EnsureRanges()
		e.LatitudeRange = loc.LatitudeRange
		e.LongitudeRange = loc.LongitudeRange
	}
	if err := s.store.Append(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

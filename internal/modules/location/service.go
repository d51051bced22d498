// README: Location service for the REST surface, including customer location persistence.
package location

import (
	"context"
	"time"

	"wayfind/internal/types"
)

// CustomerLocation records a customer's selected location for later pickup
// scheduling. Persisted by a CustomerStore.
type CustomerLocation struct {
	CustomerID     string       `json:"customerId"`
	LocationID     string       `json:"locationId"`
	LocationName   string       `json:"locationName"`
	Address        string       `json:"address"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	LatitudeRange  *types.Range `json:"latitudeRange,omitempty"`
	LongitudeRange *types.Range `json:"longitudeRange,omitempty"`
	Area           string       `json:"area"`
	Pincode        string       `json:"pincode"`
	Timestamp      time.Time    `json:"timestamp"`
}

// CustomerStore persists customer location selections.
type CustomerStore interface {
	SaveCustomerLocation(ctx context.Context, cl CustomerLocation) error
}

type Service struct {
	store     *Store
	customers CustomerStore
}

func NewService(store *Store, customers CustomerStore) *Service {
	return &Service{store: store, customers: customers}
}

func (s *Service) All() []Location {
	return s.store.All()
}

func (s *Service) Search(query string) []Location {
	return s.store.Search(query)
}

func (s *Service) Get(id string) (Location, error) {
	return s.store.Get(id)
}

// Coordinates returns just the coordinate fields for a location.
func (s *Service) Coordinates(id string) (types.Point, *types.Range, *types.Range, error) {
	loc, err := s.store.Get(id)
	if err != nil {
		return types.Point{}, nil, nil, err
	}
	return loc.Point(), loc.LatitudeRange, loc.LongitudeRange, nil
}

// SaveCustomerLocationCommand carries a customer's location selection.
// Address and coordinates are optional overrides; the stored record falls
// back to the referenced location's own fields.
type SaveCustomerLocationCommand struct {
	CustomerID string
	LocationID string
	Address    string
	Latitude   *float64
	Longitude  *float64
}

// SaveCustomerLocation validates the command against the location list and
// persists the resolved record.
func (s *Service) SaveCustomerLocation(ctx context.Context, cmd SaveCustomerLocationCommand) (CustomerLocation, error) {
	if cmd.CustomerID == "" || cmd.LocationID == "" {
		return CustomerLocation{}, ErrBadRequest
	}
	loc, err := s.store.Get(cmd.LocationID)
	if err != nil {
		return CustomerLocation{}, err
	}

	cl := CustomerLocation{
		CustomerID:     cmd.CustomerID,
		LocationID:     loc.ID,
		LocationName:   loc.Name,
		Address:        loc.Address,
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		LatitudeRange:  loc.LatitudeRange,
		LongitudeRange: loc.LongitudeRange,
		Area:           loc.Area,
		Pincode:        loc.Pincode,
		Timestamp:      time.Now().UTC(),
	}
	if cmd.Address != "" {
		cl.Address = cmd.Address
	}
	if cmd.Latitude != nil {
		cl.Latitude = *cmd.Latitude
	}
	if cmd.Longitude != nil {
		cl.Longitude = *cmd.Longitude
	}

	if s.customers != nil {
		if err := s.customers.SaveCustomerLocation(ctx, cl); err != nil {
			return CustomerLocation{}, err
		}
	}
	return cl, nil
}

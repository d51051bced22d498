// README: Geocoding port and the raw place shape shared by its adapters.
package maps

import "context"

// Place is a raw geocoding result before normalization into a Location.
type Place struct {
	Name        string
	DisplayName string
	Lat         float64
	Lng         float64
	Address     PlaceAddress
	OSMType     string
	OSMID       int64
}

// PlaceAddress is the address-component breakdown a provider may supply.
// Fields are empty when the provider omits them.
type PlaceAddress struct {
	HouseNumber   string
	Road          string
	Suburb        string
	Neighbourhood string
	CityDistrict  string
	City          string
	State         string
	Postcode      string
}

// Geocoder searches a free-text query against a remote place database.
// Implementations apply their own region bias; callers apply the geofence.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

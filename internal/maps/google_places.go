// README: Google Places geocoder adapter (alternative to Nominatim).
package maps

import (
	"context"
	"fmt"

	gmaps "googlemaps.github.io/maps"
)

// GooglePlacesService implements Geocoder using the Google Places text
// search API, region-biased the same way the Nominatim adapter is viewbox-
// biased.
type GooglePlacesService struct {
	client *gmaps.Client
	region string
}

// NewGooglePlacesService creates the adapter. region is a ccTLD bias such
// as "in".
func NewGooglePlacesService(apiKey, region string) (*GooglePlacesService, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GooglePlacesService{client: client, region: region}, nil
}

func (s *GooglePlacesService) Search(ctx context.Context, query string) ([]Place, error) {
	r := &gmaps.TextSearchRequest{
		Query:    query,
		Language: "en",
		Region:   s.region,
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api: %w", err)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, result := range resp.Results {
		places = append(places, Place{
			Name:        result.Name,
			DisplayName: result.FormattedAddress,
			Lat:         result.Geometry.Location.Lat,
			Lng:         result.Geometry.Location.Lng,
		})
	}
	return places, nil
}

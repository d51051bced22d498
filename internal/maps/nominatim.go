// README: OpenStreetMap Nominatim geocoder adapter.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wayfind/internal/geo"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimService implements Geocoder against the public Nominatim API.
// Requests carry a viewbox bias (bounded=0, so results outside the box are
// still returned and filtered later) and a User-Agent, which Nominatim
// requires.
type NominatimService struct {
	client       *http.Client
	baseURL      string
	viewbox      geo.Bounds
	countryCodes string
	userAgent    string
	limit        int
}

func NewNominatimService(baseURL string, viewbox geo.Bounds, countryCodes, userAgent string) *NominatimService {
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &NominatimService{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		viewbox:      viewbox,
		countryCodes: countryCodes,
		userAgent:    userAgent,
		limit:        20,
	}
}

type nominatimAddress struct {
	HouseNumber   string `json:"house_number"`
	Road          string `json:"road"`
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	CityDistrict  string `json:"city_district"`
	City          string `json:"city"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

type nominatimResult struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	OSMType     string           `json:"osm_type"`
	OSMID       int64            `json:"osm_id"`
	Address     nominatimAddress `json:"address"`
}

func (s *NominatimService) Search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(s.limit))
	params.Set("countrycodes", s.countryCodes)
	params.Set("bounded", "0")
	params.Set("viewbox", fmt.Sprintf("%v,%v,%v,%v",
		s.viewbox.MinLng, s.viewbox.MinLat, s.viewbox.MaxLng, s.viewbox.MaxLat))
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim search: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nominatim response: %w", err)
	}

	var raw []nominatimResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("nominatim response: %w", err)
	}

	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		places = append(places, Place{
			Name:        r.Name,
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lng:         lng,
			OSMType:     r.OSMType,
			OSMID:       r.OSMID,
			Address: PlaceAddress{
				HouseNumber:   r.Address.HouseNumber,
				Road:          r.Address.Road,
				Suburb:        r.Address.Suburb,
				Neighbourhood: r.Address.Neighbourhood,
				CityDistrict:  r.Address.CityDistrict,
				City:          r.Address.City,
				State:         r.Address.State,
				Postcode:      r.Address.Postcode,
			},
		})
	}
	return places, nil
}

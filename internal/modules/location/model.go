// README: Location model shared by the local datasets, the geocoder, and the REST surface.
package location

import "wayfind/internal/types"

// Location types carried by the metro dataset.
const (
	TypeMetroStation = "metro_station"
	TypeMetroPillar  = "metro_pillar"
)

// Rank orders suggestion sources; lower ranks sort first in the merged list.
type Rank int

const (
	RankPillarExact Rank = iota // query names the exact pillar number
	RankStationMatch
	RankPillarMatch
	RankRemoteGeocode
	RankGazetteer
	RankUnranked
)

// rangeDelta is the half-width of the coordinate box back-filled onto
// locations whose source supplies no explicit ranges (~1km).
const rangeDelta = 0.01

// Location is a normalized search result. The shape is unified regardless
// of whether it came from the metro dataset, the gazetteer, or the remote
// geocoder.
type Location struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	LatitudeRange  *types.Range `json:"latitudeRange,omitempty"`
	LongitudeRange *types.Range `json:"longitudeRange,omitempty"`
	Area           string       `json:"area"`
	Pincode        string       `json:"pincode"`
	Type           string       `json:"type,omitempty"`
	Line           string       `json:"line,omitempty"`      // metro stations only
	Reference      string       `json:"reference,omitempty"` // metro pillars only
	Rank           Rank         `json:"-"`
}

// EnsureRanges back-fills the ±rangeDelta coordinate boxes when the source
// did not supply them. Invariant afterwards: range.Min <= coord <= range.Max.
func (l *Location) EnsureRanges() {
	if l.LatitudeRange == nil {
		l.LatitudeRange = &types.Range{Min: l.Latitude - rangeDelta, Max: l.Latitude + rangeDelta}
	}
	if l.LongitudeRange == nil {
		l.LongitudeRange = &types.Range{Min: l.Longitude - rangeDelta, Max: l.Longitude + rangeDelta}
	}
}

// Point returns the location's coordinates as a value pair.
func (l Location) Point() types.Point {
	return types.Point{Lat: l.Latitude, Lng: l.Longitude}
}

// Near reports whether the other location lies within threshold degrees on
// both axes. Used to drop near-duplicate suggestions from lower-priority
// sources.
func (l Location) Near(other Location, threshold float64) bool {
	return abs(l.Latitude-other.Latitude) < threshold &&
		abs(l.Longitude-other.Longitude) < threshold
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// README: Search coordinator; owns debounce, cancellation, staleness control, and result merging.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"wayfind/internal/geo"
	"wayfind/internal/maps"
	"wayfind/internal/modules/location"

	"github.com/google/uuid"
)

// Geocoder is the remote place-search port the coordinator drives.
// Implementations live in internal/maps.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]maps.Place, error)
}

// Result is what gets published to the UI for one query. NoResults marks
// the explicit empty state; Fallback marks a merge built without remote
// results after a provider failure.
type Result struct {
	Query     string
	Locations []location.Location
	NoResults bool
	Fallback  bool
}

// Listener receives results. It is only ever invoked for the current
// query; results of superseded queries are discarded before they get here.
type Listener func(Result)

// Config carries the coordinator's tunables. All thresholds are
// configurable; DefaultConfig holds the production values.
type Config struct {
	Debounce          time.Duration
	Region            string   // region name matched against display names, e.g. "Hyderabad"
	QuerySuffix       string   // appended to the remote query for region bias
	AddressSuffix     []string // trailing components of synthesized addresses
	Bounds            geo.Bounds
	GeofenceTolerance float64 // degrees added around Bounds when filtering remote results
	DedupThreshold    float64 // degrees; closer results are considered duplicates
	MaxSuggestions    int
}

// DefaultConfig returns the production settings for the Hyderabad region.
func DefaultConfig() Config {
	return Config{
		Debounce:          200 * time.Millisecond,
		Region:            "Hyderabad",
		QuerySuffix:       ", Hyderabad, India",
		AddressSuffix:     []string{"Hyderabad", "Telangana"},
		Bounds:            geo.Bounds{MinLat: 17.1, MaxLat: 17.7, MinLng: 78.2, MaxLng: 78.6},
		GeofenceTolerance: 0.05,
		DedupThreshold:    0.001,
		MaxSuggestions:    15,
	}
}

// Coordinator serializes search execution for one user session. It owns
// the pending debounce timer, the in-flight request's cancel handle, and
// the current-query token; all three are mutated under one mutex.
type Coordinator struct {
	cfg      Config
	index    *location.Index
	geocoder Geocoder
	listener Listener

	mu          sync.Mutex
	timer       *time.Timer
	generation  uint64
	latestInput string
	cancel      context.CancelFunc
}

func NewCoordinator(cfg Config, index *location.Index, geocoder Geocoder, listener Listener) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		index:    index,
		geocoder: geocoder,
		listener: listener,
	}
}

// OnInput records a keystroke. The search fires once input has been quiet
// for the debounce interval; every call supersedes the pending timer and
// cancels any in-flight remote request. Empty input clears the session's
// current query without searching.
func (c *Coordinator) OnInput(text string) {
	query := strings.TrimSpace(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.latestInput = query
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if query == "" {
		return
	}

	c.timer = time.AfterFunc(c.cfg.Debounce, func() {
		c.mu.Lock()
		current := c.latestInput == query
		c.mu.Unlock()
		if current {
			c.Search(context.Background(), query)
		}
	})
}

// Search runs one query to completion: local index synchronously, remote
// geocode with cooperative cancellation, then merge, rank, and publish.
// A remote failure falls back to local-only results; a superseded query
// publishes nothing at all.
func (c *Coordinator) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	gen, sctx := c.begin(ctx, query)

	// Local results are cheap and never cancelled.
	local := c.index.SearchMetro(query)

	places, err := c.geocoder.Search(sctx, c.remoteQuery(query))
	if sctx.Err() != nil {
		// Superseded mid-flight: not a failure, so no fallback render.
		return
	}

	var remote []location.Location
	fallback := false
	if err != nil {
		fallback = true
	} else {
		remote = c.normalize(c.geofence(places))
	}

	gazetteer := c.index.SearchGazetteer(query)
	merged := mergeRanked(local, remote, gazetteer, c.cfg.DedupThreshold, c.cfg.MaxSuggestions)

	c.publish(gen, sctx, query, merged, fallback)
}

// begin registers the query as current: it cancels the previous in-flight
// search, bumps the generation token, and hands back a context the remote
// call should run under.
func (c *Coordinator) begin(parent context.Context, query string) (uint64, context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
	c.latestInput = query

	sctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	return c.generation, sctx
}

// publish is the single staleness checkpoint before any observable effect:
// the generation must still be current, the latest input must still equal
// the query, and the request must not have been cancelled. Any failing
// condition discards the result silently.
func (c *Coordinator) publish(gen uint64, sctx context.Context, query string, locs []location.Location, fallback bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.latestInput != query || sctx.Err() != nil {
		return
	}
	if c.listener == nil {
		return
	}
	c.listener(Result{
		Query:     query,
		Locations: locs,
		NoResults: len(locs) == 0,
		Fallback:  fallback,
	})
}

// remoteQuery augments the raw query for the geocoder: pillar queries gain
// the "metro" keyword, and the region suffix biases results locally.
func (c *Coordinator) remoteQuery(query string) string {
	q := query
	lower := strings.ToLower(query)
	if strings.Contains(lower, "pillar") && !strings.Contains(lower, "metro") {
		q = "metro " + q
	}
	return q + c.cfg.QuerySuffix
}

// geofence keeps remote results that are inside the region box (with the
// configured tolerance) OR whose display name mentions the region — an
// inclusive-OR filter, since addresses at the region's edge often carry
// the region name while sitting just outside the box.
func (c *Coordinator) geofence(places []maps.Place) []maps.Place {
	expanded := c.cfg.Bounds.Expand(c.cfg.GeofenceTolerance)
	region := strings.ToLower(c.cfg.Region)

	kept := places[:0]
	for _, p := range places {
		inBounds := expanded.Contains(p.Lat, p.Lng)
		namesRegion := region != "" && strings.Contains(strings.ToLower(p.DisplayName), region)
		if inBounds || namesRegion {
			kept = append(kept, p)
		}
	}
	return kept
}

// normalize converts raw geocoder places into the unified Location shape
// with generated ids and back-filled coordinate ranges.
func (c *Coordinator) normalize(places []maps.Place) []location.Location {
	locs := make([]location.Location, 0, len(places))
	for _, p := range places {
		name := p.Name
		if name == "" {
			name = firstSegment(p.DisplayName)
		}
		if p.Address.Road != "" {
			name = p.Address.Road
			if p.Address.HouseNumber != "" {
				name = p.Address.HouseNumber + ", " + name
			}
		}

		area := firstNonEmpty(
			p.Address.Suburb,
			p.Address.Neighbourhood,
			p.Address.CityDistrict,
			p.Address.City,
			c.cfg.Region,
		)

		var parts []string
		for _, part := range []string{p.Address.HouseNumber, p.Address.Road, p.Address.Suburb, p.Address.CityDistrict} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		parts = append(parts, c.cfg.AddressSuffix...)
		address := strings.Join(parts, ", ")
		if len(parts) == len(c.cfg.AddressSuffix) && p.DisplayName != "" {
			address = p.DisplayName
		}

		loc := location.Location{
			ID:        "nom_" + uuid.NewString(),
			Name:      name,
			Address:   address,
			Latitude:  p.Lat,
			Longitude: p.Lng,
			Area:      area,
			Pincode:   p.Address.Postcode,
			Rank:      location.RankRemoteGeocode,
		}
		loc.EnsureRanges()
		locs = append(locs, loc)
	}
	return locs
}

func firstSegment(displayName string) string {
	if i := strings.Index(displayName, ","); i >= 0 {
		return strings.TrimSpace(displayName[:i])
	}
	return displayName
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

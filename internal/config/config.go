// README: Config loader with env defaults for HTTP, DB, Redis, datasets, search, and providers.
package config

import (
	"os"
	"strconv"
	"time"

	"wayfind/internal/geo"
)

type SearchConfig struct {
	DebounceMs        int
	Region            string
	QuerySuffix       string
	GeofenceTolerance float64
	DedupThreshold    float64
	MaxSuggestions    int
	Bounds            geo.Bounds
}

type GeocoderConfig struct {
	Provider     string // "nominatim" or "google"
	NominatimURL string
	CountryCodes string
	UserAgent    string
	GoogleKey    string
	CacheTTL     time.Duration
}

type RoutingConfig struct {
	Provider string // "osrm" or "google"
	OSRMURL  string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Data struct {
		GazetteerPath string
		MetroPath     string
	}
	Search   SearchConfig
	Geocoder GeocoderConfig
	Routing  RoutingConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WAYFIND_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("WAYFIND_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("WAYFIND_REDIS_ADDR", "")

	cfg.Data.GazetteerPath = envOrDefault("WAYFIND_GAZETTEER_PATH", "data/hyderabad-locations.json")
	cfg.Data.MetroPath = envOrDefault("WAYFIND_METRO_PATH", "data/hyderabad-metro-stations.json")

	cfg.Search.DebounceMs = envOrDefaultInt("WAYFIND_SEARCH_DEBOUNCE_MS", 200)
	cfg.Search.Region = envOrDefault("WAYFIND_SEARCH_REGION", "Hyderabad")
	cfg.Search.QuerySuffix = envOrDefault("WAYFIND_SEARCH_QUERY_SUFFIX", ", Hyderabad, India")
	cfg.Search.GeofenceTolerance = envOrDefaultFloat("WAYFIND_SEARCH_GEOFENCE_TOLERANCE", 0.05)
	cfg.Search.DedupThreshold = envOrDefaultFloat("WAYFIND_SEARCH_DEDUP_THRESHOLD", 0.001)
	cfg.Search.MaxSuggestions = envOrDefaultInt("WAYFIND_SEARCH_MAX_SUGGESTIONS", 15)
	cfg.Search.Bounds = geo.Bounds{
		MinLat: envOrDefaultFloat("WAYFIND_BOUNDS_MIN_LAT", 17.1),
		MaxLat: envOrDefaultFloat("WAYFIND_BOUNDS_MAX_LAT", 17.7),
		MinLng: envOrDefaultFloat("WAYFIND_BOUNDS_MIN_LNG", 78.2),
		MaxLng: envOrDefaultFloat("WAYFIND_BOUNDS_MAX_LNG", 78.6),
	}

	cfg.Geocoder.Provider = envOrDefault("WAYFIND_GEOCODER", "nominatim")
	cfg.Geocoder.NominatimURL = envOrDefault("WAYFIND_NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocoder.CountryCodes = envOrDefault("WAYFIND_COUNTRY_CODES", "in")
	cfg.Geocoder.UserAgent = envOrDefault("WAYFIND_USER_AGENT", "wayfind/1.0")
	cfg.Geocoder.GoogleKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Geocoder.CacheTTL = time.Duration(envOrDefaultInt("WAYFIND_GEOCODE_CACHE_TTL_SEC", 600)) * time.Second

	cfg.Routing.Provider = envOrDefault("WAYFIND_ROUTER", "osrm")
	cfg.Routing.OSRMURL = envOrDefault("WAYFIND_OSRM_URL", "https://router.project-osrm.org")

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wayfind/internal/config"
	httptransport "wayfind/internal/http"
	"wayfind/internal/infra"
	"wayfind/internal/maps"
	"wayfind/internal/modules/history"
	"wayfind/internal/modules/location"
	"wayfind/internal/modules/navigation"
	"wayfind/internal/modules/search"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := location.LoadDataset(cfg.Data.GazetteerPath, cfg.Data.MetroPath)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}
	index := location.NewIndex(dataset)
	store := location.NewStore(dataset)

	var customerStore location.CustomerStore
	historyStore := history.Store(history.NewMemoryStore(history.ServerLimit))
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		customerStore = location.NewPostgresCustomerStore(dbPool)
		historyStore = history.NewPostgresStore(dbPool)
	}

	geocoder, err := buildGeocoder(cfg)
	if err != nil {
		log.Fatalf("geocoder init: %v", err)
	}
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		geocoder = maps.NewCachedGeocoder(geocoder, redisClient, cfg.Geocoder.CacheTTL)
	}

	directions, err := buildDirections(cfg)
	if err != nil {
		log.Fatalf("routing init: %v", err)
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Locations:  location.NewService(store, customerStore),
		History:    history.NewService(historyStore),
		Index:      index,
		SearchCfg:  searchConfig(cfg),
		Geocoder:   geocoder,
		Directions: directions,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func buildGeocoder(cfg config.Config) (search.Geocoder, error) {
	switch cfg.Geocoder.Provider {
	case "google":
		return maps.NewGooglePlacesService(cfg.Geocoder.GoogleKey, cfg.Search.Region)
	default:
		return maps.NewNominatimService(
			cfg.Geocoder.NominatimURL,
			cfg.Search.Bounds,
			cfg.Geocoder.CountryCodes,
			cfg.Geocoder.UserAgent,
		), nil
	}
}

func buildDirections(cfg config.Config) (navigation.Directions, error) {
	switch cfg.Routing.Provider {
	case "google":
		return maps.NewGoogleDirectionsService(cfg.Geocoder.GoogleKey, cfg.Search.Region)
	default:
		return maps.NewOSRMService(cfg.Routing.OSRMURL), nil
	}
}

func searchConfig(cfg config.Config) search.Config {
	sc := search.DefaultConfig()
	sc.Region = cfg.Search.Region
	sc.QuerySuffix = cfg.Search.QuerySuffix
	sc.Bounds = cfg.Search.Bounds
	sc.GeofenceTolerance = cfg.Search.GeofenceTolerance
	sc.DedupThreshold = cfg.Search.DedupThreshold
	sc.MaxSuggestions = cfg.Search.MaxSuggestions
	return sc
}

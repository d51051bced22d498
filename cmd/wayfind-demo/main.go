// README: CLI demo; runs one query through the full search pipeline and prints the merged suggestions.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"wayfind/internal/config"
	"wayfind/internal/maps"
	"wayfind/internal/modules/location"
	"wayfind/internal/modules/search"
)

func main() {
	_ = godotenv.Load()

	query := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if query == "" {
		log.Fatal("usage: wayfind-demo <query>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dataset, err := location.LoadDataset(cfg.Data.GazetteerPath, cfg.Data.MetroPath)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}
	index := location.NewIndex(dataset)

	geocoder := maps.NewNominatimService(
		cfg.Geocoder.NominatimURL,
		cfg.Search.Bounds,
		cfg.Geocoder.CountryCodes,
		cfg.Geocoder.UserAgent,
	)

	searchCfg := search.DefaultConfig()
	searchCfg.Region = cfg.Search.Region
	searchCfg.QuerySuffix = cfg.Search.QuerySuffix
	searchCfg.Bounds = cfg.Search.Bounds
	searchCfg.MaxSuggestions = cfg.Search.MaxSuggestions

	coordinator := search.NewCoordinator(searchCfg, index, geocoder, func(r search.Result) {
		if r.Fallback {
			fmt.Println("(geocoder unavailable; showing local results only)")
		}
		if r.NoResults {
			fmt.Printf("no results for %q\n", r.Query)
			return
		}
		for i, loc := range r.Locations {
			fmt.Printf("%2d. %s\n    %s (%.4f, %.4f)\n", i+1, loc.Name, loc.Address, loc.Latitude, loc.Longitude)
		}
	})

	coordinator.Search(context.Background(), query)
}

// README: Static dataset loading (gazetteer + metro stations/pillars).
package location

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset holds the static location data loaded at startup: the gazetteer
// of named places plus the metro stations and pillars.
type Dataset struct {
	Gazetteer []Location
	Stations  []Location
	Pillars   []Location
}

type gazetteerFile struct {
	Locations []Location `json:"locations"`
}

type metroFile struct {
	MetroStations []Location `json:"metroStations"`
	MetroPillars  []Location `json:"metroPillars"`
}

// LoadDataset reads the gazetteer and metro JSON files. A missing metro
// path is tolerated (empty station/pillar sets); the gazetteer is required.
func LoadDataset(gazetteerPath, metroPath string) (Dataset, error) {
	var ds Dataset

	raw, err := os.ReadFile(gazetteerPath)
	if err != nil {
		return ds, fmt.Errorf("read gazetteer: %w", err)
	}
	var gf gazetteerFile
	if err := json.Unmarshal(raw, &gf); err != nil {
		return ds, fmt.Errorf("parse gazetteer: %w", err)
	}
	ds.Gazetteer = gf.Locations

	if metroPath != "" {
		raw, err := os.ReadFile(metroPath)
		if err != nil {
			return ds, fmt.Errorf("read metro data: %w", err)
		}
		var mf metroFile
		if err := json.Unmarshal(raw, &mf); err != nil {
			return ds, fmt.Errorf("parse metro data: %w", err)
		}
		ds.Stations = mf.MetroStations
		ds.Pillars = mf.MetroPillars
	}

	for i := range ds.Stations {
		if ds.Stations[i].Type == "" {
			ds.Stations[i].Type = TypeMetroStation
		}
	}
	for i := range ds.Pillars {
		if ds.Pillars[i].Type == "" {
			ds.Pillars[i].Type = TypeMetroPillar
		}
	}

	return ds, nil
}

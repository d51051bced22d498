package maps

import (
	"math"
	"testing"
	"time"

	gmaps "googlemaps.github.io/maps"
)

func TestGoogleRoute_FlattensLegsAndStripsHTML(t *testing.T) {
	legs := []*gmaps.Leg{
		{
			Distance: gmaps.Distance{Meters: 6100},
			Duration: 900 * time.Second,
			Steps: []*gmaps.Step{
				{
					HTMLInstructions: "Head out onto <b>Tank Bund Road</b>",
					Distance:         gmaps.Distance{Meters: 2500},
					Duration:         300 * time.Second,
				},
				{
					HTMLInstructions: "Turn <b>left</b> onto <b>NH 65</b><div>Pass the lake</div>",
					Distance:         gmaps.Distance{Meters: 3600},
					Duration:         600 * time.Second,
				},
			},
		},
	}

	route := googleRoute(legs)

	if math.Abs(route.DistanceKm-6.1) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 6.1", route.DistanceKm)
	}
	if route.DurationSec != 900 {
		t.Errorf("DurationSec = %v, want 900", route.DurationSec)
	}
	if len(route.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(route.Steps))
	}
	if route.Steps[0].Instruction != "Head out onto Tank Bund Road" {
		t.Errorf("instruction not stripped of HTML: %q", route.Steps[0].Instruction)
	}
	if route.Steps[1].Instruction != "Turn left onto NH 65Pass the lake" {
		t.Errorf("instruction = %q", route.Steps[1].Instruction)
	}
	if route.Steps[1].DistanceKm != 3.6 {
		t.Errorf("step distance = %v, want 3.6", route.Steps[1].DistanceKm)
	}
	if route.Steps[0].Maneuver != "" {
		t.Errorf("maneuver should be empty for this provider, got %q", route.Steps[0].Maneuver)
	}
}

func TestGoogleRoute_SumsMultipleLegs(t *testing.T) {
	legs := []*gmaps.Leg{
		{Distance: gmaps.Distance{Meters: 1000}, Duration: 100 * time.Second},
		{Distance: gmaps.Distance{Meters: 2000}, Duration: 200 * time.Second},
	}

	route := googleRoute(legs)
	if math.Abs(route.DistanceKm-3.0) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 3.0", route.DistanceKm)
	}
	if route.DurationSec != 300 {
		t.Errorf("DurationSec = %v, want 300", route.DurationSec)
	}
}

package route

import (
	"errors"
	"math"
	"strings"
	"testing"

	"wayfind/internal/modules/location"
)

func secunderabad() location.Location {
	return location.Location{ID: "a", Name: "Secunderabad East", Latitude: 17.4239, Longitude: 78.4738}
}

func malakpet() location.Location {
	return location.Location{ID: "b", Name: "Malakpet", Latitude: 17.3850, Longitude: 78.4867}
}

func TestState_SetStartWithoutSelection(t *testing.T) {
	s := NewState(nil)
	if err := s.SetStart(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if err := s.SetEnd(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestState_SinglePinAfterSelect(t *testing.T) {
	s := NewState(nil)
	s.Select(secunderabad())

	snap := s.Snapshot()
	if snap.View != ViewSinglePin {
		t.Fatalf("view = %v, want single pin", snap.View)
	}
	if snap.HasDistance || snap.DirectionsAvailable {
		t.Error("distance and directions should not be available with one point")
	}
	if !strings.Contains(snap.LocationURL, "q=17.4239,78.4738") {
		t.Errorf("LocationURL = %q", snap.LocationURL)
	}
	if !strings.Contains(snap.EmbedURL, "marker=17.4239,78.4738") {
		t.Errorf("EmbedURL = %q", snap.EmbedURL)
	}
}

func TestState_DualPinDistanceAndURLs(t *testing.T) {
	s := NewState(nil)
	s.Select(secunderabad())
	if err := s.SetStart(); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	s.Select(malakpet())
	if err := s.SetEnd(); err != nil {
		t.Fatalf("SetEnd: %v", err)
	}

	snap := s.Snapshot()
	if snap.View != ViewDualPin {
		t.Fatalf("view = %v, want dual pin", snap.View)
	}
	if !snap.HasDistance {
		t.Fatal("expected a straight-line distance with both endpoints set")
	}
	if math.Abs(snap.DistanceKm-4.54) > 0.05 {
		t.Errorf("DistanceKm = %v, want ~4.54", snap.DistanceKm)
	}
	if !snap.DirectionsAvailable {
		t.Error("directions should be available")
	}
	for _, want := range []string{"origin=17.4239,78.4738", "destination=17.385,78.4867", "travelmode=driving"} {
		if !strings.Contains(snap.DirectionsURL, want) {
			t.Errorf("DirectionsURL missing %q: %q", want, snap.DirectionsURL)
		}
	}
	if !strings.Contains(snap.OSMDirectionsURL, "17.4239,78.4738;17.385,78.4867") {
		t.Errorf("OSMDirectionsURL = %q", snap.OSMDirectionsURL)
	}
	// Both markers render in the embed.
	if strings.Count(snap.EmbedURL, "marker=") != 2 {
		t.Errorf("expected two embed markers: %q", snap.EmbedURL)
	}
}

func TestState_RouteViewRequiresBothEndpoints(t *testing.T) {
	s := NewState(nil)
	s.Select(secunderabad())
	_ = s.SetStart()

	if err := s.RequestRouteView(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection with one endpoint, got %v", err)
	}

	s.Select(malakpet())
	_ = s.SetEnd()
	if err := s.RequestRouteView(); err != nil {
		t.Fatalf("RequestRouteView: %v", err)
	}
	if got := s.Snapshot().View; got != ViewRoute {
		t.Errorf("view = %v, want route", got)
	}
}

func TestState_SettingEndpointLeavesRouteView(t *testing.T) {
	s := NewState(nil)
	s.Select(secunderabad())
	_ = s.SetStart()
	s.Select(malakpet())
	_ = s.SetEnd()
	_ = s.RequestRouteView()

	// Changing an endpoint drops back to the dual-pin view.
	s.Select(secunderabad())
	_ = s.SetEnd()
	if got := s.Snapshot().View; got != ViewDualPin {
		t.Errorf("view = %v, want dual pin after endpoint change", got)
	}
}

func TestState_Reset(t *testing.T) {
	s := NewState(nil)
	s.Select(secunderabad())
	_ = s.SetStart()
	s.Reset()

	snap := s.Snapshot()
	if snap.View != ViewNone || snap.Start != nil || snap.Selected != nil {
		t.Errorf("expected cleared state, got %+v", snap)
	}
}

func TestState_ListenerNotified(t *testing.T) {
	var views []MapView
	s := NewState(func(snap Snapshot) { views = append(views, snap.View) })

	s.Select(secunderabad())
	_ = s.SetStart()
	s.Select(malakpet())
	_ = s.SetEnd()

	want := []MapView{ViewSinglePin, ViewSinglePin, ViewSinglePin, ViewDualPin}
	if len(views) != len(want) {
		t.Fatalf("listener fired %d times, want %d", len(views), len(want))
	}
	for i := range want {
		if views[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, views[i], want[i])
		}
	}
}

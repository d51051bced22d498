package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 17.385, lng1: 78.4867,
			lat2:      17.385, lng2: 78.4867,
			wantKm:    0,
			tolerance: 0.0001,
		},
		{
			name: "Secunderabad to Hyderabad centre (~4.5km)",
			lat1: 17.4239, lng1: 78.4738,
			lat2:      17.3850, lng2: 78.4867,
			wantKm:    4.54,
			tolerance: 0.05,
		},
		{
			name: "Hyderabad to Delhi (~1253km)",
			lat1: 17.3850, lng1: 78.4867,
			lat2:      28.6139, lng2: 77.2090,
			wantKm:    1253,
			tolerance: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	d1 := DistanceKm(17.4239, 78.4738, 17.3850, 78.4867)
	d2 := DistanceKm(17.3850, 78.4867, 17.4239, 78.4738)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{MinLat: 17.1, MaxLat: 17.7, MinLng: 78.2, MaxLng: 78.6}

	if !b.Contains(17.4, 78.5) {
		t.Error("expected point inside bounds")
	}
	if b.Contains(17.75, 78.5) {
		t.Error("expected point outside bounds")
	}
	if !b.Expand(0.05).Contains(17.74, 78.5) {
		t.Error("expected point inside expanded bounds")
	}

	u := b.Union(Bounds{MinLat: 17.0, MaxLat: 17.2, MinLng: 78.5, MaxLng: 78.9})
	want := Bounds{MinLat: 17.0, MaxLat: 17.7, MinLng: 78.2, MaxLng: 78.9}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

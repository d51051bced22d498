// README: Axis-aligned bounding boxes for geofencing and map embeds.
package geo

import "math"

// Bounds is an axis-aligned bounding box in decimal degrees.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Contains reports whether the point lies inside the box (inclusive).
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

// Expand returns a copy of the box grown by margin degrees on every side.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
		MinLng: b.MinLng - margin,
		MaxLng: b.MaxLng + margin,
	}
}

// Union returns the smallest box covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLat: math.Min(b.MinLat, other.MinLat),
		MaxLat: math.Max(b.MaxLat, other.MaxLat),
		MinLng: math.Min(b.MinLng, other.MinLng),
		MaxLng: math.Max(b.MaxLng, other.MaxLng),
	}
}

// BoxAround returns a box centred on the point with delta degrees of
// padding on each side.
func BoxAround(lat, lng, delta float64) Bounds {
	return Bounds{
		MinLat: lat - delta,
		MaxLat: lat + delta,
		MinLng: lng - delta,
		MaxLng: lng + delta,
	}
}

package spatial

import (
	"github.com/golang/geo/s2"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// Bounds is a lat/lng rectangle, shaped for map fit-to-bounds calls
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// BoundingRect returns the smallest s2 rectangle containing all points.
// Rectangles crossing the antimeridian are handled by s2.
func BoundingRect(points []Point) s2.Rect {
	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}
	return rect
}

// BoundingBox calculates the bounding box of a set of points.
// ok is false for an empty set.
func BoundingBox(points []Point) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	rect := BoundingRect(points)
	lo, hi := rect.Lo(), rect.Hi()
	return Bounds{
		South: lo.Lat.Degrees(),
		West:  lo.Lng.Degrees(),
		North: hi.Lat.Degrees(),
		East:  hi.Lng.Degrees(),
	}, true
}

// Center returns where a map of the points should be centered: the
// great-circle midpoint for two stops, the bounding rectangle's center otherwise
func Center(points []Point) (Point, bool) {
	switch len(points) {
	case 0:
		return Point{}, false
	case 2:
		lat, lon := Midpoint(points[0].Lat, points[0].Lon, points[1].Lat, points[1].Lon)
		return Point{Lat: lat, Lon: lon}, true
	}

	c := BoundingRect(points).Center()
	return Point{Lat: c.Lat.Degrees(), Lon: c.Lng.Degrees()}, true
}

// PathLength calculates the total length of a path (sequence of points) in meters
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		dist := HaversineDistance(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
		totalDist += dist
	}

	return totalDist
}

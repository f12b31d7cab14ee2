package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	// one degree of latitude is ~111.2 km
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 50)
	assert.Equal(t, 0.0, HaversineDistance(15.8, 78.0, 15.8, 78.0))
}

func TestMidpoint(t *testing.T) {
	lat, lon := Midpoint(10, 20, 10, 22)
	assert.InDelta(t, 10.0, lat, 0.01)
	assert.InDelta(t, 21.0, lon, 1e-6)
}

func TestBoundingBox(t *testing.T) {
	_, ok := BoundingBox(nil)
	assert.False(t, ok)

	b, ok := BoundingBox([]Point{{Lat: 15.8, Lon: 78.0}, {Lat: 15.1, Lon: 78.1}, {Lat: 15.5, Lon: 77.9}})
	require.True(t, ok)
	assert.InDelta(t, 15.1, b.South, 1e-9)
	assert.InDelta(t, 15.8, b.North, 1e-9)
	assert.InDelta(t, 77.9, b.West, 1e-9)
	assert.InDelta(t, 78.1, b.East, 1e-9)
}

func TestCenter(t *testing.T) {
	_, ok := Center(nil)
	assert.False(t, ok)

	c, ok := Center([]Point{{Lat: 10, Lon: 20}})
	require.True(t, ok)
	assert.InDelta(t, 10.0, c.Lat, 1e-9)
	assert.InDelta(t, 20.0, c.Lon, 1e-9)

	c, ok = Center([]Point{{Lat: 10, Lon: 20}, {Lat: 12, Lon: 24}})
	require.True(t, ok)
	lat, lon := Midpoint(10, 20, 12, 24)
	assert.InDelta(t, lat, c.Lat, 1e-9)
	assert.InDelta(t, lon, c.Lon, 1e-9)
	assert.InDelta(t, 11.0, c.Lat, 0.05)
	assert.InDelta(t, 22.0, c.Lon, 0.05)

	c, ok = Center([]Point{{Lat: 10, Lon: 20}, {Lat: 12, Lon: 24}, {Lat: 11, Lon: 30}})
	require.True(t, ok)
	assert.InDelta(t, 11.0, c.Lat, 1e-9)
	assert.InDelta(t, 25.0, c.Lon, 1e-9)
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength([]Point{{Lat: 1, Lon: 1}}))

	pts := []Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 0}, {Lat: 2, Lon: 0}}
	assert.InDelta(t, 2*HaversineDistance(0, 0, 1, 0), PathLength(pts), 1e-6)
}

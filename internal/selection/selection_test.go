package selection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

func sampleTrip() *models.Trip {
	return &models.Trip{
		TripName: "Kurnool Getaway",
		Itinerary: []models.Day{
			{Day: 1, Activities: []models.Activity{
				{ID: "a1", Place: "Konda Reddy Fort", Cost: 50, Coords: &models.Coords{15.83, 78.04}},
				{ID: "a2", Place: "Unknown Bazaar", Cost: 10, Coords: &models.Coords{0, 0}},
				{ID: "a3", Place: "Rollapadu", Cost: 200, Coords: &models.Coords{15.90, 78.30}, Status: models.StatusRemoved, Reason: "Too tiring"},
				{ID: "a4", Place: "Orvakal Rock Garden", Cost: 30},
				{ID: "a5", Place: "Belum Caves", Cost: 65, Coords: &models.Coords{15.10, 78.11}, Status: models.StatusKept},
			}},
			{Day: 2, Activities: []models.Activity{
				{ID: "b1", Place: "Srisailam", Cost: 0, Coords: &models.Coords{16.07, 78.86}},
			}},
		},
	}
}

func TestLocatableActivities(t *testing.T) {
	trip := sampleTrip()

	got := LocatableActivities(trip.Day(1))
	require.Len(t, got, 2)
	assert.Equal(t, "Konda Reddy Fort", got[0].Place)
	assert.Equal(t, "Belum Caves", got[1].Place)

	assert.Nil(t, LocatableActivities(nil))
}

func TestResolve(t *testing.T) {
	trip := sampleTrip()
	day := trip.Day(1)

	tests := []struct {
		name string
		sel  *Selection
		want string
	}{
		{"by id", &Selection{Day: 1, ID: "a5"}, "Belum Caves"},
		{"by place", &Selection{Day: 1, Place: "Konda Reddy Fort"}, "Konda Reddy Fort"},
		{"unlocatable still selectable", &Selection{Day: 1, ID: "a4"}, "Orvakal Rock Garden"},
		{"other day", &Selection{Day: 2, ID: "a1"}, ""},
		{"removed", &Selection{Day: 1, ID: "a3"}, ""},
		{"removed by place", &Selection{Day: 1, Place: "Rollapadu"}, ""},
		{"unknown", &Selection{Day: 1, ID: "zz"}, ""},
		{"empty", &Selection{Day: 1}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(day, tt.sel)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Place)
		})
	}
}

func TestResolveIDBeatsDuplicateNames(t *testing.T) {
	day := &models.Day{Day: 1, Activities: []models.Activity{
		{ID: "x", Place: "Temple"},
		{ID: "y", Place: "Temple"},
	}}

	got := Resolve(day, &Selection{Day: 1, ID: "y", Place: "Temple"})
	require.NotNil(t, got)
	assert.Equal(t, "y", got.ID)

	// name-only selection cannot tell them apart and lands on the first
	got = Resolve(day, &Selection{Day: 1, Place: "Temple"})
	require.NotNil(t, got)
	assert.Equal(t, "x", got.ID)
}

func TestResolveStaleIDFallsBackToPlace(t *testing.T) {
	day := &models.Day{Day: 1, Activities: []models.Activity{
		{ID: "fresh", Place: "Konda Reddy Fort"},
		{ID: "other", Place: "Belum Caves", Status: models.StatusRemoved},
	}}

	got := Resolve(day, &Selection{Day: 1, ID: "stale", Place: "Konda Reddy Fort"})
	require.NotNil(t, got)
	assert.Equal(t, "fresh", got.ID)

	assert.Nil(t, Resolve(day, &Selection{Day: 1, ID: "stale", Place: "Belum Caves"}))
	assert.Nil(t, Resolve(day, &Selection{Day: 1, ID: "stale"}))
}

func TestView(t *testing.T) {
	trip := sampleTrip()

	view, ok := View(trip, 1, 2, &Selection{Day: 1, ID: "a1"})
	require.True(t, ok)

	assert.Len(t, view.Activities, 5)
	assert.Equal(t, 100.0, view.Activities[0].DisplayCost)
	require.Len(t, view.Locatable, 2)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "a1", view.Selected.ID)

	require.NotNil(t, view.Map.Bounds)
	assert.InDelta(t, 15.10, view.Map.Bounds.South, 1e-9)
	assert.InDelta(t, 15.83, view.Map.Bounds.North, 1e-9)
	require.NotNil(t, view.Map.Center)
	assert.Greater(t, view.Map.RouteMeters, 0.0)

	_, ok = View(trip, 9, 1, nil)
	assert.False(t, ok)
}

func TestViewWithoutLocations(t *testing.T) {
	trip := &models.Trip{Itinerary: []models.Day{{Day: 1, Activities: []models.Activity{{Place: "Nowhere"}}}}}

	view, ok := View(trip, 1, 1, nil)
	require.True(t, ok)
	assert.Empty(t, view.Locatable)
	assert.Nil(t, view.Map.Bounds)
	assert.Nil(t, view.Map.Center)
	assert.Nil(t, view.Selected)

	out, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"selected":null`)
}

func TestPrintable(t *testing.T) {
	days := Printable(sampleTrip(), 3)
	require.Len(t, days, 2)

	first := days[0]
	assert.Equal(t, 1, first.Day)
	require.Len(t, first.Activities, 4)
	for _, a := range first.Activities {
		assert.NotEqual(t, "Rollapadu", a.Place)
	}
	assert.Equal(t, 150.0, first.Activities[0].DisplayCost)
}

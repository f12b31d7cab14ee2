package selection

import (
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/spatial"
)

// Selection identifies the highlighted activity of a day.
// ID is preferred; Place is the legacy name match used when no id is known.
type Selection struct {
	Day   int    `json:"day"`
	ID    string `json:"id,omitempty"`
	Place string `json:"place,omitempty"`
}

// LocatableActivities returns the day's activities that are not removed and
// have a real location, in display order
func LocatableActivities(day *models.Day) []models.Activity {
	if day == nil {
		return nil
	}

	out := make([]models.Activity, 0, len(day.Activities))
	for _, a := range day.Activities {
		if !a.IsRemoved() && a.IsLocatable() {
			out = append(out, a)
		}
	}
	return out
}

// Resolve returns the activity sel points at, or nil when the selection
// belongs to another day, matches nothing, or matches a removed activity.
// An id that no activity carries falls back to the place name.
// Callers clear their selection on nil.
func Resolve(day *models.Day, sel *Selection) *models.Activity {
	if day == nil || sel == nil || sel.Day != day.Day {
		return nil
	}

	a := find(day, func(a *models.Activity) bool { return sel.ID != "" && a.ID == sel.ID })
	if a == nil {
		// Duplicate names within a day resolve to the first one.
		a = find(day, func(a *models.Activity) bool { return sel.Place != "" && a.Place == sel.Place })
	}
	if a == nil || a.IsRemoved() {
		return nil
	}
	return a
}

func find(day *models.Day, match func(*models.Activity) bool) *models.Activity {
	for i := range day.Activities {
		if match(&day.Activities[i]) {
			return &day.Activities[i]
		}
	}
	return nil
}

// Points converts activities with real locations into spatial points
func Points(activities []models.Activity) []spatial.Point {
	pts := make([]spatial.Point, 0, len(activities))
	for _, a := range activities {
		if !a.IsLocatable() {
			continue
		}
		pts = append(pts, spatial.Point{Lat: a.Coords.Lat(), Lon: a.Coords.Lng()})
	}
	return pts
}

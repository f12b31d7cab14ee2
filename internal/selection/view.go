package selection

import (
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/spatial"
)

// ActivityView is an activity with its party cost precomputed
type ActivityView struct {
	models.Activity
	DisplayCost float64 `json:"display_cost"`
}

// MapView carries what a map needs to frame a day
type MapView struct {
	Bounds      *spatial.Bounds `json:"bounds,omitempty"`
	Center      *spatial.Point  `json:"center,omitempty"`
	RouteMeters float64         `json:"route_meters"` // Straight-line walk through locatable stops in order
}

// DayView is everything a client needs to render one day
type DayView struct {
	Day        int              `json:"day"`
	Activities []ActivityView   `json:"activities"`
	Locatable  []ActivityView   `json:"locatable"`
	Selected   *models.Activity `json:"selected"`
	Map        MapView          `json:"map"`
}

// View builds the view of day n. ok is false when the trip has no such day.
func View(trip *models.Trip, n int, travelers int, sel *Selection) (*DayView, bool) {
	day := trip.Day(n)
	if day == nil {
		return nil, false
	}

	locatable := LocatableActivities(day)
	view := &DayView{
		Day:        day.Day,
		Activities: withCost(day.Activities, travelers),
		Locatable:  withCost(locatable, travelers),
		Map:        Map(locatable),
	}
	if a := Resolve(day, sel); a != nil {
		selected := a.Clone()
		view.Selected = &selected
	}
	return view, true
}

// Map frames a set of activities. Unlocatable ones are ignored.
func Map(activities []models.Activity) MapView {
	pts := Points(activities)

	var mv MapView
	if b, ok := spatial.BoundingBox(pts); ok {
		mv.Bounds = &b
	}
	if c, ok := spatial.Center(pts); ok {
		mv.Center = &c
	}
	mv.RouteMeters = spatial.PathLength(pts)
	return mv
}

// PrintDay lists the surviving activities of one day for print output
type PrintDay struct {
	Day        int            `json:"day"`
	Activities []ActivityView `json:"activities"`
}

// Printable returns every day with removed activities filtered out
func Printable(trip *models.Trip, travelers int) []PrintDay {
	out := make([]PrintDay, 0, len(trip.Itinerary))
	for _, d := range trip.Itinerary {
		kept := make([]models.Activity, 0, len(d.Activities))
		for _, a := range d.Activities {
			if !a.IsRemoved() {
				kept = append(kept, a)
			}
		}
		out = append(out, PrintDay{Day: d.Day, Activities: withCost(kept, travelers)})
	}
	return out
}

func withCost(activities []models.Activity, travelers int) []ActivityView {
	out := make([]ActivityView, len(activities))
	for i, a := range activities {
		out[i] = ActivityView{Activity: a.Clone(), DisplayCost: a.DisplayCost(travelers)}
	}
	return out
}

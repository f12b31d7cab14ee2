package models

// Trip represents a generated multi-day itinerary
type Trip struct {
	TripName  string `json:"trip_name"`
	Itinerary []Day  `json:"itinerary" validate:"required,min=1,dive"`
}

// Day represents one day's ordered activity list within a trip
type Day struct {
	Day        int        `json:"day" validate:"gte=1"`
	Activities []Activity `json:"activities" validate:"dive"`
}

// Day returns the day with the given number, or nil
func (t *Trip) Day(n int) *Day {
	for i := range t.Itinerary {
		if t.Itinerary[i].Day == n {
			return &t.Itinerary[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the trip
func (t *Trip) Clone() *Trip {
	out := &Trip{TripName: t.TripName}
	if t.Itinerary != nil {
		out.Itinerary = make([]Day, len(t.Itinerary))
		for i, d := range t.Itinerary {
			out.Itinerary[i] = d.Clone()
		}
	}
	return out
}

// WithDay returns a copy of the trip whose day n uses the given activities.
// The receiver is not modified. ok is false when the day does not exist.
func (t *Trip) WithDay(n int, activities []Activity) (*Trip, bool) {
	if t.Day(n) == nil {
		return nil, false
	}

	out := t.Clone()
	day := out.Day(n)
	day.Activities = CloneActivities(activities)
	return out, true
}

// Clone returns a deep copy of the day
func (d Day) Clone() Day {
	return Day{Day: d.Day, Activities: CloneActivities(d.Activities)}
}

// AssignIDs gives every activity without an id the one computed by newID from
// its day number, position and content. Existing ids are left untouched.
func (t *Trip) AssignIDs(newID func(day, index int, a Activity) string) {
	for i := range t.Itinerary {
		d := &t.Itinerary[i]
		for j := range d.Activities {
			if d.Activities[j].ID == "" {
				d.Activities[j].ID = newID(d.Day, j, d.Activities[j])
			}
		}
	}
}

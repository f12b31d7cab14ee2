package models

// Level is the low/medium/high scale used by priority and energy
type Level string

// Level constants
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Rank orders levels high=3, medium=2, low=1. Unknown values rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelHigh:
		return 3
	case LevelMedium:
		return 2
	case LevelLow:
		return 1
	}
	return 0
}

// Status is the replanning outcome of an activity
type Status string

// Status constants. An empty status means the activity was never replanned.
const (
	StatusKept    Status = "kept"
	StatusRemoved Status = "removed"
)

// DefaultDurationMinutes applies wherever an activity has no duration
const DefaultDurationMinutes = 60

// Coords is a [lat, lng] pair
type Coords [2]float64

// Lat returns the latitude
func (c Coords) Lat() float64 { return c[0] }

// Lng returns the longitude
func (c Coords) Lng() float64 { return c[1] }

// IsSentinel reports whether c is the [0, 0] "no real location" marker
func (c Coords) IsSentinel() bool {
	return c[0] == 0 && c[1] == 0
}

// Activity represents a single place/event entry in a day
type Activity struct {
	ID       string   `json:"id,omitempty"`
	Place    string   `json:"place" validate:"required"`
	Time     string   `json:"time"`
	Cost     float64  `json:"cost" validate:"gte=0"`
	Duration *float64 `json:"duration,omitempty" validate:"omitempty,gte=0"`
	Priority Level    `json:"priority" validate:"oneof=low medium high"`
	Energy   Level    `json:"energy" validate:"oneof=low medium high"`
	Desc     string   `json:"desc"`
	Coords   *Coords  `json:"coords,omitempty"`
	Image    string   `json:"image,omitempty"`
	Status   Status   `json:"status,omitempty" validate:"omitempty,oneof=kept removed"`
	Reason   string   `json:"reason,omitempty"`
}

// IsLocatable reports whether the activity has a real map location
func (a Activity) IsLocatable() bool {
	return a.Coords != nil && !a.Coords.IsSentinel()
}

// IsRemoved reports whether the engine removed the activity.
// An absent status counts as kept.
func (a Activity) IsRemoved() bool {
	return a.Status == StatusRemoved
}

// EffectiveDuration returns the duration in minutes, defaulting to 60
func (a Activity) EffectiveDuration() float64 {
	if a.Duration == nil {
		return DefaultDurationMinutes
	}
	return *a.Duration
}

// DisplayCost returns the cost for the whole party
func (a Activity) DisplayCost(travelers int) float64 {
	return a.Cost * float64(NormalizeTravelers(travelers))
}

// Clone returns a copy that shares no pointers with a
func (a Activity) Clone() Activity {
	out := a
	if a.Duration != nil {
		d := *a.Duration
		out.Duration = &d
	}
	if a.Coords != nil {
		c := *a.Coords
		out.Coords = &c
	}
	return out
}

// CloneActivities deep-copies a slice of activities. nil stays nil.
func CloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}
	out := make([]Activity, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

// NormalizeTravelers coerces non-positive traveler counts to 1
func NormalizeTravelers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

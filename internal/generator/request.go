package generator

import (
	"fmt"
	"strings"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// PredefinedVibes are the tags offered by the trip form
var PredefinedVibes = []string{"Chill", "Adventure", "Nature", "Luxury", "Party", "Culture"}

// BudgetTier is a named total-budget preset
type BudgetTier struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// TravelerPreset is a named party size
type TravelerPreset struct {
	Name   string `json:"name"`
	People int    `json:"people"`
}

// Form presets
var (
	BudgetTiers = []BudgetTier{
		{Name: "Low Budget", Amount: 15000},
		{Name: "Standard", Amount: 40000},
		{Name: "Luxury", Amount: 100000},
	}

	TravelerPresets = []TravelerPreset{
		{Name: "Solo", People: 1},
		{Name: "Couple", People: 2},
		{Name: "Friends", People: 4},
		{Name: "Family", People: 4},
	}
)

// Form defaults
const (
	DefaultDays       = 5
	DefaultBudgetTier = "Standard"
)

// TierAmount returns the preset budget of a tier
func TierAmount(name string) (float64, bool) {
	for _, t := range BudgetTiers {
		if t.Name == name {
			return t.Amount, true
		}
	}
	return 0, false
}

// VibeSet is an ordered set of vibe tags. Matching is exact and
// case-sensitive.
type VibeSet struct {
	items []string
}

// Contains reports whether tag is in the set
func (v *VibeSet) Contains(tag string) bool {
	for _, t := range v.items {
		if t == tag {
			return true
		}
	}
	return false
}

// Toggle adds tag when absent and removes it when present
func (v *VibeSet) Toggle(tag string) {
	for i, t := range v.items {
		if t == tag {
			v.items = append(v.items[:i], v.items[i+1:]...)
			return
		}
	}
	v.items = append(v.items, tag)
}

// Add appends a trimmed custom tag. Blank tags and duplicates are no-ops;
// the return value reports whether the set changed.
func (v *VibeSet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || v.Contains(tag) {
		return false
	}
	v.items = append(v.items, tag)
	return true
}

// Items returns a copy of the tags in insertion order
func (v *VibeSet) Items() []string {
	out := make([]string, len(v.items))
	copy(out, v.items)
	return out
}

// BuildRequest turns form input into the generator request record,
// filling form defaults for zero values
func BuildRequest(form models.TripForm) (models.GenerationRequest, error) {
	var vibes VibeSet
	for _, tag := range form.Vibes {
		if !vibes.Contains(tag) {
			vibes.Toggle(tag)
		}
	}
	for _, tag := range form.CustomVibes {
		vibes.Add(tag)
	}

	req := models.GenerationRequest{
		Location:    strings.TrimSpace(form.Location),
		Days:        form.Days,
		BudgetTier:  form.BudgetTier,
		People:      form.People,
		Vibe:        vibes.Items(),
		TotalBudget: form.TotalBudget,
	}
	if req.Days == 0 {
		req.Days = DefaultDays
	}
	if req.People == 0 {
		req.People = 1
	}
	if req.BudgetTier == "" {
		req.BudgetTier = DefaultBudgetTier
	}
	if req.TotalBudget == 0 {
		if amount, ok := TierAmount(req.BudgetTier); ok {
			req.TotalBudget = amount
		}
	}

	if err := validate.Struct(req); err != nil {
		return models.GenerationRequest{}, fmt.Errorf("invalid trip form: %w", err)
	}
	return req, nil
}

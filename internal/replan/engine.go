package replan

import (
	"fmt"
	"sync"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// Strategy is the interface every replanning rule implements.
// Apply receives a private working copy whose statuses are already reset
// to kept, and returns the final arrangement of that copy.
type Strategy interface {
	// Name returns the selector clients use, e.g. "time"
	Name() string

	// Apply marks activities kept or removed under the rule
	Apply(activities []models.Activity, travelers int) []models.Activity
}

// ConfigurationError is returned for a strategy name nobody registered
type ConfigurationError struct {
	Strategy string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown replan strategy %q", e.Strategy)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Strategy)
	order      []string
)

// Register makes a strategy available by its name. Registering the same
// name twice replaces the earlier strategy.
func Register(s Strategy) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[s.Name()]; !exists {
		order = append(order, s.Name())
	}
	registry[s.Name()] = s
}

// Lookup returns the strategy registered under name
func Lookup(name string) (Strategy, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[name]
	if !ok {
		return nil, &ConfigurationError{Strategy: name}
	}
	return s, nil
}

// Strategies lists registered strategy names in registration order
func Strategies() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ReplanDay recomputes which activities of one day are kept under strategy.
// The input slice and its activities are never modified; the result has the
// same length and the same places, possibly reordered by the strategy.
func ReplanDay(activities []models.Activity, strategy string, travelers int) ([]models.Activity, error) {
	s, err := Lookup(strategy)
	if err != nil {
		return nil, err
	}

	working := make([]models.Activity, len(activities))
	for i, a := range activities {
		working[i] = a.Clone()
		working[i].Status = models.StatusKept
		working[i].Reason = ""
	}

	return s.Apply(working, models.NormalizeTravelers(travelers)), nil
}

// Summary aggregates a replanned day
type Summary struct {
	Kept        int     `json:"kept"`
	Removed     int     `json:"removed"`
	KeptMinutes float64 `json:"kept_minutes"`
	KeptCost    float64 `json:"kept_cost"` // For the whole party
}

// Summarize counts kept and removed activities and totals what remains
func Summarize(activities []models.Activity, travelers int) Summary {
	var s Summary
	for _, a := range activities {
		if a.IsRemoved() {
			s.Removed++
			continue
		}
		s.Kept++
		s.KeptMinutes += a.EffectiveDuration()
		s.KeptCost += a.DisplayCost(travelers)
	}
	return s
}

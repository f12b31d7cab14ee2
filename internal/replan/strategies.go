package replan

import (
	"sort"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// Strategy names
const (
	StrategyTime   = "time"
	StrategyBudget = "budget"
	StrategyEnergy = "energy"
)

// Removal reasons shown to the user
const (
	ReasonNotEnoughTime = "Not enough time"
	ReasonBudgetSaving  = "Budget saving"
	ReasonTooTiring     = "Too tiring"
)

// Thresholds
const (
	DayTimeLimitMinutes = 360
	LowPriorityMaxCost  = 500
	MedPriorityMaxCost  = 2000
)

func init() {
	Register(TimeStrategy{Limit: DayTimeLimitMinutes})
	Register(BudgetStrategy{LowMax: LowPriorityMaxCost, MediumMax: MedPriorityMaxCost})
	Register(EnergyStrategy{})
}

// TimeStrategy greedily fits the highest-priority activities into Limit
// minutes. The result is reordered by priority, high first; ties keep their
// input order.
type TimeStrategy struct {
	Limit float64
}

// Name returns "time"
func (TimeStrategy) Name() string { return StrategyTime }

// Apply implements Strategy
func (s TimeStrategy) Apply(activities []models.Activity, _ int) []models.Activity {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Priority.Rank() > activities[j].Priority.Rank()
	})

	spent := 0.0
	for i := range activities {
		d := activities[i].EffectiveDuration()
		if spent+d <= s.Limit {
			spent += d
			continue
		}
		remove(&activities[i], ReasonNotEnoughTime)
	}
	return activities
}

// BudgetStrategy drops low and medium priority activities whose party cost
// exceeds their tier's ceiling. High priority is never dropped.
type BudgetStrategy struct {
	LowMax    float64
	MediumMax float64
}

// Name returns "budget"
func (BudgetStrategy) Name() string { return StrategyBudget }

// Apply implements Strategy
func (s BudgetStrategy) Apply(activities []models.Activity, travelers int) []models.Activity {
	for i := range activities {
		a := &activities[i]
		cost := a.DisplayCost(travelers)
		if (a.Priority == models.LevelLow && cost > s.LowMax) ||
			(a.Priority == models.LevelMedium && cost > s.MediumMax) {
			remove(a, ReasonBudgetSaving)
		}
	}
	return activities
}

// EnergyStrategy drops every high-energy activity
type EnergyStrategy struct{}

// Name returns "energy"
func (EnergyStrategy) Name() string { return StrategyEnergy }

// Apply implements Strategy
func (EnergyStrategy) Apply(activities []models.Activity, _ int) []models.Activity {
	for i := range activities {
		if activities[i].Energy == models.LevelHigh {
			remove(&activities[i], ReasonTooTiring)
		}
	}
	return activities
}

func remove(a *models.Activity, reason string) {
	a.Status = models.StatusRemoved
	a.Reason = reason
}

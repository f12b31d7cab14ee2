package models

import "time"

// GenerationRequest is the record sent to the itinerary generator
type GenerationRequest struct {
	Location    string   `json:"location" validate:"required"`
	Days        int      `json:"days" validate:"gte=1"`
	BudgetTier  string   `json:"budget_tier"`
	People      int      `json:"people" validate:"gte=1"`
	Vibe        []string `json:"vibe"`
	TotalBudget float64  `json:"total_budget" validate:"gte=0"`
}

// TripForm holds the values a user entered in the trip form.
// Zero values fall back to the form defaults.
type TripForm struct {
	Location    string   `json:"location" binding:"required"`
	Days        int      `json:"days"`
	BudgetTier  string   `json:"budget_tier"`
	People      int      `json:"people"`
	Vibes       []string `json:"vibes"`        // Selected predefined tags
	CustomVibes []string `json:"custom_vibes"` // Free-form tags typed by the user
	TotalBudget float64  `json:"total_budget"`
}

// Generation outcome constants
const (
	OutcomeOK        = "ok"
	OutcomeTimeout   = "timeout"
	OutcomeFailed    = "failed"
	OutcomeMalformed = "malformed"
)

// GenerationRecord is an audit entry for one generation attempt
type GenerationRecord struct {
	ID        int64     `json:"id" db:"id"`
	RequestID string    `json:"request_id" db:"request_id"`
	Location  string    `json:"location" db:"location"`
	Days      int       `json:"days" db:"days"`
	People    int       `json:"people" db:"people"`
	Outcome   string    `json:"outcome" db:"outcome"`
	ErrorMsg  string    `json:"error_message,omitempty" db:"error_message"`
	LatencyMs int64     `json:"latency_ms" db:"latency_ms"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReplanRecord is an audit entry for one replan call
type ReplanRecord struct {
	ID        int64     `json:"id" db:"id"`
	TripName  string    `json:"trip_name" db:"trip_name"`
	Day       int       `json:"day" db:"day"`
	Strategy  string    `json:"strategy" db:"strategy"`
	Travelers int       `json:"travelers" db:"travelers"`
	Kept      int       `json:"kept" db:"kept"`
	Removed   int       `json:"removed" db:"removed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/replan"
	"github.com/jengzang/voyager-backend-go/internal/selection"
	"github.com/jengzang/voyager-backend-go/internal/stats"
)

// Service errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDayNotFound  = errors.New("day not found")
)

// Generator is the external itinerary generator
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.Trip, error)
	Forward(ctx context.Context, payload []byte) ([]byte, error)
}

// GenerationLog stores generation attempts
type GenerationLog interface {
	Create(rec *models.GenerationRecord) error
	List(filter models.LogFilter) ([]models.GenerationRecord, int64, error)
	CountByOutcome() (map[string]int64, error)
	RecentLatencies(limit int) ([]float64, error)
}

// ReplanLog stores replan calls
type ReplanLog interface {
	Create(rec *models.ReplanRecord) error
	List(filter models.LogFilter) ([]models.ReplanRecord, int64, error)
}

// TripService handles trip generation, replanning and day views.
// Trips are never stored; only the audit logs are.
type TripService struct {
	gen       Generator
	genLog    GenerationLog
	replanLog ReplanLog
	newID     func() string
	now       func() time.Time
}

// NewTripService creates a new trip service. Either log may be nil.
func NewTripService(gen Generator, genLog GenerationLog, replanLog ReplanLog) *TripService {
	return &TripService{
		gen:       gen,
		genLog:    genLog,
		replanLog: replanLog,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Generate builds the generator request from form input and returns the
// generated trip with activity ids assigned
func (s *TripService) Generate(ctx context.Context, form models.TripForm) (*models.Trip, error) {
	req, err := generator.BuildRequest(form)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start := s.now()
	trip, err := s.gen.Generate(ctx, req)
	s.recordGeneration(req, start, err)
	if err != nil {
		return nil, err
	}

	trip.AssignIDs(activityIDs(trip.TripName))
	return trip, nil
}

// Forward relays a raw generation request and returns the generator's body
// untouched
func (s *TripService) Forward(ctx context.Context, payload []byte) ([]byte, error) {
	// Best effort: the payload is relayed even when it does not parse.
	var req models.GenerationRequest
	_ = json.Unmarshal(payload, &req)

	start := s.now()
	body, err := s.gen.Forward(ctx, payload)
	s.recordGeneration(req, start, err)
	return body, err
}

// ReplanResult is the outcome of replanning one day
type ReplanResult struct {
	Trip       *models.Trip      `json:"trip"`
	Day        int               `json:"day"`
	Activities []models.Activity `json:"activities"`
	Summary    replan.Summary    `json:"summary"`
	Diff       string            `json:"diff"`
}

// Replan applies strategy to one day of trip. The caller's trip is not
// modified; the result carries the updated copy.
func (s *TripService) Replan(trip *models.Trip, day int, strategy string, travelers int) (*ReplanResult, error) {
	work, err := s.load(trip)
	if err != nil {
		return nil, err
	}

	d := work.Day(day)
	if d == nil {
		return nil, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}

	activities, err := replan.ReplanDay(d.Activities, strategy, travelers)
	if err != nil {
		return nil, err
	}

	updated, _ := work.WithDay(day, activities)

	diff, err := replan.Diff(day, d.Activities, activities)
	if err != nil {
		return nil, err
	}

	summary := replan.Summarize(activities, travelers)
	s.recordReplan(work.TripName, day, strategy, travelers, summary)

	return &ReplanResult{
		Trip:       updated,
		Day:        day,
		Activities: activities,
		Summary:    summary,
		Diff:       diff,
	}, nil
}

// DayView returns the display data of one day
func (s *TripService) DayView(trip *models.Trip, day int, travelers int, sel *selection.Selection) (*selection.DayView, error) {
	work, err := s.load(trip)
	if err != nil {
		return nil, err
	}

	view, ok := selection.View(work, day, travelers, sel)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}
	return view, nil
}

// Printable returns every day without removed activities
func (s *TripService) Printable(trip *models.Trip, travelers int) ([]selection.PrintDay, error) {
	work, err := s.load(trip)
	if err != nil {
		return nil, err
	}
	return selection.Printable(work, travelers), nil
}

// Presets describes the options a trip form and replan picker offer
type Presets struct {
	Strategies      []string                   `json:"strategies"`
	Vibes           []string                   `json:"vibes"`
	BudgetTiers     []generator.BudgetTier     `json:"budget_tiers"`
	TravelerPresets []generator.TravelerPreset `json:"traveler_presets"`
	DefaultDays     int                        `json:"default_days"`
	DefaultTier     string                     `json:"default_budget_tier"`
}

// Presets returns the form and strategy options
func (s *TripService) Presets() Presets {
	return Presets{
		Strategies:      replan.Strategies(),
		Vibes:           generator.PredefinedVibes,
		BudgetTiers:     generator.BudgetTiers,
		TravelerPresets: generator.TravelerPresets,
		DefaultDays:     generator.DefaultDays,
		DefaultTier:     generator.DefaultBudgetTier,
	}
}

// ListGenerations returns the generation audit log
func (s *TripService) ListGenerations(filter models.LogFilter) ([]models.GenerationRecord, int64, error) {
	if s.genLog == nil {
		return []models.GenerationRecord{}, 0, nil
	}
	return s.genLog.List(filter)
}

// latencySample bounds how many recent generations feed the latency stats
const latencySample = 500

// GenerationStats summarizes the generation log
type GenerationStats struct {
	Outcomes  map[string]int64 `json:"outcomes"`
	LatencyMs stats.Summary    `json:"latency_ms"` // Successful generations only
}

// GenerationStats returns outcome counts and recent latency figures
func (s *TripService) GenerationStats() (*GenerationStats, error) {
	out := &GenerationStats{Outcomes: map[string]int64{}}
	if s.genLog == nil {
		return out, nil
	}

	counts, err := s.genLog.CountByOutcome()
	if err != nil {
		return nil, err
	}
	latencies, err := s.genLog.RecentLatencies(latencySample)
	if err != nil {
		return nil, err
	}

	out.Outcomes = counts
	out.LatencyMs = stats.Summarize(latencies)
	return out, nil
}

// ListReplans returns the replan audit log
func (s *TripService) ListReplans(filter models.LogFilter) ([]models.ReplanRecord, int64, error) {
	if s.replanLog == nil {
		return []models.ReplanRecord{}, 0, nil
	}
	return s.replanLog.List(filter)
}

// load validates a client-supplied trip and returns a private copy with ids.
// Activities sent without ids get the same ids on every call.
func (s *TripService) load(trip *models.Trip) (*models.Trip, error) {
	if trip == nil {
		return nil, fmt.Errorf("%w: missing trip", ErrInvalidInput)
	}
	if err := generator.ValidateTrip(trip); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	work := trip.Clone()
	work.AssignIDs(activityIDs(work.TripName))
	return work, nil
}

var activityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("voyager/activity"))

// activityIDs derives ids from content so an id-less trip gets the same ids
// every time it is sent
func activityIDs(tripName string) func(day, index int, a models.Activity) string {
	return func(day, index int, a models.Activity) string {
		key := fmt.Sprintf("%s\x00%d\x00%d\x00%s\x00%s", tripName, day, index, a.Place, a.Time)
		return uuid.NewSHA1(activityNamespace, []byte(key)).String()
	}
}

func (s *TripService) recordGeneration(req models.GenerationRequest, start time.Time, genErr error) {
	if s.genLog == nil {
		return
	}

	rec := &models.GenerationRecord{
		RequestID: s.newID(),
		Location:  req.Location,
		Days:      req.Days,
		People:    req.People,
		Outcome:   generator.Outcome(genErr),
		LatencyMs: s.now().Sub(start).Milliseconds(),
	}
	if genErr != nil {
		rec.ErrorMsg = genErr.Error()
	}

	if err := s.genLog.Create(rec); err != nil {
		log.Printf("[TripService] Failed to record generation: %v", err)
	}
}

func (s *TripService) recordReplan(tripName string, day int, strategy string, travelers int, summary replan.Summary) {
	if s.replanLog == nil {
		return
	}

	rec := &models.ReplanRecord{
		TripName:  tripName,
		Day:       day,
		Strategy:  strategy,
		Travelers: models.NormalizeTravelers(travelers),
		Kept:      summary.Kept,
		Removed:   summary.Removed,
	}
	if err := s.replanLog.Create(rec); err != nil {
		log.Printf("[TripService] Failed to record replan: %v", err)
	}
}

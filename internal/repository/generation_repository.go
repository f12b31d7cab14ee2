package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// GenerationRepository handles database operations for the generation log
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new generation repository
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Create inserts a generation record and fills in its ID
func (r *GenerationRepository) Create(rec *models.GenerationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(`INSERT INTO generation_log
		(request_id, location, days, people, outcome, error_message, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RequestID, rec.Location, rec.Days, rec.People,
		rec.Outcome, rec.ErrorMsg, rec.LatencyMs, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get generation record id: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns generation records newest first, plus the total matching count
func (r *GenerationRepository) List(filter models.LogFilter) ([]models.GenerationRecord, int64, error) {
	filter.Normalize()

	var conditions []string
	var args []interface{}
	if filter.Outcome != "" {
		conditions = append(conditions, "outcome = ?")
		args = append(args, filter.Outcome)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM generation_log"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count generation records: %w", err)
	}

	query := `SELECT id, request_id, location, days, people, outcome,
		error_message, latency_ms, created_at
		FROM generation_log` + where + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query generation records: %w", err)
	}
	defer rows.Close()

	records := []models.GenerationRecord{}
	for rows.Next() {
		var rec models.GenerationRecord
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.Location, &rec.Days, &rec.People, &rec.Outcome,
			&rec.ErrorMsg, &rec.LatencyMs, &rec.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan generation record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate generation records: %w", err)
	}

	return records, total, nil
}

// CountByOutcome returns the number of generation attempts per outcome
func (r *GenerationRepository) CountByOutcome() (map[string]int64, error) {
	rows, err := r.db.Query("SELECT outcome, COUNT(*) FROM generation_log GROUP BY outcome")
	if err != nil {
		return nil, fmt.Errorf("failed to count generation outcomes: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("failed to scan generation outcome: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// RecentLatencies returns the latency of the last limit successful generations
func (r *GenerationRepository) RecentLatencies(limit int) ([]float64, error) {
	rows, err := r.db.Query(`SELECT latency_ms FROM generation_log
		WHERE outcome = ? ORDER BY created_at DESC, id DESC LIMIT ?`, models.OutcomeOK, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generation latencies: %w", err)
	}
	defer rows.Close()

	var latencies []float64
	for rows.Next() {
		var ms int64
		if err := rows.Scan(&ms); err != nil {
			return nil, fmt.Errorf("failed to scan generation latency: %w", err)
		}
		latencies = append(latencies, float64(ms))
	}
	return latencies, rows.Err()
}

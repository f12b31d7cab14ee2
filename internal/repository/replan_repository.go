package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// ReplanRepository handles database operations for the replan log
type ReplanRepository struct {
	db *sql.DB
}

// NewReplanRepository creates a new replan repository
func NewReplanRepository(db *sql.DB) *ReplanRepository {
	return &ReplanRepository{db: db}
}

// Create inserts a replan record and fills in its ID
func (r *ReplanRepository) Create(rec *models.ReplanRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(`INSERT INTO replan_log
		(trip_name, day, strategy, travelers, kept, removed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.TripName, rec.Day, rec.Strategy, rec.Travelers, rec.Kept, rec.Removed, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert replan record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get replan record id: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns replan records newest first, plus the total count
func (r *ReplanRepository) List(filter models.LogFilter) ([]models.ReplanRecord, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM replan_log").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count replan records: %w", err)
	}

	rows, err := r.db.Query(`SELECT id, trip_name, day, strategy, travelers, kept, removed, created_at
		FROM replan_log ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query replan records: %w", err)
	}
	defer rows.Close()

	records := []models.ReplanRecord{}
	for rows.Next() {
		var rec models.ReplanRecord
		if err := rows.Scan(
			&rec.ID, &rec.TripName, &rec.Day, &rec.Strategy, &rec.Travelers,
			&rec.Kept, &rec.Removed, &rec.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan replan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate replan records: %w", err)
	}

	return records, total, nil
}

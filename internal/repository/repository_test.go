package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/voyager-backend-go/internal/database"
	"github.com/jengzang/voyager-backend-go/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "audit.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGenerationRepository(t *testing.T) {
	repo := NewGenerationRepository(openTestDB(t))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	recs := []models.GenerationRecord{
		{RequestID: "r1", Location: "Kurnool", Days: 3, People: 2, Outcome: models.OutcomeOK, LatencyMs: 4200, CreatedAt: base},
		{RequestID: "r2", Location: "Goa", Days: 5, People: 4, Outcome: models.OutcomeTimeout, ErrorMsg: "deadline", CreatedAt: base.Add(time.Minute)},
		{RequestID: "r3", Location: "Hampi", Days: 2, People: 1, Outcome: models.OutcomeOK, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range recs {
		require.NoError(t, repo.Create(&recs[i]))
		assert.NotZero(t, recs[i].ID)
	}

	all, total, err := repo.List(models.LogFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "r3", all[0].RequestID)
	assert.True(t, all[2].CreatedAt.Equal(base))

	ok, total, err := repo.List(models.LogFilter{Outcome: models.OutcomeOK, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, ok, 1)
	assert.Equal(t, "Hampi", ok[0].Location)

	page, _, err := repo.List(models.LogFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "deadline", page[0].ErrorMsg)

	counts, err := repo.CountByOutcome()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{models.OutcomeOK: 2, models.OutcomeTimeout: 1}, counts)

	latencies, err := repo.RecentLatencies(10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4200}, latencies)
}

func TestReplanRepository(t *testing.T) {
	repo := NewReplanRepository(openTestDB(t))

	empty, total, err := repo.List(models.LogFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, empty)

	rec := &models.ReplanRecord{TripName: "Kurnool", Day: 2, Strategy: "energy", Travelers: 2, Kept: 3, Removed: 1}
	require.NoError(t, repo.Create(rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, total, err := repo.List(models.LogFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "energy", got[0].Strategy)
	assert.Equal(t, 1, got[0].Removed)
}

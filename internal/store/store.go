// Package store provides PostgreSQL persistence for analysis runs and their
// generated insights.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/keyword-insights/internal/types"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact kinds stored per run.
const (
	ArtifactInsights = "insights"
	ArtifactSummary  = "summary"
)

// Run represents one analysis run record.
type Run struct {
	ID           uuid.UUID  `json:"id"`
	Brand        string     `json:"brand"`
	Industry     string     `json:"industry"`
	KeywordCount int        `json:"keywordCount"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the runs and artifacts tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			brand TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			keyword_count INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS run_artifacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			content JSONB,
			text_content TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (run_id, kind)
		)`,
	}
	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// CreateRun creates a new analysis run record and returns its ID.
func (s *Store) CreateRun(ctx context.Context, brand, industry string, keywordCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (brand, industry, keyword_count, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		brand, industry, keywordCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks an analysis run as finished with the given status.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE analysis_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveInsights stores the full insights payload for a run.
func (s *Store) SaveInsights(ctx context.Context, runID uuid.UUID, insights *types.ActionableInsights) error {
	jsonBytes, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("failed to marshal insights: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, ArtifactInsights, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save insights: %w", err)
	}
	return nil
}

// SaveSummary stores the prose summary for a run.
func (s *Store) SaveSummary(ctx context.Context, runID uuid.UUID, summary string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO run_artifacts (run_id, kind, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, kind) DO UPDATE SET text_content = $3, created_at = NOW()`,
		runID, ArtifactSummary, summary,
	)
	if err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}
	return nil
}

// GetInsights retrieves the stored insights for a run, or nil when absent.
func (s *Store) GetInsights(ctx context.Context, runID uuid.UUID) (*types.ActionableInsights, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM run_artifacts WHERE run_id = $1 AND kind = $2`,
		runID, ArtifactInsights,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}

	var insights types.ActionableInsights
	if err := json.Unmarshal(content, &insights); err != nil {
		return nil, fmt.Errorf("failed to decode stored insights: %w", err)
	}
	return &insights, nil
}

// GetSummary retrieves the stored summary for a run, or "" when absent.
func (s *Store) GetSummary(ctx context.Context, runID uuid.UUID) (string, error) {
	var text string
	err := s.pool.QueryRow(ctx,
		`SELECT text_content FROM run_artifacts WHERE run_id = $1 AND kind = $2`,
		runID, ArtifactSummary,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get summary: %w", err)
	}
	return text, nil
}

// GetRun retrieves a run by ID, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, brand, industry, keyword_count, status, created_at, completed_at
		 FROM analysis_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Brand, &run.Industry, &run.KeywordCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// RunFilters holds optional filters for listing runs.
type RunFilters struct {
	Brand  string
	Status string
	Limit  int
}

// ListRuns retrieves recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, filters RunFilters) ([]Run, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, brand, industry, keyword_count, status, created_at, completed_at
		FROM analysis_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Brand != "" {
		query += fmt.Sprintf(" AND brand ILIKE $%d", argNum)
		args = append(args, "%"+filters.Brand+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Brand, &run.Industry, &run.KeywordCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a run and its artifacts (via cascade).
func (s *Store) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM analysis_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}

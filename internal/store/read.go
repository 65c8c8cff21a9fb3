package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound reports a run ID with no stored trace.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the stored run record for an ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var (
		run       Run
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, encoding, input, step_limit, final_state, steps, accepted, limit_reached, fingerprint, created_at
		FROM runs WHERE id = ?
	`, id).Scan(
		&run.ID,
		&run.Encoding,
		&run.Input,
		&run.StepLimit,
		&run.FinalState,
		&run.Steps,
		&run.Accepted,
		&run.LimitReached,
		&run.Fingerprint,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}

	if ts, parseErr := time.Parse("2006-01-02T15:04:05.000Z", createdAt); parseErr == nil {
		run.CreatedAt = ts
	}

	return run, nil
}

// ReadSteps returns the full step trace of a run ordered by step sequence.
func (s *Store) ReadSteps(ctx context.Context, runID string) ([]StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, state, head, cells
		FROM run_steps WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read steps %s: %w", runID, err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var step StepRecord
		if err := rows.Scan(&step.Seq, &step.State, &step.Head, &step.Cells); err != nil {
			return nil, fmt.Errorf("read steps %s: scan: %w", runID, err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps %s: %w", runID, err)
	}

	return steps, nil
}

// ListRuns returns every stored run, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, encoding, input, step_limit, final_state, steps, accepted, limit_reached, fingerprint, created_at
		FROM runs ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			createdAt string
		)
		if err := rows.Scan(
			&run.ID,
			&run.Encoding,
			&run.Input,
			&run.StepLimit,
			&run.FinalState,
			&run.Steps,
			&run.Accepted,
			&run.LimitReached,
			&run.Fingerprint,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		if ts, parseErr := time.Parse("2006-01-02T15:04:05.000Z", createdAt); parseErr == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return runs, nil
}

package store

import (
	"context"
	"fmt"
)

// WriteRun inserts a run record and its full step trace in a single
// transaction. Writing the same run ID twice is a silent no-op (ON
// CONFLICT DO NOTHING), so recording is idempotent; either the whole trace
// lands or none of it does.
func (s *Store) WriteRun(ctx context.Context, run Run, steps []StepRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run %s: begin: %w", run.ID, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, encoding, input, step_limit, final_state, steps, accepted, limit_reached, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Encoding,
		run.Input,
		run.StepLimit,
		run.FinalState,
		run.Steps,
		run.Accepted,
		run.LimitReached,
		run.Fingerprint,
		run.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	)
	if err != nil {
		return fmt.Errorf("write run %s: %w", run.ID, err)
	}

	// Duplicate run ID: nothing inserted, skip the steps too.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_steps (run_id, seq, state, head, cells)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run %s: prepare steps: %w", run.ID, err)
	}
	defer stmt.Close()

	for _, step := range steps {
		if _, err := stmt.ExecContext(ctx, run.ID, step.Seq, step.State, step.Head, step.Cells); err != nil {
			return fmt.Errorf("write run %s: step %d: %w", run.ID, step.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run %s: commit: %w", run.ID, err)
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/decoder"
	"github.com/roach88/utm/internal/engine"
	"github.com/roach88/utm/internal/machine"
	"github.com/roach88/utm/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input    string
	Limit    int
	Radius   int
	Database string
	ShowAll  bool
}

// RunReport is the structured output of the run command.
type RunReport struct {
	RunID        string          `json:"run_id,omitempty"`
	Steps        int             `json:"steps"`
	Accepted     bool            `json:"accepted"`
	Halted       bool            `json:"halted"`
	LimitReached bool            `json:"limit_reached"`
	Initial      engine.Snapshot `json:"initial"`
	Final        engine.Snapshot `json:"final"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <encoding|@file>",
		Short: "Run a machine to halt or to the step limit",
		Long: `Decode a machine and run it on an input string until it halts or the
step limit is reached.

The input seeds the tape at positions 0 and rightward; the head starts at
position 0 in state q1. Acceptance means the machine is in state q2 when
execution stops. A run truncated by the step limit is reported as such -
the machine may be legitimately non-terminating.

With --db, the full step-by-step trace is recorded for later inspection
with "utm trace" and determinism checking with "utm replay".

Examples:
  utm run 01010010010 --input 0
  utm run @machine.txt --input 1011 --limit 5000 --all
  utm run 01010010010 --input 0 --db traces.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMachine(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input string for the machine")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "step limit (default from config, 1000000)")
	cmd.Flags().IntVar(&opts.Radius, "radius", 0, "tape window radius (default from config, 15)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the trace into this SQLite database")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "print every intermediate configuration")

	return cmd
}

// traceRun is one executed run together with the step records that make up
// its stored trace. Seq 0 is the initial configuration.
type traceRun struct {
	result  engine.Result
	initial *engine.Configuration
	records []store.StepRecord
	eng     *engine.Engine
}

// executeTrace decodes nothing and stores nothing: it runs a decoded
// definition on an input and collects one step record per configuration.
// Both run and replay go through here so they trace identically.
func executeTrace(ctx context.Context, def *machine.Definition, input string, limit int) (traceRun, error) {
	var tr traceRun

	observer := func(c *engine.Configuration) {
		tr.records = append(tr.records, store.NewStepRecord(c.Steps, c.State, c.Tape.Head(), c.Tape.Written()))
	}

	tr.eng = engine.New(def, engine.WithStepLimit(limit), engine.WithObserver(observer))
	tr.initial = tr.eng.Initial(input)
	tr.records = append(tr.records, store.NewStepRecord(0, tr.initial.State, tr.initial.Tape.Head(), tr.initial.Tape.Written()))

	result, err := tr.eng.Run(ctx, tr.initial)
	tr.result = result
	return tr, err
}

func runMachine(opts *RunOptions, cmd *cobra.Command, arg string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	w := cmd.OutOrStdout()
	radius := opts.windowRadius(opts.Radius)
	limit := opts.stepLimit(opts.Limit)

	encoding, err := ResolveEncoding(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load encoding", err)
	}

	def, err := decoder.Decode(encoding)
	if err != nil {
		var de *decoder.DecodeError
		if errors.As(err, &de) {
			_ = out.Error(string(de.Code), de.Message, de.Chunk)
		}
		return WrapExitError(ExitCommandError, "decode failed", err)
	}
	slog.Debug("machine decoded", "transitions", def.Size(), "states", len(def.States()))

	tr, err := executeTrace(cmd.Context(), def, opts.Input, limit)
	if err != nil {
		return WrapExitError(ExitFailure, "run aborted", err)
	}

	initialSnap := tr.eng.Snapshot(tr.initial, radius)
	finalSnap := tr.eng.Snapshot(tr.result.Final, radius)

	report := RunReport{
		Steps:        tr.result.Steps,
		Accepted:     tr.result.Accepted,
		Halted:       tr.eng.Halted(tr.result.Final),
		LimitReached: tr.result.LimitReached,
		Initial:      initialSnap,
		Final:        finalSnap,
	}

	if db := opts.database(opts.Database); db != "" {
		runID, err := recordTrace(cmd.Context(), db, store.UUIDv7Generator{}, encoding, opts.Input, limit, tr)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to record trace", err)
		}
		report.RunID = runID
	}

	if opts.Format == "json" {
		return out.Success(report)
	}

	fmt.Fprintln(w, "Initial configuration:")
	writeSnapshot(w, initialSnap)
	if opts.ShowAll {
		replaySteps(w, tr, radius)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final configuration:")
	writeSnapshot(w, finalSnap)
	fmt.Fprintf(w, "\nExecution completed in %d steps.\n", tr.result.Steps)
	if tr.result.LimitReached {
		fmt.Fprintf(w, "Warning: step limit reached (%d steps). The machine may be in an infinite loop.\n", limit)
	}
	writeVerdict(w, tr.result.Accepted)
	if report.RunID != "" {
		fmt.Fprintf(w, "Trace recorded: %s\n", report.RunID)
	}
	return nil
}

// replaySteps re-renders the intermediate configurations of a finished run
// by stepping a fresh chain. Clone-per-step keeps this cheap enough for
// console use and avoids buffering every snapshot during the run.
func replaySteps(w io.Writer, tr traceRun, radius int) {
	cfg := tr.initial
	for {
		next, ok := tr.eng.Step(cfg)
		if !ok || next.Steps > tr.result.Steps {
			break
		}
		fmt.Fprintln(w)
		writeSnapshot(w, tr.eng.Snapshot(next, radius))
		cfg = next
		if next.Steps == tr.result.Steps {
			break
		}
	}
}

func recordTrace(ctx context.Context, dbPath string, idGen store.RunIDGenerator, encoding, input string, limit int, tr traceRun) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing trace database", "error", closeErr)
		}
	}()

	run := store.Run{
		ID:           idGen.Generate(),
		Encoding:     encoding,
		Input:        input,
		StepLimit:    limit,
		FinalState:   int(tr.result.Final.State),
		Steps:        tr.result.Steps,
		Accepted:     tr.result.Accepted,
		LimitReached: tr.result.LimitReached,
		Fingerprint:  store.Fingerprint(tr.records),
		CreatedAt:    time.Now().UTC(),
	}

	if err := st.WriteRun(ctx, run, tr.records); err != nil {
		return "", err
	}

	slog.Debug("trace recorded", "run_id", run.ID, "steps", len(tr.records))
	return run.ID, nil
}

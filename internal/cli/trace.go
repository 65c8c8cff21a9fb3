package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/codec"
	"github.com/roach88/utm/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// TraceStep is one timeline entry in the trace output.
type TraceStep struct {
	Seq   int    `json:"seq"`
	State string `json:"state"`
	Head  int    `json:"head"`
	Cells string `json:"cells"`
}

// TraceResult holds the complete trace output.
type TraceResult struct {
	RunID        string      `json:"run_id"`
	Encoding     string      `json:"encoding"`
	Input        string      `json:"input"`
	Steps        int         `json:"steps"`
	Accepted     bool        `json:"accepted"`
	LimitReached bool        `json:"limit_reached"`
	Fingerprint  string      `json:"fingerprint"`
	Timeline     []TraceStep `json:"timeline"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the stored trace of a recorded run",
		Long: `Show the step-by-step trace of a run recorded with "utm run --db".

Without --run, lists all recorded runs. The timeline shows one
configuration per executed step: sequence number, state, head position,
and the written tape cells in canonical "pos:char" form.

Examples:
  utm trace --db traces.db
  utm trace --db traces.db --run 0190a8e2-...
  utm trace --db traces.db --run 0190a8e2-... --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the trace database")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run ID to show")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	w := cmd.OutOrStdout()

	dbPath := opts.database(opts.Database)
	if dbPath == "" {
		return NewExitError(ExitCommandError, "no trace database: pass --db or set database in the config")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer st.Close()

	if opts.RunID == "" {
		return listRuns(opts, out, cmd, st)
	}

	run, err := st.ReadRun(cmd.Context(), opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	steps, err := st.ReadSteps(cmd.Context(), opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read steps", err)
	}

	result := TraceResult{
		RunID:        run.ID,
		Encoding:     run.Encoding,
		Input:        run.Input,
		Steps:        run.Steps,
		Accepted:     run.Accepted,
		LimitReached: run.LimitReached,
		Fingerprint:  run.Fingerprint,
	}
	for _, s := range steps {
		result.Timeline = append(result.Timeline, TraceStep{
			Seq:   s.Seq,
			State: codec.StateLabel(s.State),
			Head:  s.Head,
			Cells: s.Cells,
		})
	}

	if opts.Format == "json" {
		return out.Success(result)
	}

	fmt.Fprintf(w, "Run: %s\n", run.ID)
	fmt.Fprintf(w, "Encoding: %s\n", run.Encoding)
	fmt.Fprintf(w, "Input: %q\n", run.Input)
	fmt.Fprintf(w, "Steps: %d\n", run.Steps)
	if run.LimitReached {
		fmt.Fprintf(w, "Step limit reached (%d).\n", run.StepLimit)
	}
	writeVerdict(w, run.Accepted)
	fmt.Fprintln(w, "Timeline:")
	for _, s := range result.Timeline {
		fmt.Fprintf(w, "  %4d  %-5s head=%-4d cells=%s\n", s.Seq, s.State, s.Head, s.Cells)
	}
	return nil
}

func listRuns(opts *TraceOptions, out *OutputFormatter, cmd *cobra.Command, st *store.Store) error {
	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return out.Success(runs)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return nil
	}
	for _, r := range runs {
		verdict := "REJECTED"
		if r.Accepted {
			verdict = "ACCEPTED"
		}
		fmt.Fprintf(w, "%s  steps=%-6d %-8s input=%q\n", r.ID, r.Steps, verdict, r.Input)
	}
	return nil
}

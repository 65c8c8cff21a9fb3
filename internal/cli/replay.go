package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/decoder"
	"github.com/roach88/utm/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// ReplayReport is the structured output of the replay command.
type ReplayReport struct {
	RunID         string `json:"run_id"`
	Deterministic bool   `json:"deterministic"`
	Steps         int    `json:"steps"`
	DivergedAtSeq int    `json:"diverged_at_seq,omitempty"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-execute a recorded run and verify determinism",
		Long: `Re-execute a recorded run from its stored encoding and input, then
compare the fresh trace against the stored one.

The machine definition is re-decoded from the recorded encoding text, the
run is repeated with the recorded step limit, and the canonical
fingerprints of both traces are compared. The engine is deterministic, so
any divergence means the stored trace and the current build disagree;
the first diverging step is reported.

Exit codes: 0 deterministic, 1 divergence, 2 missing run or database.

Example:
  utm replay --db traces.db --run 0190a8e2-...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the trace database")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run ID to replay")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
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

	run, err := st.ReadRun(cmd.Context(), opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	stored, err := st.ReadSteps(cmd.Context(), opts.RunID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read steps", err)
	}

	def, err := decoder.Decode(run.Encoding)
	if err != nil {
		return WrapExitError(ExitCommandError, "stored encoding no longer decodes", err)
	}

	tr, err := executeTrace(cmd.Context(), def, run.Input, run.StepLimit)
	if err != nil {
		return WrapExitError(ExitFailure, "replay aborted", err)
	}

	report := ReplayReport{
		RunID: run.ID,
		Steps: tr.result.Steps,
	}

	fresh := store.Fingerprint(tr.records)
	if fresh == run.Fingerprint {
		report.Deterministic = true
		if opts.Format == "json" {
			return out.Success(report)
		}
		fmt.Fprintf(w, "Replay of %s is deterministic: %d steps, fingerprint %s\n", run.ID, tr.result.Steps, fresh)
		return nil
	}

	report.DivergedAtSeq = firstDivergence(stored, tr.records)
	if opts.Format == "json" {
		_ = out.Success(report)
	} else {
		fmt.Fprintf(w, "Replay of %s DIVERGED at step %d\n", run.ID, report.DivergedAtSeq)
		fmt.Fprintf(w, "  stored fingerprint:   %s\n", run.Fingerprint)
		fmt.Fprintf(w, "  replayed fingerprint: %s\n", fresh)
	}
	return NewExitError(ExitFailure, "replay diverged from stored trace")
}

// firstDivergence returns the seq of the first differing step record, or
// the length of the shorter trace when one is a prefix of the other.
func firstDivergence(stored, fresh []store.StepRecord) int {
	n := len(stored)
	if len(fresh) < n {
		n = len(fresh)
	}
	for i := 0; i < n; i++ {
		if stored[i] != fresh[i] {
			return stored[i].Seq
		}
	}
	return n
}

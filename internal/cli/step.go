package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/decoder"
	"github.com/roach88/utm/internal/engine"
)

// StepOptions holds flags for the step command.
type StepOptions struct {
	*RootOptions
	Input  string
	Limit  int
	Radius int
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "step <encoding|@file>",
		Short: "Run a machine one step at a time",
		Long: `Decode a machine and execute it interactively, one transition per
keypress. Press ENTER for the next step, or q to quit.

Each step produces a fresh configuration; the previous one is never
mutated, so what was printed stays accurate.

Example:
  utm step 01010010010 --input 0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStepMode(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input string for the machine")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "step limit (default from config, 1000000)")
	cmd.Flags().IntVar(&opts.Radius, "radius", 0, "tape window radius (default from config, 15)")

	return cmd
}

func runStepMode(opts *StepOptions, cmd *cobra.Command, arg string) error {
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
			out := &OutputFormatter{Format: opts.Format, Writer: w}
			_ = out.Error(string(de.Code), de.Message, de.Chunk)
		}
		return WrapExitError(ExitCommandError, "decode failed", err)
	}

	eng := engine.New(def, engine.WithStepLimit(limit))
	cfg := eng.Initial(opts.Input)

	fmt.Fprintln(w, "Initial configuration:")
	writeSnapshot(w, eng.Snapshot(cfg, radius))

	reader := bufio.NewScanner(cmd.InOrStdin())
	for {
		if eng.Halted(cfg) {
			fmt.Fprintln(w, "\nMachine halted.")
			writeVerdict(w, eng.Accepting(cfg))
			return nil
		}
		if cfg.Steps >= limit {
			fmt.Fprintf(w, "\nStep limit reached (%d steps).\n", limit)
			writeVerdict(w, eng.Accepting(cfg))
			return nil
		}

		fmt.Fprint(w, "\nPress ENTER for next step or 'q' to quit: ")
		if !reader.Scan() {
			fmt.Fprintln(w, "\nExecution terminated.")
			return nil
		}
		if strings.EqualFold(strings.TrimSpace(reader.Text()), "q") {
			fmt.Fprintln(w, "Execution terminated by user.")
			return nil
		}

		next, ok := eng.Step(cfg)
		if !ok {
			continue // halted; reported at the top of the loop
		}
		cfg = next
		fmt.Fprintln(w)
		writeSnapshot(w, eng.Snapshot(cfg, radius))
	}
}

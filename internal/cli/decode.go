package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/decoder"
	"github.com/roach88/utm/internal/machine"
)

// DecodeReport is the structured output of the decode command.
type DecodeReport struct {
	States        []string `json:"states"`
	InputAlphabet []string `json:"input_alphabet"`
	TapeAlphabet  []string `json:"tape_alphabet"`
	StartState    string   `json:"start_state"`
	AcceptState   string   `json:"accept_state"`
	Transitions   []string `json:"transitions"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <encoding|@file>",
		Short: "Decode a binary machine encoding",
		Long: `Decode a binary Turing machine encoding and print the recovered
transition table.

The strict decoding discipline applies: the input must consist solely of
'0' and '1' characters and every transition chunk must contain exactly
five unary fields. A malformed encoding fails the whole decode and names
the offending chunk.

Examples:
  utm decode 01010010010
  utm decode @machine.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runDecode(opts *RootOptions, cmd *cobra.Command, arg string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

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

	report := buildDecodeReport(def)
	if opts.Format == "json" {
		return out.Success(report)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "States: %s\n", strings.Join(report.States, " "))
	fmt.Fprintf(w, "Input alphabet: %s\n", strings.Join(report.InputAlphabet, " "))
	fmt.Fprintf(w, "Tape alphabet: %s\n", strings.Join(report.TapeAlphabet, " "))
	fmt.Fprintf(w, "Start state: %s\n", report.StartState)
	fmt.Fprintf(w, "Accept state: %s\n", report.AcceptState)
	fmt.Fprintf(w, "Transitions (%d):\n%s", def.Size(), def.String())
	return nil
}

func buildDecodeReport(def *machine.Definition) DecodeReport {
	report := DecodeReport{
		StartState:  def.StartState().Label(),
		AcceptState: def.AcceptState().Label(),
	}
	for _, s := range def.States() {
		report.States = append(report.States, s.Label())
	}
	for _, s := range def.InputAlphabet() {
		report.InputAlphabet = append(report.InputAlphabet, string(s.Char()))
	}
	for _, s := range def.TapeAlphabet() {
		report.TapeAlphabet = append(report.TapeAlphabet, string(s.Char()))
	}
	for _, t := range def.Transitions() {
		report.Transitions = append(report.Transitions, t.String())
	}
	return report
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/utm/internal/machine"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Decimal string
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode [transition ...]",
		Short: "Produce a binary machine encoding",
		Long: `Produce a binary Turing machine encoding.

Each transition argument has the form "from,read,to,write,dir" with
integer fields >= 1 and dir one of L or R, e.g. "1,1,2,2,L" for
δ(q1, X1) = (q2, X2, LEFT).

Alternatively, --decimal converts a decimal machine number to its binary
representation without interpreting it.

Examples:
  utm encode 1,1,2,2,L 2,3,2,3,R
  utm encode --decimal 1337`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Decimal, "decimal", "", "decimal number to convert to a binary string")

	return cmd
}

func runEncode(opts *EncodeOptions, cmd *cobra.Command, args []string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if opts.Decimal != "" {
		if len(args) > 0 {
			return NewExitError(ExitCommandError, "--decimal cannot be combined with transition arguments")
		}
		binary, err := DecimalToBinary(opts.Decimal)
		if err != nil {
			return WrapExitError(ExitCommandError, "conversion failed", err)
		}
		return emitEncoding(opts.RootOptions, out, cmd, binary)
	}

	if len(args) == 0 {
		return NewExitError(ExitCommandError, "provide transition arguments or --decimal")
	}

	transitions := make([]machine.Transition, 0, len(args))
	for _, arg := range args {
		t, err := parseTransitionArg(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid transition", err)
		}
		transitions = append(transitions, t)
	}

	return emitEncoding(opts.RootOptions, out, cmd, machine.Encode(transitions))
}

func emitEncoding(opts *RootOptions, out *OutputFormatter, cmd *cobra.Command, encoding string) error {
	if opts.Format == "json" {
		return out.Success(map[string]string{"encoding": encoding})
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoding)
	return nil
}

// parseTransitionArg parses "from,read,to,write,dir" into a Transition.
func parseTransitionArg(arg string) (machine.Transition, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 5 {
		return machine.Transition{}, fmt.Errorf("%q: expected 5 comma-separated fields", arg)
	}

	var nums [4]int
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 1 {
			return machine.Transition{}, fmt.Errorf("%q: field %d must be an integer >= 1", arg, i+1)
		}
		nums[i] = n
	}

	var move machine.Direction
	switch strings.ToUpper(strings.TrimSpace(parts[4])) {
	case "L":
		move = machine.Left
	case "R":
		move = machine.Right
	default:
		return machine.Transition{}, fmt.Errorf("%q: direction must be L or R", arg)
	}

	return machine.Transition{
		From:  machine.State(nums[0]),
		Read:  machine.Symbol(nums[1]),
		To:    machine.State(nums[2]),
		Write: machine.Symbol(nums[3]),
		Move:  move,
	}, nil
}

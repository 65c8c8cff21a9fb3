package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/utm/internal/codec"
	"github.com/roach88/utm/internal/machine"
	"github.com/roach88/utm/internal/tape"
)

// DefaultStepLimit is the safety bound applied when no explicit limit is
// configured. It guarantees Run itself terminates even for machines that
// never halt.
const DefaultStepLimit = 1_000_000

// Engine executes one machine definition. It holds no per-run state; the
// same Engine may start any number of independent runs.
type Engine struct {
	def      *machine.Definition
	alphabet *codec.Alphabet
	limit    int
	observer func(*Configuration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithStepLimit overrides the default step bound for Run.
func WithStepLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithObserver registers a callback invoked once for every configuration
// Run produces, in step order. Used to record traces without coupling the
// evaluation loop to storage.
func WithObserver(fn func(*Configuration)) Option {
	return func(e *Engine) { e.observer = fn }
}

// New creates an Engine for a decoded machine definition.
func New(def *machine.Definition, opts ...Option) *Engine {
	e := &Engine{
		def:      def,
		alphabet: codec.NewAlphabet(),
		limit:    DefaultStepLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Definition returns the machine this engine executes.
func (e *Engine) Definition() *machine.Definition { return e.def }

// StepLimit returns the configured step bound.
func (e *Engine) StepLimit() int { return e.limit }

// Initial builds the starting configuration for an input string: start
// state, a tape seeded with the input's symbols at positions 0.., head at
// 0, step count 0. Input characters map through the engine's alphabet, so
// symbols beyond '0' and '1' are assigned on first encounter.
func (e *Engine) Initial(input string) *Configuration {
	runes := e.alphabet.Symbols(input)
	symbols := make([]machine.Symbol, len(runes))
	for i, s := range runes {
		symbols[i] = machine.Symbol(s)
	}
	return &Configuration{
		State: e.def.StartState(),
		Tape:  tape.Seed(symbols, e.def.Blank()),
	}
}

// Halted reports whether no transition exists for the configuration's
// (state, read symbol) pair. Halting is a normal terminal outcome; checking
// it does not change the configuration, so the check is idempotent.
func (e *Engine) Halted(c *Configuration) bool {
	_, ok := e.def.Lookup(c.State, c.Tape.Read())
	return !ok
}

// Accepting reports whether the configuration is in the accept state.
// Acceptance is a property of the state alone: it does not require the
// machine to be halted, and the accept state may have outgoing transitions.
func (e *Engine) Accepting(c *Configuration) bool {
	return c.State == e.def.AcceptState()
}

// Step applies one transition and returns the successor configuration.
// ok is false when the machine is halted, in which case the returned
// configuration is the argument itself.
//
// The argument is never mutated: the successor's tape is a clone with the
// write applied and the head moved, its state is the transition's target,
// and its step count is one higher. A caller holding the prior
// configuration can keep using it after the call.
func (e *Engine) Step(c *Configuration) (*Configuration, bool) {
	t, ok := e.def.Lookup(c.State, c.Tape.Read())
	if !ok {
		return c, false
	}

	next := c.Clone()
	next.Tape.Write(t.Write)
	if t.Move == machine.Left {
		next.Tape.MoveLeft()
	} else {
		next.Tape.MoveRight()
	}
	next.State = t.To
	next.Steps++
	return next, true
}

// Result is the outcome of a bounded run.
type Result struct {
	// Final is the last configuration reached.
	Final *Configuration
	// Steps is the number of transitions this Run call executed.
	Steps int
	// LimitReached is true when the run was truncated by the step bound
	// while the machine could still move. The machine may be legitimately
	// non-terminating; this is an expected outcome, not an error.
	LimitReached bool
	// Accepted reports whether the final configuration is in the accept
	// state.
	Accepted bool
}

// Run applies Step repeatedly until the machine halts or the configured
// step limit is reached. The only error is context cancellation; every
// machine-side outcome is expressed in the Result.
func (e *Engine) Run(ctx context.Context, c *Configuration) (Result, error) {
	executed := 0
	for executed < e.limit {
		if err := ctx.Err(); err != nil {
			return Result{Final: c, Steps: executed, Accepted: e.Accepting(c)}, err
		}

		next, ok := e.Step(c)
		if !ok {
			break
		}
		c = next
		executed++
		if e.observer != nil {
			e.observer(c)
		}
	}

	limitReached := executed >= e.limit && !e.Halted(c)
	if limitReached {
		slog.Warn("step limit reached, machine may not terminate",
			"limit", e.limit,
			"state", c.State.Label(),
		)
	}

	return Result{
		Final:        c,
		Steps:        executed,
		LimitReached: limitReached,
		Accepted:     e.Accepting(c),
	}, nil
}

// Snapshot renders a configuration for presentation and trace recording.
func (e *Engine) Snapshot(c *Configuration, radius int) Snapshot {
	return makeSnapshot(c, radius, e.alphabet, e.Halted(c), e.Accepting(c))
}

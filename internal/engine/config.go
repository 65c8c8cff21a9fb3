package engine

import (
	"github.com/roach88/utm/internal/machine"
	"github.com/roach88/utm/internal/tape"
)

// Configuration is a complete snapshot of computation at one point in
// execution: the current state, the tape (content plus head position), and
// the number of steps executed to reach it.
//
// Configurations produced by the engine are never mutated afterwards; each
// Step builds the successor over a cloned tape. Callers must extend the
// same courtesy to any Configuration they plan to re-step.
type Configuration struct {
	State machine.State
	Tape  *tape.Tape
	Steps int
}

// Clone returns an independent copy of the configuration.
func (c *Configuration) Clone() *Configuration {
	return &Configuration{
		State: c.State,
		Tape:  c.Tape.Clone(),
		Steps: c.Steps,
	}
}

package engine

import (
	"strings"

	"github.com/roach88/utm/internal/codec"
	"github.com/roach88/utm/internal/machine"
)

// DefaultWindowRadius is the number of cells rendered on each side of the
// head when no radius is configured.
const DefaultWindowRadius = 15

// Snapshot is a read-only view of a configuration for presentation and
// trace recording: printable state label, a tape window of configurable
// radius around the head, head position, step count, and the terminal
// flags.
type Snapshot struct {
	State    string `json:"state"`
	Head     int    `json:"head"`
	Steps    int    `json:"steps"`
	Before   string `json:"before"`  // radius cells left of the head
	Current  string `json:"current"` // the cell under the head
	After    string `json:"after"`   // radius cells right of the head
	Halted   bool   `json:"halted"`
	Accepted bool   `json:"accepted"`
}

// Window returns the full rendered window: before, current, after.
func (s Snapshot) Window() string {
	return s.Before + s.Current + s.After
}

// Configuration returns the classic instantaneous-description string, the
// state label written immediately before the symbol it is reading:
// X1..X(i-1) qi Xi X(i+1)..Xn.
func (s Snapshot) Configuration() string {
	return s.Before + s.State + s.Current + s.After
}

func makeSnapshot(c *Configuration, radius int, a *codec.Alphabet, halted, accepted bool) Snapshot {
	if radius <= 0 {
		radius = DefaultWindowRadius
	}
	win := c.Tape.Window(radius, radius)

	render := func(symbols []machine.Symbol) string {
		var b strings.Builder
		for _, s := range symbols {
			b.WriteRune(a.RuneFor(int(s)))
		}
		return b.String()
	}

	return Snapshot{
		State:    c.State.Label(),
		Head:     c.Tape.Head(),
		Steps:    c.Steps,
		Before:   render(win[:radius]),
		Current:  render(win[radius : radius+1]),
		After:    render(win[radius+1:]),
		Halted:   halted,
		Accepted: accepted,
	}
}

// Package machine defines the decoded form of a Turing machine: symbols,
// states, transitions, and the immutable Definition that owns the
// transition table.
package machine

import (
	"fmt"

	"github.com/roach88/utm/internal/codec"
)

// Symbol identifies a tape character. Values follow the encoding
// convention: 1 = '0', 2 = '1', 3 = blank, >= 4 extended.
type Symbol int

// State identifies a machine state. State 1 is always the start state and
// state 2 the designated accept state.
type State int

// Char returns the printable form of the symbol.
func (s Symbol) Char() rune { return codec.SymbolChar(int(s)) }

// Label returns the printable label of the state, e.g. "q3".
func (s State) Label() string { return codec.StateLabel(int(s)) }

// Direction is a head movement. There is no STAY option.
type Direction int

const (
	// Left moves the head one cell toward lower positions. Encoded as
	// direction field value 1.
	Left Direction = iota + 1
	// Right moves the head one cell toward higher positions. Encoded as
	// any direction field value other than 1, conventionally 2.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Transition is one entry of the transition function:
// δ(From, Read) = (To, Write, Move).
type Transition struct {
	From  State
	Read  Symbol
	To    State
	Write Symbol
	Move  Direction
}

// Key is the composite lookup key of the transition table. The table is a
// partial function over (state, symbol), so "no transition" is a single
// uniform lookup miss.
type Key struct {
	State  State
	Symbol Symbol
}

// Key returns the transition's lookup key.
func (t Transition) Key() Key {
	return Key{State: t.From, Symbol: t.Read}
}

func (t Transition) String() string {
	return fmt.Sprintf("δ(%s, %q) = (%s, %q, %s)",
		t.From.Label(), t.Read.Char(), t.To.Label(), t.Write.Char(), t.Move)
}

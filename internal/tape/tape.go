// Package tape implements the sparse, logically bi-infinite tape of a
// Turing machine.
//
// Storage is a map keyed by integer position, so the tape never resizes or
// reallocates as the head wanders: a cell exists only once it has been
// written, and reading anywhere else yields the blank symbol. Cloning
// copies the map, which is what lets the engine branch configurations
// without aliasing mutable state.
package tape

import (
	"maps"

	"github.com/roach88/utm/internal/machine"
)

// Tape is sparse symbol storage with a movable head. The zero position is
// where the head starts; positions extend without bound in both directions.
type Tape struct {
	cells map[int]machine.Symbol
	head  int
	blank machine.Symbol
}

// New returns an empty tape with the head at position 0.
func New(blank machine.Symbol) *Tape {
	return &Tape{
		cells: make(map[int]machine.Symbol),
		blank: blank,
	}
}

// Seed returns a tape holding the given symbols at positions 0..len-1 with
// the head at 0. Blank symbols in the input are not stored; they are
// already what an absent cell reads as.
func Seed(symbols []machine.Symbol, blank machine.Symbol) *Tape {
	t := New(blank)
	for i, s := range symbols {
		if s != blank {
			t.cells[i] = s
		}
	}
	return t
}

// Read returns the symbol under the head, or the blank symbol if the cell
// was never written.
func (t *Tape) Read() machine.Symbol {
	if s, ok := t.cells[t.head]; ok {
		return s
	}
	return t.blank
}

// Write stores a symbol at the head position, creating the cell if absent.
func (t *Tape) Write(s machine.Symbol) {
	t.cells[t.head] = s
}

// MoveLeft moves the head one position toward lower indices.
func (t *Tape) MoveLeft() { t.head-- }

// MoveRight moves the head one position toward higher indices.
func (t *Tape) MoveRight() { t.head++ }

// Head returns the current head position.
func (t *Tape) Head() int { return t.head }

// Blank returns the tape's blank symbol.
func (t *Tape) Blank() machine.Symbol { return t.blank }

// Window returns the symbols spanning [head-before, head+after] in order,
// substituting the blank symbol for cells that were never written. Used by
// presentation only.
func (t *Tape) Window(before, after int) []machine.Symbol {
	out := make([]machine.Symbol, 0, before+after+1)
	for pos := t.head - before; pos <= t.head+after; pos++ {
		if s, ok := t.cells[pos]; ok {
			out = append(out, s)
		} else {
			out = append(out, t.blank)
		}
	}
	return out
}

// Cells returns the number of positions ever written. Pure head movement
// never changes this count.
func (t *Tape) Cells() int { return len(t.cells) }

// Written returns a copy of the written cells keyed by position.
func (t *Tape) Written() map[int]machine.Symbol {
	return maps.Clone(t.cells)
}

// Min returns the lowest written position, or 0 for an empty tape.
func (t *Tape) Min() int {
	return t.extent(func(pos, best int) bool { return pos < best })
}

// Max returns the highest written position, or 0 for an empty tape.
func (t *Tape) Max() int {
	return t.extent(func(pos, best int) bool { return pos > best })
}

func (t *Tape) extent(better func(pos, best int) bool) int {
	first := true
	best := 0
	for pos := range t.cells {
		if first || better(pos, best) {
			best = pos
			first = false
		}
	}
	return best
}

// Clone returns a fully independent copy: same written cells, same head
// position, no shared storage.
func (t *Tape) Clone() *Tape {
	return &Tape{
		cells: maps.Clone(t.cells),
		head:  t.head,
		blank: t.blank,
	}
}

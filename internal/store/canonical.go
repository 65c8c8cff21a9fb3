package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/utm/internal/codec"
	"github.com/roach88/utm/internal/machine"
)

// CanonicalCells serializes the written tape cells in the one form used for
// both storage and fingerprinting: "pos:char" pairs sorted by position,
// joined by ';'. Cell characters are NFC-normalized because extended
// symbols past the letter range render as arbitrary generated runes.
func CanonicalCells(cells map[int]machine.Symbol) string {
	positions := make([]int, 0, len(cells))
	for pos := range cells {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	parts := make([]string, 0, len(positions))
	for _, pos := range positions {
		parts = append(parts, fmt.Sprintf("%d:%c", pos, codec.SymbolChar(int(cells[pos]))))
	}
	return norm.NFC.String(strings.Join(parts, ";"))
}

// NewStepRecord builds the stored form of one configuration snapshot.
func NewStepRecord(seq int, state machine.State, head int, cells map[int]machine.Symbol) StepRecord {
	return StepRecord{
		Seq:   seq,
		State: int(state),
		Head:  head,
		Cells: CanonicalCells(cells),
	}
}

// Fingerprint hashes a step sequence into the run's comparison oracle. Two
// traces fingerprint equal iff they contain the same snapshots in the same
// order, which is exactly what deterministic replay must reproduce.
func Fingerprint(steps []StepRecord) string {
	h := sha256.New()
	for _, s := range steps {
		fmt.Fprintf(h, "%d|%d|%d|%s\n", s.Seq, s.State, s.Head, s.Cells)
	}
	return hex.EncodeToString(h.Sum(nil))
}

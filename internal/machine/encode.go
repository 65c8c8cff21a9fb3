package machine

import (
	"strings"

	"github.com/roach88/utm/internal/codec"
)

// TransitionDelimiter is the two-character sequence separating successive
// transitions in an encoding.
const TransitionDelimiter = "11"

// FieldSeparator is the single character delimiting fields within one
// transition's encoding.
const FieldSeparator = "1"

// EncodeTransition writes one transition in unary-run form:
// 0^i 1 0^j 1 0^k 1 0^l 1 0^m for δ(qᵢ, Xⱼ) = (qₖ, Xₗ, Dₘ).
// Left encodes as 1 zero, Right as 2.
func EncodeTransition(t Transition) string {
	dir := 2
	if t.Move == Left {
		dir = 1
	}
	fields := []string{
		codec.UnaryRun(int(t.From)),
		codec.UnaryRun(int(t.Read)),
		codec.UnaryRun(int(t.To)),
		codec.UnaryRun(int(t.Write)),
		codec.UnaryRun(dir),
	}
	return strings.Join(fields, FieldSeparator)
}

// Encode writes a transition list as a single binary encoding, transitions
// joined by the "11" delimiter. Encode is the inverse of the strict decode:
// decoding the result yields the same (state, symbol) -> transition map.
func Encode(transitions []Transition) string {
	parts := make([]string, 0, len(transitions))
	for _, t := range transitions {
		parts = append(parts, EncodeTransition(t))
	}
	return strings.Join(parts, TransitionDelimiter)
}

// Package decoder recovers a structured transition table from the unary-run
// binary encoding of a Turing machine.
//
// One transition is written as 0^i 1 0^j 1 0^k 1 0^l 1 0^m, meaning
// δ(qᵢ, Xⱼ) = (qₖ, Xₗ, Dₘ); successive transitions are separated by "11".
// Direction field value 1 is LEFT, any other value is RIGHT.
//
// Decode is the canonical, validating entry point and returns a
// machine.Definition or a typed DecodeError. Extract is a best-effort
// streaming scan kept for contexts that want whatever transitions a noisy
// string contains; it validates nothing and never fails.
package decoder

import (
	"strings"

	"github.com/roach88/utm/internal/codec"
	"github.com/roach88/utm/internal/machine"
)

// fieldsPerTransition is the field count of one encoded transition:
// fromState, readSymbol, toState, writeSymbol, direction.
const fieldsPerTransition = 5

// Decode parses a binary encoding into a machine Definition.
//
// The strict discipline: the whole input must consist of '0' and '1'
// characters; it is split on the "11" delimiter into transition chunks, and
// every non-empty chunk must split on single '1' separators into exactly 5
// non-empty unary fields (empty fragments, which arise from runs of '1's,
// are discarded). A chunk with any other field count fails the whole
// decode, as does an encoding that yields no transitions at all.
//
// Duplicate (fromState, readSymbol) pairs are legal; the last one wins.
func Decode(encoding string) (*machine.Definition, error) {
	transitions, err := decodeTransitions(encoding)
	if err != nil {
		return nil, err
	}
	return machine.New(transitions), nil
}

// DecodeTransitions is Decode without the Definition construction, for
// callers that want the raw ordered transition list.
func DecodeTransitions(encoding string) ([]machine.Transition, error) {
	return decodeTransitions(encoding)
}

func decodeTransitions(encoding string) ([]machine.Transition, error) {
	if encoding == "" {
		return nil, newEmptyEncodingError()
	}
	for i, r := range encoding {
		if r != '0' && r != '1' {
			return nil, newInvalidCharacterError(r, i)
		}
	}

	var transitions []machine.Transition
	for _, chunk := range strings.Split(encoding, machine.TransitionDelimiter) {
		if chunk == "" {
			continue
		}

		var fields []string
		for _, f := range strings.Split(chunk, machine.FieldSeparator) {
			if f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) != fieldsPerTransition {
			return nil, newMalformedTransitionError(chunk, len(fields))
		}

		transitions = append(transitions, makeTransition(
			len(fields[0]), len(fields[1]), len(fields[2]), len(fields[3]), len(fields[4]),
		))
	}

	if len(transitions) == 0 {
		return nil, newNoTransitionsError()
	}
	return transitions, nil
}

// Extract scans an arbitrary string left to right and collects every
// transition it can read, abandoning malformed candidates and skipping
// foreign characters. This is an extraction policy, not a validation
// policy: Extract never fails and a malformed suffix simply contributes no
// transition. Use Decode when a validated Definition is required.
func Extract(encoding string) []machine.Transition {
	var transitions []machine.Transition

	i := 0
	for i < len(encoding) {
		// An inter-transition "11" delimiter is optional here; consume it
		// and keep scanning.
		if i+1 < len(encoding) && encoding[i] == '1' && encoding[i+1] == '1' {
			i += 2
			continue
		}

		if encoding[i] != '0' {
			i++
			continue
		}

		fields, next, ok := scanCandidate(encoding, i)
		if ok {
			transitions = append(transitions, makeTransition(
				fields[0], fields[1], fields[2], fields[3], fields[4],
			))
		}
		i = next
	}

	return transitions
}

// scanCandidate reads one candidate transition starting at a '0'. It
// returns the five field values, the position to resume scanning at, and
// whether a complete candidate was read. An abandoned candidate resumes
// right after the zeros and separators it managed to consume.
func scanCandidate(s string, pos int) (fields [fieldsPerTransition]int, next int, ok bool) {
	i := pos
	for f := 0; f < fieldsPerTransition; f++ {
		run := codec.RunLength(s, i)
		fields[f] = run
		i += run

		// The four inner separators must each be a single '1'. The final
		// field has no trailing separator.
		if f == fieldsPerTransition-1 {
			return fields, i, true
		}
		if i >= len(s) || s[i] != '1' {
			return fields, i, false
		}
		i++
	}
	return fields, i, false
}

func makeTransition(from, read, to, write, dir int) machine.Transition {
	move := machine.Right
	if dir == 1 {
		move = machine.Left
	}
	return machine.Transition{
		From:  machine.State(from),
		Read:  machine.Symbol(read),
		To:    machine.State(to),
		Write: machine.Symbol(write),
		Move:  move,
	}
}

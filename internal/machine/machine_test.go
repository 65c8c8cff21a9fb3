package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "LEFT", Left.String())
	assert.Equal(t, "RIGHT", Right.String())
}

func TestTransitionString(t *testing.T) {
	tr := Transition{From: 1, Read: 2, To: 3, Write: 1, Move: Right}
	assert.Equal(t, `δ(q1, '1') = (q3, '0', RIGHT)`, tr.String())
}

func TestDefinitionLookup(t *testing.T) {
	d := New([]Transition{
		{From: 1, Read: 1, To: 2, Write: 2, Move: Right},
		{From: 2, Read: 3, To: 1, Write: 1, Move: Left},
	})

	got, ok := d.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, State(2), got.To)

	_, ok = d.Lookup(1, 2)
	assert.False(t, ok, "missing entry is a lookup miss, not an error")
}

func TestDefinitionLastWriteWins(t *testing.T) {
	d := New([]Transition{
		{From: 1, Read: 1, To: 2, Write: 2, Move: Right},
		{From: 1, Read: 1, To: 3, Write: 1, Move: Left},
	})

	require.Equal(t, 1, d.Size())
	got, ok := d.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, State(3), got.To, "later duplicate overwrites the earlier entry")

	// The overwritten entry keeps its original listing position.
	ts := d.Transitions()
	require.Len(t, ts, 1)
	assert.Equal(t, State(3), ts[0].To)
}

func TestDefinitionStates(t *testing.T) {
	d := New([]Transition{
		{From: 1, Read: 2, To: 5, Write: 1, Move: Right},
	})

	// q2 is implicit even when nothing references it.
	assert.Equal(t, []State{1, 2, 5}, d.States())
	assert.Equal(t, StartState, d.StartState())
	assert.Equal(t, AcceptState, d.AcceptState())
	assert.Equal(t, Blank, d.Blank())
}

func TestDefinitionAlphabets(t *testing.T) {
	d := New([]Transition{
		{From: 1, Read: 2, To: 1, Write: 4, Move: Right},
	})

	assert.Equal(t, []Symbol{1, 2}, d.InputAlphabet())
	assert.Equal(t, []Symbol{1, 2, 3, 4}, d.TapeAlphabet())
}

func TestEncodeTransition(t *testing.T) {
	// δ(q1, X1) = (q2, X2, LEFT): 0 1 0 1 00 1 00 1 0
	tr := Transition{From: 1, Read: 1, To: 2, Write: 2, Move: Left}
	assert.Equal(t, "01010010010", EncodeTransition(tr))

	// Right always encodes as two zeros.
	tr.Move = Right
	assert.Equal(t, "010100100100", EncodeTransition(tr))
}

func TestEncodeJoinsWithDelimiter(t *testing.T) {
	ts := []Transition{
		{From: 1, Read: 1, To: 2, Write: 2, Move: Left},
		{From: 2, Read: 1, To: 2, Write: 1, Move: Right},
	}
	enc := Encode(ts)
	assert.Equal(t, "01010010010"+"11"+"001010010100", enc)
}

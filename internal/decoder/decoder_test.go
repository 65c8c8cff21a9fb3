package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/utm/internal/machine"
)

func TestDecodeMinimalMachine(t *testing.T) {
	// 0 1 0 1 00 1 00 1 0 = δ(q1, X1) = (q2, X2, LEFT)
	def, err := Decode("01010010010")
	require.NoError(t, err)
	require.Equal(t, 1, def.Size())

	tr, ok := def.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, machine.State(2), tr.To)
	assert.Equal(t, machine.Symbol(2), tr.Write)
	assert.Equal(t, machine.Left, tr.Move)
}

func TestDecodeRegressionEncoding(t *testing.T) {
	def, err := Decode("010010001010011000101010010110001001001010011000100010001010")
	require.NoError(t, err)
	require.Equal(t, 4, def.Size())

	want := []machine.Transition{
		{From: 1, Read: 2, To: 3, Write: 1, Move: machine.Right},
		{From: 3, Read: 1, To: 1, Write: 2, Move: machine.Left},
		{From: 3, Read: 2, To: 2, Write: 1, Move: machine.Right},
		{From: 3, Read: 3, To: 3, Write: 1, Move: machine.Left},
	}
	assert.Equal(t, want, def.Transitions())
	assert.Equal(t, []machine.State{1, 2, 3}, def.States())
}

func TestDecodeEmptyEncoding(t *testing.T) {
	_, err := Decode("")
	require.Error(t, err)
	assert.True(t, IsEmptyEncoding(err))
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := Decode("0102")
	require.Error(t, err)
	assert.True(t, IsInvalidCharacter(err))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Offset)
}

func TestDecodeMalformedChunk(t *testing.T) {
	// "011" splits into the single chunk "0": one field instead of five.
	_, err := Decode("011")
	require.Error(t, err)
	assert.True(t, IsMalformedTransition(err))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "0", de.Chunk)
}

func TestDecodeChunkOfSeparatorsOnly(t *testing.T) {
	// "111" leaves the chunk "1", which yields zero fields: hard error
	// naming the chunk.
	_, err := Decode("111")
	require.Error(t, err)
	assert.True(t, IsMalformedTransition(err))
}

func TestDecodeNoTransitions(t *testing.T) {
	// "1111" splits into empty chunks only.
	_, err := Decode("1111")
	require.Error(t, err)
	assert.True(t, IsNoTransitions(err))
}

func TestDecodeLastWriteWins(t *testing.T) {
	first := machine.Transition{From: 1, Read: 1, To: 2, Write: 1, Move: machine.Right}
	second := machine.Transition{From: 1, Read: 1, To: 3, Write: 2, Move: machine.Left}
	def, err := Decode(machine.Encode([]machine.Transition{first, second}))
	require.NoError(t, err)

	require.Equal(t, 1, def.Size())
	tr, ok := def.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, second, tr)
}

func TestDecodeToleratesLeadingAndTrailingDelimiters(t *testing.T) {
	def, err := Decode("11" + "01010010010" + "11")
	require.NoError(t, err)
	assert.Equal(t, 1, def.Size())
}

// Round-trip property: encoding a synthetic definition and decoding the
// result preserves the (state, symbol) -> transition mapping for all field
// values in [1, 50].
func TestEncodeDecodeRoundTrip(t *testing.T) {
	var ts []machine.Transition
	for v := 1; v <= 50; v++ {
		move := machine.Left
		if v%2 == 0 {
			move = machine.Right
		}
		ts = append(ts, machine.Transition{
			From:  machine.State(v),
			Read:  machine.Symbol(51 - v),
			To:    machine.State(v),
			Write: machine.Symbol(v),
			Move:  move,
		})
	}

	def, err := Decode(machine.Encode(ts))
	require.NoError(t, err)
	require.Equal(t, len(ts), def.Size())

	for _, want := range ts {
		got, ok := def.Lookup(want.From, want.Read)
		require.True(t, ok, "missing %v", want)
		assert.Equal(t, want, got)
	}
}

func TestExtractNeverFails(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("xyz"))
	assert.Empty(t, Extract("0101"), "incomplete candidate contributes nothing")
}

func TestExtractMatchesStrictOnCleanInput(t *testing.T) {
	enc := "010010001010011000101010010110001001001010011000100010001010"
	strict, err := DecodeTransitions(enc)
	require.NoError(t, err)
	assert.Equal(t, strict, Extract(enc))
}

func TestExtractSkipsForeignCharactersAndMalformedSuffix(t *testing.T) {
	// One clean transition, junk, then a truncated candidate.
	got := Extract("x" + "01010010010" + "11" + "z" + "0101")
	require.Len(t, got, 1)
	assert.Equal(t, machine.Transition{From: 1, Read: 1, To: 2, Write: 2, Move: machine.Left}, got[0])
}

func TestExtractConsumesDelimitersAnywhere(t *testing.T) {
	// Leading, trailing, and doubled delimiters are cosmetic to the
	// scanner.
	a := "010100100100" // δ(q1,X1)=(q2,X2,R)
	got := Extract("11" + a + "1111" + a + "11")
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])

	// A single complete candidate needs no delimiter at all.
	assert.Len(t, Extract(a), 1)
}

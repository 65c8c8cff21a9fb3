package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryRun(t *testing.T) {
	assert.Equal(t, "", UnaryRun(0))
	assert.Equal(t, "", UnaryRun(-3))
	assert.Equal(t, "0", UnaryRun(1))
	assert.Equal(t, "00000", UnaryRun(5))
}

func TestRunLength(t *testing.T) {
	assert.Equal(t, 3, RunLength("000", 0))
	assert.Equal(t, 2, RunLength("10010", 1))
	assert.Equal(t, 0, RunLength("100", 0), "character at pos is not '0'")
	assert.Equal(t, 0, RunLength("000", 3), "pos past end")
	assert.Equal(t, 0, RunLength("000", -1))
}

func TestSymbolChar(t *testing.T) {
	assert.Equal(t, '0', SymbolChar(SymbolZero))
	assert.Equal(t, '1', SymbolChar(SymbolOne))
	assert.Equal(t, '_', SymbolChar(SymbolBlank))
	assert.Equal(t, 'A', SymbolChar(4))
	assert.Equal(t, 'Z', SymbolChar(29))

	// Large values still produce a generated label - never a failure.
	assert.NotPanics(t, func() { SymbolChar(5000) })
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, "q1", StateLabel(1))
	assert.Equal(t, "q42", StateLabel(42))
}

func TestAlphabetDefaults(t *testing.T) {
	a := NewAlphabet()
	assert.Equal(t, SymbolZero, a.SymbolFor('0'))
	assert.Equal(t, SymbolOne, a.SymbolFor('1'))
	assert.Equal(t, SymbolBlank, a.SymbolFor(BlankRune))
}

func TestAlphabetDynamicAssignment(t *testing.T) {
	a := NewAlphabet()

	// First unknown rune gets the first extended value.
	x := a.SymbolFor('x')
	assert.Equal(t, 4, x)

	// Stable on repeat lookups.
	assert.Equal(t, x, a.SymbolFor('x'))

	// Next unknown rune gets the next value.
	assert.Equal(t, 5, a.SymbolFor('#'))

	// Round-trips back to the registered rune.
	assert.Equal(t, 'x', a.RuneFor(x))
}

func TestAlphabetRuneForUnregistered(t *testing.T) {
	a := NewAlphabet()
	assert.Equal(t, 'B', a.RuneFor(5), "falls back to the fixed mapping")
}

func TestAlphabetSymbols(t *testing.T) {
	a := NewAlphabet()
	syms := a.Symbols("0110")
	require.Equal(t, []int{1, 2, 2, 1}, syms)
}

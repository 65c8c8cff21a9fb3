// Package codec maps tape symbols and machine states between their integer
// form, their unary-run binary representation, and their printable form.
//
// Every function here is a total function over integers >= 1 and never
// fails. Structural validation of encodings is the decoder's job, not the
// codec's: this package only knows how individual fields are written down.
//
// Reserved symbol values:
//
//	1 = the encoded '0'
//	2 = the encoded '1'
//	3 = blank (never part of any input; appears only off the written tape)
//
// Values >= 4 are extended symbols, printed as letters starting at 'A'.
package codec

import (
	"strconv"
	"strings"
)

// Reserved symbol values shared by every machine encoding.
const (
	SymbolZero  = 1
	SymbolOne   = 2
	SymbolBlank = 3
)

// BlankRune is the printable form of the blank symbol.
const BlankRune = '_'

// firstExtended is the first symbol value printed from the extended range.
const firstExtended = 4

// UnaryRun returns a run of n '0' characters. Non-positive n yields "".
func UnaryRun(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

// RunLength counts the consecutive '0' characters in s starting at pos.
// Returns 0 when pos is out of range or the character at pos is not '0'.
func RunLength(s string, pos int) int {
	if pos < 0 {
		return 0
	}
	n := 0
	for i := pos; i < len(s) && s[i] == '0'; i++ {
		n++
	}
	return n
}

// SymbolChar returns the printable form of a symbol value.
// 1 -> '0', 2 -> '1', 3 -> blank, 4+ -> 'A', 'B', ... (generated labels
// continue past 'Z'; there is no failure case).
func SymbolChar(n int) rune {
	switch n {
	case SymbolZero:
		return '0'
	case SymbolOne:
		return '1'
	case SymbolBlank:
		return BlankRune
	default:
		return rune('A' + (n - firstExtended))
	}
}

// StateLabel returns the printable label of a state value, e.g. 1 -> "q1".
func StateLabel(n int) string {
	return "q" + strconv.Itoa(n)
}

// Alphabet is a bidirectional mapping between tape symbols and the runes
// used to write them in input strings and rendered tape windows.
//
// A fresh Alphabet carries the reserved defaults. Unknown runes are
// assigned the next free symbol value (>= 4) on first encounter, so inputs
// over richer alphabets (letters, markers, unary digits) seed tapes without
// prior declaration.
//
// Alphabet is not safe for concurrent use; each run owns its own.
type Alphabet struct {
	toRune   map[int]rune
	toSymbol map[rune]int
	next     int
}

// NewAlphabet returns an Alphabet seeded with the reserved symbols.
func NewAlphabet() *Alphabet {
	a := &Alphabet{
		toRune:   make(map[int]rune),
		toSymbol: make(map[rune]int),
		next:     firstExtended,
	}
	a.register(SymbolZero, '0')
	a.register(SymbolOne, '1')
	a.register(SymbolBlank, BlankRune)
	return a
}

func (a *Alphabet) register(sym int, r rune) {
	a.toRune[sym] = r
	a.toSymbol[r] = sym
}

// SymbolFor returns the symbol value for an input rune, assigning the next
// extended value on first encounter.
func (a *Alphabet) SymbolFor(r rune) int {
	if sym, ok := a.toSymbol[r]; ok {
		return sym
	}
	sym := a.next
	a.next++
	a.register(sym, r)
	return sym
}

// RuneFor returns the printable rune for a symbol value, falling back to
// the fixed SymbolChar mapping for values never registered.
func (a *Alphabet) RuneFor(sym int) rune {
	if r, ok := a.toRune[sym]; ok {
		return r
	}
	return SymbolChar(sym)
}

// Symbols converts an input string to its symbol values in order.
func (a *Alphabet) Symbols(input string) []int {
	syms := make([]int, 0, len(input))
	for _, r := range input {
		syms = append(syms, a.SymbolFor(r))
	}
	return syms
}

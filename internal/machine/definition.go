package machine

import (
	"sort"
	"strings"
)

// Fixed roles assigned by the encoding convention. A transition table may
// reference further states; they are valid but have no special role, and a
// state with no outgoing transitions simply halts the machine.
const (
	// StartState is always q1.
	StartState State = 1
	// AcceptState is always q2. Acceptance is a property of being in this
	// state when execution stops; the state may still have outgoing
	// transitions.
	AcceptState State = 2
	// Blank is the symbol read from any tape cell that was never written.
	Blank Symbol = 3
)

// Definition owns a decoded transition table plus the fixed start state,
// accept state, and blank symbol. It is immutable once constructed and is
// a pure lookup structure: it holds no tape and no execution state.
type Definition struct {
	table map[Key]Transition
	order []Key // first-encounter order of keys, for stable listing
}

// New builds a Definition from a decoded transition list.
//
// The table is a partial function: at most one transition per (state,
// symbol). A later duplicate silently overwrites an earlier one, keeping
// its original position in the listing order (decoding is order-dependent,
// last-write-wins).
func New(transitions []Transition) *Definition {
	d := &Definition{
		table: make(map[Key]Transition, len(transitions)),
		order: make([]Key, 0, len(transitions)),
	}
	for _, t := range transitions {
		k := t.Key()
		if _, seen := d.table[k]; !seen {
			d.order = append(d.order, k)
		}
		d.table[k] = t
	}
	return d
}

// Lookup returns the transition for (state, symbol), if any.
func (d *Definition) Lookup(state State, sym Symbol) (Transition, bool) {
	t, ok := d.table[Key{State: state, Symbol: sym}]
	return t, ok
}

// Transitions returns the table entries in first-encounter key order.
func (d *Definition) Transitions() []Transition {
	out := make([]Transition, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.table[k])
	}
	return out
}

// Size returns the number of distinct (state, symbol) entries.
func (d *Definition) Size() int { return len(d.table) }

// StartState returns the fixed start state q1.
func (d *Definition) StartState() State { return StartState }

// AcceptState returns the fixed accept state q2.
func (d *Definition) AcceptState() State { return AcceptState }

// Blank returns the blank symbol.
func (d *Definition) Blank() Symbol { return Blank }

// States returns every state the table references, plus the implicit start
// and accept states, sorted ascending.
func (d *Definition) States() []State {
	set := map[State]struct{}{StartState: {}, AcceptState: {}}
	for _, t := range d.table {
		set[t.From] = struct{}{}
		set[t.To] = struct{}{}
	}
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InputAlphabet returns the input symbols ('0' and '1') referenced by the
// table, always including the two defaults, sorted ascending.
func (d *Definition) InputAlphabet() []Symbol {
	return d.alphabet(func(s Symbol) bool { return s <= 2 })
}

// TapeAlphabet returns every symbol the table references plus the three
// defaults, sorted ascending.
func (d *Definition) TapeAlphabet() []Symbol {
	return d.alphabet(func(Symbol) bool { return true })
}

func (d *Definition) alphabet(keep func(Symbol) bool) []Symbol {
	set := map[Symbol]struct{}{1: {}, 2: {}}
	if keep(Blank) {
		set[Blank] = struct{}{}
	}
	for _, t := range d.table {
		for _, s := range []Symbol{t.Read, t.Write} {
			if keep(s) {
				set[s] = struct{}{}
			}
		}
	}
	out := make([]Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the definition as one δ line per transition, in listing
// order.
func (d *Definition) String() string {
	var b strings.Builder
	for _, t := range d.Transitions() {
		b.WriteString("  ")
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

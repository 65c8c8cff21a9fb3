// Package engine advances Turing machine configurations one transition at
// a time and runs them to halt or to a step bound.
//
// The engine is deliberately single-threaded and deterministic: a run owns
// exactly one configuration chain, transitions are applied in the only
// order the machine allows, and there is no randomness and no concurrency
// in the evaluation loop. Two runs of the same machine on the same input
// always produce identical configurations, which is what the trace store's
// replay comparison relies on.
//
// Stepping is clone-per-step: Step never mutates the configuration it is
// given, it returns a new one over a cloned tape. A caller holding a prior
// configuration can keep it for comparison, re-step it, or branch
// speculative runs from it without synchronization, at the cost of an
// O(tape size) copy per step. Tape size is bounded by roughly one written
// cell per executed step, so the copy stays proportional to the work done.
//
// Halting is not an error. A configuration with no transition for its
// (state, read symbol) pair is a normal terminal outcome, reported as a
// boolean, and checking it is idempotent. The only failure Run can return
// is context cancellation; a truncated run is reported through the
// LimitReached flag instead.
package engine

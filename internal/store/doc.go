// Package store provides SQLite-backed storage for machine run traces.
//
// A trace is the full step-by-step record of one execution: the run row
// carries the raw binary encoding, the input string, the limit, and the
// final outcome; the step rows carry one configuration snapshot per
// executed step, ordered by a logical step sequence number.
//
// Machine definitions are never stored structurally. Replay re-decodes the
// recorded encoding text and re-executes, then compares the canonical
// fingerprint of the produced snapshots against the recorded one - the
// engine is deterministic, so any divergence means the stored trace and the
// current build disagree.
//
// Ordering discipline: all reads order by the step sequence number, never
// by insertion time or rowid, so a replayed comparison sees steps in
// exactly the order they were executed.
//
// Database configuration:
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: step rows cannot outlive their run
package store

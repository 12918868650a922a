// Package synth builds converter definitions: for one
// (arity, classification, source flavor, record shape) combination it
// produces the full semantic content of one generated overload.
//
// Key decisions encoded here:
//   - Wrapper choice: value-like slots get an explicit option wrapper,
//     reference-like slots stay plainly nullable
//   - Slot-population rule: exactly one result slot is populated, the one
//     matching the union's active index
//   - Overload disambiguation: one marker-typed, defaulted parameter per
//     slot, for hosts whose resolver ignores constraints; omitted for
//     hosts whose resolver does not
//
// Definitions can also be evaluated directly against in-memory union
// values (Apply), which is how the population rule is verified in tests.
package synth

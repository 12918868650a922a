// Package union models the tagged-union capability the generator targets:
// a value holding one of N typed alternatives plus the index of the active
// one. The generator itself never stores unions; this package exists so the
// synthesized slot-population rules can be exercised against concrete values.
package union

import "fmt"

// Union holds one of arity typed values, tagged by the active slot index.
type Union struct {
	arity int
	index int
	value any
}

// Of constructs a union of the given arity holding value at the active slot
// index. It panics on out-of-range inputs: constructing an impossible union
// is a programming error, not an input error.
func Of(arity, index int, value any) Union {
	if arity < 2 {
		panic(fmt.Sprintf("union arity must be at least 2, got %d", arity))
	}

	if index < 0 || index >= arity {
		panic(fmt.Sprintf("active index %d out of range for arity %d", index, arity))
	}

	return Union{arity: arity, index: index, value: value}
}

// Of2 constructs a two-slot union.
func Of2(index int, value any) Union { return Of(2, index, value) }

// Of3 constructs a three-slot union.
func Of3(index int, value any) Union { return Of(3, index, value) }

// Arity returns the number of slots.
func (u Union) Arity() int { return u.arity }

// ActiveIndex returns the index of the populated slot, in [0, Arity).
func (u Union) ActiveIndex() int { return u.index }

// Get is the unchecked per-slot accessor: it returns the stored value when i
// is the active index and the zero value otherwise. Callers are expected to
// consult ActiveIndex first; off-index access carries no meaning.
func (u Union) Get(i int) any {
	if i != u.index {
		return nil
	}

	return u.value
}

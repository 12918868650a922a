package synth

import (
	"fmt"

	"tuplecast-generator/category"
	"tuplecast-generator/union"
)

// RecordSlot is one evaluated slot of a converter result. For an absent slot
// Present is false and Value is nil, whatever the slot's category: a
// value-like slot never leaks its type's default value.
type RecordSlot struct {
	Name    string
	Wrap    WrapperKind
	Present bool
	Value   any
}

// Record is the result of applying a converter definition to a concrete
// union value: exactly one slot is present, all others are empty.
type Record struct {
	shape RecordShape
	slots []RecordSlot
}

// Shape returns the record shape the record was built for.
func (r Record) Shape() RecordShape { return r.shape }

// Len returns the number of slots.
func (r Record) Len() int { return len(r.slots) }

// Slot returns slot i.
func (r Record) Slot(i int) RecordSlot { return r.slots[i] }

// Present reports whether slot i is populated.
func (r Record) Present(i int) bool { return r.slots[i].Present }

// Field returns the value stored at slot i, nil when the slot is empty.
func (r Record) Field(i int) any { return r.slots[i].Value }

// Apply evaluates the definition's slot-population rule against a concrete
// union value. The union's arity must match the definition's.
func (d *ConverterDefinition) Apply(u union.Union) (Record, error) {
	if u.Arity() != d.Arity {
		return Record{}, fmt.Errorf("apply %s: union arity %d does not match definition arity %d: %w",
			d.Name, u.Arity(), d.Arity, category.ErrInvalidArity)
	}

	slots := make([]RecordSlot, d.Arity)

	for _, c := range d.Cases {
		slot := RecordSlot{
			Name: d.Result[c.Index].Name,
			Wrap: c.Wrap,
		}

		if u.ActiveIndex() == c.Index {
			slot.Present = true
			slot.Value = u.Get(c.Index)
		}

		slots[c.Index] = slot
	}

	return Record{shape: d.Shape, slots: slots}, nil
}

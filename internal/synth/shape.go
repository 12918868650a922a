package synth

import "tuplecast-generator/internal/common"

// SourceFlavor selects which union surface a converter attaches to.
type SourceFlavor int

const (
	_ SourceFlavor = iota // skip zero value, use it as a default (invalid) value for SourceFlavor

	// FlavorStandalone targets the standalone union type.
	FlavorStandalone

	// FlavorBase targets the common base/supertype union.
	FlavorBase
)

// String returns a human-readable flavor name.
func (f SourceFlavor) String() string {
	switch f {
	case FlavorStandalone:
		return "standalone"
	case FlavorBase:
		return "base"
	default:
		return common.UnknownStr
	}
}

// IsValid reports whether f is one of the defined flavors.
func (f SourceFlavor) IsValid() bool {
	return f == FlavorStandalone || f == FlavorBase
}

// RecordShape selects the shape of the converter's result.
type RecordShape int

const (
	_ RecordShape = iota // skip zero value, use it as a default (invalid) value for RecordShape

	// ShapeTuple is the order-dependent anonymous record: slots are
	// addressed by deconstruction order, field identifiers are sequential.
	ShapeTuple

	// ShapeNamedRecord is the name-addressable record: fields are named
	// after slot positions so callers can read them without deconstructing.
	ShapeNamedRecord

	// ShapePositional is pure positional extraction: no stored record
	// fields, one accessor per slot position.
	ShapePositional
)

// String returns a human-readable shape name.
func (s RecordShape) String() string {
	switch s {
	case ShapeTuple:
		return "tuple"
	case ShapeNamedRecord:
		return "named-record"
	case ShapePositional:
		return "positional"
	default:
		return common.UnknownStr
	}
}

// IsValid reports whether s is one of the defined shapes.
func (s RecordShape) IsValid() bool {
	switch s {
	case ShapeTuple, ShapeNamedRecord, ShapePositional:
		return true
	default:
		return false
	}
}

// Ceilings carries the per-shape arity ceiling. The defaults mirror the
// fixed-size-record limit of the target host library; a host without that
// limit may raise them, but arity validation itself always stays on.
type Ceilings struct {
	Tuple       int
	NamedRecord int
	Positional  int
}

// DefaultCeilings returns the stock per-shape arity limits.
func DefaultCeilings() Ceilings {
	return Ceilings{
		Tuple:       7,
		NamedRecord: 7,
		Positional:  9,
	}
}

// For returns the ceiling for the given shape.
func (c Ceilings) For(shape RecordShape) int {
	switch shape {
	case ShapeTuple:
		return c.Tuple
	case ShapeNamedRecord:
		return c.NamedRecord
	case ShapePositional:
		return c.Positional
	default:
		return 0
	}
}

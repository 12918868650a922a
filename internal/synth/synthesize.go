package synth

import (
	"errors"
	"fmt"
	"strings"

	"tuplecast-generator/category"
)

const minArity = 2

var (
	// ErrUnsupportedRecordShape is reported when a requested arity exceeds
	// the structural limit of the requested record shape.
	ErrUnsupportedRecordShape = errors.New("unsupported record shape")

	// ErrMalformedClassification is reported when a classification does not
	// cover exactly the requested arity.
	ErrMalformedClassification = errors.New("malformed classification")
)

// Options controls synthesis for one generation run.
type Options struct {
	// ConstraintsInSignature marks a host whose overload resolver treats
	// category constraints as part of signature identity. Disambiguation
	// parameters are then omitted entirely, not merely defaulted away,
	// since emitting them would produce redundant signatures.
	ConstraintsInSignature bool

	// Ceilings overrides the per-shape arity limits. Zero fields fall back
	// to the defaults.
	Ceilings Ceilings
}

// DefaultOptions returns the stock synthesis options.
func DefaultOptions() Options {
	return Options{Ceilings: DefaultCeilings()}
}

// CeilingFor returns the effective arity ceiling for a shape, falling back
// to the defaults for zero fields.
func (o Options) CeilingFor(shape RecordShape) int {
	if c := o.Ceilings.For(shape); c > 0 {
		return c
	}

	return DefaultCeilings().For(shape)
}

// Synthesize builds the converter definition for one
// (arity, classification, flavor, shape) combination.
//
// The classification length is checked against the arity even though the
// enumerator guarantees it: Synthesize is also invoked directly, and a
// mismatched classification would silently mispopulate slots.
func Synthesize(
	arity int,
	cls category.Classification,
	flavor SourceFlavor,
	shape RecordShape,
	opts Options,
) (*ConverterDefinition, error) {
	if !flavor.IsValid() {
		return nil, fmt.Errorf("synthesize: unknown source flavor %d", int(flavor))
	}

	if !shape.IsValid() {
		return nil, fmt.Errorf("synthesize: unknown shape %d: %w", int(shape), ErrUnsupportedRecordShape)
	}

	if arity < minArity {
		return nil, fmt.Errorf("synthesize %s: arity %d is below the minimum %d: %w",
			shape, arity, minArity, category.ErrInvalidArity)
	}

	if ceiling := opts.CeilingFor(shape); arity > ceiling {
		return nil, fmt.Errorf("synthesize %s: arity %d exceeds the shape ceiling %d: %w",
			shape, arity, ceiling, ErrUnsupportedRecordShape)
	}

	if cls.Arity() != arity {
		return nil, fmt.Errorf("synthesize %s: classification %q has %d slots, want %d: %w",
			shape, cls.String(), cls.Arity(), arity, ErrMalformedClassification)
	}

	for i, cat := range cls {
		if !cat.IsValid() {
			return nil, fmt.Errorf("synthesize %s: slot %d has no category: %w",
				shape, i, ErrMalformedClassification)
		}
	}

	def := &ConverterDefinition{
		Name:           converterName(shape),
		Arity:          arity,
		Classification: cls,
		Flavor:         flavor,
		Shape:          shape,
		SourceType:     sourceTypeName(flavor, arity),
	}

	typeArgs := make([]string, arity)

	for i, cat := range cls {
		name := fmt.Sprintf("T%d", i)
		typeArgs[i] = name

		def.TypeParams = append(def.TypeParams, TypeParam{Name: name, Constraint: cat})
		def.Result = append(def.Result, ResultSlot{
			Name:      resultSlotName(shape, i),
			TypeParam: name,
			Wrap:      WrapperFor(cat),
		})
		def.Cases = append(def.Cases, SlotCase{Index: i, Wrap: WrapperFor(cat)})
	}

	def.Params = []Param{{
		Name: "source",
		Type: fmt.Sprintf("%s[%s]", def.SourceType, strings.Join(typeArgs, ", ")),
	}}

	if !opts.ConstraintsInSignature {
		for i, cat := range cls {
			def.DisambParams = append(def.DisambParams, Param{
				Name:    fmt.Sprintf("overload%d", i),
				Type:    fmt.Sprintf("%s[T%d]", markerFor(cat), i),
				Default: "absent",
			})
		}
	}

	return def, nil
}

func resultSlotName(shape RecordShape, slot int) string {
	switch shape {
	case ShapeTuple:
		// Sequential, deliberately category-blind.
		return fmt.Sprintf("Item%d", slot)
	case ShapeNamedRecord:
		// Named after the slot position so callers can read fields
		// without deconstructing.
		return fmt.Sprintf("T%d", slot)
	default:
		return ""
	}
}

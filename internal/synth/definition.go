package synth

import (
	"fmt"

	"tuplecast-generator/category"
	"tuplecast-generator/internal/common"
)

// WrapperKind is the absence-representation strategy applied to one result slot.
type WrapperKind int

const (
	_ WrapperKind = iota // skip zero value, use it as a default (invalid) value for WrapperKind

	// WrapNullable leaves the slot as a plain nullable reference: the slot
	// type already has a native absent state.
	WrapNullable

	// WrapOption wraps the slot in an explicit present/absent option type:
	// value-like types have no natural empty state to reuse.
	WrapOption
)

// String returns a human-readable wrapper name.
func (w WrapperKind) String() string {
	switch w {
	case WrapNullable:
		return "nullable"
	case WrapOption:
		return "option"
	default:
		return common.UnknownStr
	}
}

// WrapperFor maps a slot category to its wrapping strategy.
func WrapperFor(cat category.Category) WrapperKind {
	if cat == category.CategoryValue {
		return WrapOption
	}

	return WrapNullable
}

// TypeParam is one generic type parameter of a converter, together with the
// category constraint attached to it.
type TypeParam struct {
	Name       string
	Constraint category.Category
}

// Param is one declared parameter of a converter signature. Default is empty
// for ordinary parameters and holds the absent-marker default for
// disambiguation parameters.
type Param struct {
	Name    string
	Type    string
	Default string
}

// ResultSlot describes one slot of the converter's result record. Name is
// empty for the positional-extraction shape, which exposes no field
// identifiers.
type ResultSlot struct {
	Name      string
	TypeParam string
	Wrap      WrapperKind
}

// SlotCase is one arm of the per-slot conditional body: when the union's
// active index equals Index, that slot is populated wrapped per Wrap, and
// every other slot receives its wrapper's empty representation.
type SlotCase struct {
	Index int
	Wrap  WrapperKind
}

// MarkerDecl declares one disambiguation marker type. Markers are emitted
// once per output unit and shared by all definitions in it.
type MarkerDecl struct {
	Name       string
	Constraint category.Category
}

const (
	refMarkerName = "RefOverload"
	valMarkerName = "ValOverload"
)

// Markers returns the marker declarations every output unit carries: one per
// category, each instantiable only when its category constraint holds.
func Markers() []MarkerDecl {
	return []MarkerDecl{
		{Name: refMarkerName, Constraint: category.CategoryReference},
		{Name: valMarkerName, Constraint: category.CategoryValue},
	}
}

func markerFor(cat category.Category) string {
	if cat == category.CategoryValue {
		return valMarkerName
	}

	return refMarkerName
}

// ConverterDefinition is the synthesized artifact for one
// (arity, classification, flavor, shape) combination: everything a downstream
// emitter needs to render the converter as signature plus body.
type ConverterDefinition struct {
	Name           string
	Arity          int
	Classification category.Classification
	Flavor         SourceFlavor
	Shape          RecordShape

	// SourceType is the union type the converter accepts, e.g. "Union3".
	SourceType string

	TypeParams []TypeParam
	Params     []Param

	// DisambParams break ties in the host overload resolver; they carry no
	// runtime value and default to an absent marker. Empty when the host
	// resolver treats constraints as part of signature identity.
	DisambParams []Param

	Result []ResultSlot
	Cases  []SlotCase
}

// Key identifies an overload within its output unit: two definitions with the
// same key would be indistinguishable to the host resolver.
func (d *ConverterDefinition) Key() string {
	return fmt.Sprintf("%d/%s", d.Arity, d.Classification)
}

func converterName(shape RecordShape) string {
	switch shape {
	case ShapeTuple:
		return "ToTuple"
	case ShapeNamedRecord:
		return "ToRecord"
	case ShapePositional:
		return "Extract"
	default:
		return common.UnknownStr
	}
}

func sourceTypeName(flavor SourceFlavor, arity int) string {
	if flavor == FlavorBase {
		return fmt.Sprintf("UnionBase%d", arity)
	}

	return fmt.Sprintf("Union%d", arity)
}

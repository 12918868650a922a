package plan

import (
	"fmt"

	"tuplecast-generator/internal/synth"
)

// UnitKey identifies one output unit: the (source flavor, record shape) pair
// its definitions belong to.
type UnitKey struct {
	Flavor synth.SourceFlavor
	Shape  synth.RecordShape
}

// String returns the unit name used in filenames and diagnostics.
func (k UnitKey) String() string {
	return fmt.Sprintf("%s_%s", k.Flavor, k.Shape)
}

// OutputUnit is the complete set of converter definitions for one unit key,
// plus the marker declarations shared by all of them. Once the driver hands
// a unit off it is not mutated again.
type OutputUnit struct {
	Key         UnitKey
	Markers     []synth.MarkerDecl
	Definitions []*synth.ConverterDefinition
}

// Options configures one driver run.
type Options struct {
	// Synth is passed through to every synthesis call.
	Synth synth.Options

	// Flavors and Shapes restrict the matrix; empty means all.
	Flavors []synth.SourceFlavor
	Shapes  []synth.RecordShape
}

// DefaultOptions returns options covering the full matrix.
func DefaultOptions() Options {
	return Options{Synth: synth.DefaultOptions()}
}

func (o Options) flavors() []synth.SourceFlavor {
	if len(o.Flavors) > 0 {
		return o.Flavors
	}

	return []synth.SourceFlavor{synth.FlavorStandalone, synth.FlavorBase}
}

func (o Options) shapes() []synth.RecordShape {
	if len(o.Shapes) > 0 {
		return o.Shapes
	}

	return []synth.RecordShape{synth.ShapeTuple, synth.ShapeNamedRecord, synth.ShapePositional}
}

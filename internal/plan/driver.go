package plan

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tuplecast-generator/category"
	"tuplecast-generator/internal/synth"
)

// ErrDuplicateOverload is reported when two definitions in one unit share an
// overload key.
var ErrDuplicateOverload = errors.New("duplicate overload")

// Drive runs the full generation matrix and returns one output unit per
// (flavor, shape) pair, in fixed order. The run aborts on the first error:
// a partial unit would leave downstream callers with silently missing
// converters.
func Drive(opts Options) ([]OutputUnit, error) {
	var keys []UnitKey
	for _, flavor := range opts.flavors() {
		for _, shape := range opts.shapes() {
			keys = append(keys, UnitKey{Flavor: flavor, Shape: shape})
		}
	}

	// Units share nothing, so they can be built concurrently. Each goroutine
	// writes only its own index; the assembled order stays fixed.
	units := make([]OutputUnit, len(keys))
	grp := new(errgroup.Group)

	for i, key := range keys {
		grp.Go(func() error {
			unit, err := buildUnit(key, opts.Synth)
			if err != nil {
				return err
			}

			units[i] = *unit

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}

// buildUnit synthesizes every definition of one unit: arities ascending up to
// the shape ceiling, classifications in enumeration order within an arity.
func buildUnit(key UnitKey, opts synth.Options) (*OutputUnit, error) {
	unit := &OutputUnit{
		Key:     key,
		Markers: synth.Markers(),
	}

	seen := map[string]struct{}{}

	for arity := 2; arity <= opts.CeilingFor(key.Shape); arity++ {
		classifications, err := category.Enumerate(arity)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", key, err)
		}

		for _, cls := range classifications {
			def, err := synth.Synthesize(arity, cls, key.Flavor, key.Shape, opts)
			if err != nil {
				return nil, fmt.Errorf("unit %s: %w", key, err)
			}

			if _, dup := seen[def.Key()]; dup {
				return nil, fmt.Errorf("unit %s: key %s: %w", key, def.Key(), ErrDuplicateOverload)
			}

			seen[def.Key()] = struct{}{}
			unit.Definitions = append(unit.Definitions, def)
		}
	}

	return unit, nil
}

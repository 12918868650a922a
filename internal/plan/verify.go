package plan

import (
	"fmt"

	"tuplecast-generator/internal/common"
	"tuplecast-generator/internal/diagnostic"
)

// Diagnostic codes produced by unit verification.
const (
	CodeEmptyUnit    = "empty-unit"
	CodeUnitCount    = "unit-count"
	CodeDuplicateKey = "duplicate-key"
	CodeNoMarkers    = "no-markers"
)

// VerifyUnits re-checks the integrity of driven output units against the
// options that produced them: expected definition counts, overload key
// uniqueness, and marker boilerplate presence. The driver already aborts on
// duplicates; verification exists so the CLI can report the full picture of
// a corrupted hand-off in one pass.
func VerifyUnits(units []OutputUnit, opts Options) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, unit := range units {
		name := unit.Key.String()

		if common.IsEmpty(unit.Definitions) {
			diags.AddError(CodeEmptyUnit, "unit has no definitions", name, "")
			continue
		}

		if common.IsEmpty(unit.Markers) {
			diags.AddError(CodeNoMarkers, "unit is missing its marker declarations", name, "")
		}

		want := expectedCount(2, opts.Synth.CeilingFor(unit.Key.Shape))
		if got := len(unit.Definitions); got != want {
			diags.AddError(CodeUnitCount,
				fmt.Sprintf("unit holds %d definitions, want %d", got, want), name, "")
		}

		seen := map[string]struct{}{}

		for _, def := range unit.Definitions {
			if _, dup := seen[def.Key()]; dup {
				diags.AddError(CodeDuplicateKey, "overload key appears twice", name, def.Key())
			}

			seen[def.Key()] = struct{}{}
		}

		diags.AddInfo(CodeUnitCount,
			fmt.Sprintf("%d definitions", len(unit.Definitions)), name, "")
	}

	return diags
}

// expectedCount sums 2^n for n in [lo, hi].
func expectedCount(lo, hi int) int {
	total := 0
	for n := lo; n <= hi; n++ {
		total += 1 << n
	}

	return total
}

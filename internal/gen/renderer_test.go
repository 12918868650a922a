package gen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuplecast-generator/internal/gen"
	"tuplecast-generator/internal/plan"
	"tuplecast-generator/internal/synth"
)

func driveSmallUnit(t *testing.T, constraintsInSignature bool) plan.OutputUnit {
	t.Helper()

	opts := plan.DefaultOptions()
	opts.Flavors = []synth.SourceFlavor{synth.FlavorStandalone}
	opts.Shapes = []synth.RecordShape{synth.ShapeTuple}
	opts.Synth.Ceilings.Tuple = 2
	opts.Synth.ConstraintsInSignature = constraintsInSignature

	units, err := plan.Drive(opts)
	require.NoError(t, err)
	require.Len(t, units, 1)

	return units[0]
}

func TestRenderUnitContent(t *testing.T) {
	t.Parallel()

	unit := driveSmallUnit(t, false)

	file, err := gen.RenderUnit(unit, gen.DefaultRenderConfig())
	require.NoError(t, err)

	assert.Equal(t, "standalone_tuple.convdefs.txt", file.Filename)

	content := string(file.Content)

	assert.Contains(t, content, "// Code generated by tuplecast-generator. DO NOT EDIT.")
	assert.Contains(t, content, "unit standalone_tuple")

	// Shared marker boilerplate.
	assert.Contains(t, content, "marker RefOverload[T: reference]")
	assert.Contains(t, content, "marker ValOverload[T: value]")

	// The mixed classification RV: nullable reference slot, option value slot.
	assert.Contains(t, content, "converter ToTuple [2/RV]")
	assert.Contains(t, content, "type-params: T0: reference, T1: value")
	assert.Contains(t, content, "source: source Union2[T0, T1]")
	assert.Contains(t, content, "disambiguation: overload0 RefOverload[T0] = absent, overload1 ValOverload[T1] = absent")
	assert.Contains(t, content, "returns: (Item0 nullable[T0], Item1 option[T1])")
	assert.Contains(t, content, "slot 0 = source.get(0) when source.index == 0, else null")
	assert.Contains(t, content, "slot 1 = some(source.get(1)) when source.index == 1, else none")

	// All four classifications of arity 2 are present exactly once.
	for _, key := range []string{"[2/RR]", "[2/RV]", "[2/VR]", "[2/VV]"} {
		assert.Equal(t, 1, strings.Count(content, key), "key %s", key)
	}
}

func TestRenderUnitConstraintsInSignature(t *testing.T) {
	t.Parallel()

	unit := driveSmallUnit(t, true)

	file, err := gen.RenderUnit(unit, gen.DefaultRenderConfig())
	require.NoError(t, err)

	content := string(file.Content)

	// Omitted entirely when the host resolver honors constraints.
	assert.NotContains(t, content, "disambiguation:")
	assert.Contains(t, content, "type-params: T0: reference, T1: value")
}

func TestRenderUnitNoComments(t *testing.T) {
	t.Parallel()

	unit := driveSmallUnit(t, false)

	file, err := gen.RenderUnit(unit, gen.RenderConfig{GenerateComments: false})
	require.NoError(t, err)

	assert.NotContains(t, string(file.Content), "// ToTuple for Union2")
}

func TestRenderDeterminism(t *testing.T) {
	t.Parallel()

	unit := driveSmallUnit(t, false)

	first, err := gen.RenderUnit(unit, gen.DefaultRenderConfig())
	require.NoError(t, err)

	second, err := gen.RenderUnit(unit, gen.DefaultRenderConfig())
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestRenderAllUnits(t *testing.T) {
	t.Parallel()

	units, err := plan.Drive(plan.DefaultOptions())
	require.NoError(t, err)

	files, err := gen.Render(units, gen.DefaultRenderConfig())
	require.NoError(t, err)
	require.Len(t, files, 6)

	names := map[string]struct{}{}
	for _, f := range files {
		names[f.Filename] = struct{}{}
		assert.NotEmpty(t, f.Content)
	}

	assert.Contains(t, names, "base_positional.convdefs.txt")
	assert.Contains(t, names, "standalone_named-record.convdefs.txt")
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	unit := driveSmallUnit(t, false)

	file, err := gen.RenderUnit(unit, gen.DefaultRenderConfig())
	require.NoError(t, err)

	err = gen.WriteFiles([]gen.RenderedFile{*file}, filepath.Join(dir, "out"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "out", file.Filename))
	require.NoError(t, err)
	assert.Equal(t, file.Content, got)
}

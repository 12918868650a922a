package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuplecast-generator/internal/config"
	"tuplecast-generator/internal/synth"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "./generated", cfg.OutputDir)
	assert.True(t, cfg.Comments)
	assert.NoError(t, cfg.Validate())

	opts := cfg.PlanOptions()
	assert.Empty(t, opts.Flavors)
	assert.Empty(t, opts.Shapes)
	assert.Equal(t, 7, opts.Synth.CeilingFor(synth.ShapeTuple))
	assert.Equal(t, 9, opts.Synth.CeilingFor(synth.ShapePositional))
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
version: "1"
output_dir: ./out
comments: false
constraints_in_signature: true
flavors: [standalone]
shapes: [tuple, positional]
ceilings:
  positional: 12
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "./out", cfg.OutputDir)
	assert.False(t, cfg.Comments)
	assert.False(t, cfg.RenderConfig().GenerateComments)

	opts := cfg.PlanOptions()
	assert.Equal(t, []synth.SourceFlavor{synth.FlavorStandalone}, opts.Flavors)
	assert.Equal(t, []synth.RecordShape{synth.ShapeTuple, synth.ShapePositional}, opts.Shapes)
	assert.True(t, opts.Synth.ConstraintsInSignature)
	assert.Equal(t, 12, opts.Synth.CeilingFor(synth.ShapePositional))
	assert.Equal(t, 7, opts.Synth.CeilingFor(synth.ShapeTuple))
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`shapes: [tuple]`))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "./generated", cfg.OutputDir)
	assert.True(t, cfg.Comments)
}

func TestParseRejectsBadYAML(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("shapes: [unclosed"))
	assert.Error(t, err)
}

func TestValidateProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad version", `version: "2"`, "unsupported config version"},
		{"unknown flavor", `flavors: [inline]`, `unknown flavor "inline"`},
		{"unknown shape", `shapes: [record]`, `unknown shape "record"`},
		{"ceiling too low", "ceilings:\n  tuple: 1", "ceiling tuple=1 outside"},
		{"ceiling too high", "ceilings:\n  positional: 32", "ceiling positional=32 outside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tuplecast.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ./elsewhere\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./elsewhere", cfg.OutputDir)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

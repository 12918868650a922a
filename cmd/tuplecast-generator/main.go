// Package main provides the CLI entrypoint for tuplecast-generator.
//
// tuplecast-generator produces converter definitions that turn tagged
// unions into positional records:
//   - Enumerates every reference/value classification per arity
//   - Synthesizes one converter overload per classification
//   - Groups definitions into one unit per (source flavor, record shape)
//   - Renders each unit to a declaration file
package main

import (
	"flag"
	"fmt"
	"os"

	"tuplecast-generator/internal/config"
	"tuplecast-generator/internal/gen"
	"tuplecast-generator/internal/plan"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (optional)")
	outDir := flag.String("out", "", "output directory, overrides the config value")
	checkOnly := flag.Bool("check", false, "drive and verify units without writing files")
	flag.Parse()

	if err := run(*configPath, *outDir, *checkOnly); err != nil {
		fmt.Fprintln(os.Stderr, "tuplecast-generator:", err)
		os.Exit(1)
	}
}

func run(configPath, outDir string, checkOnly bool) error {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if outDir != "" {
		cfg.OutputDir = outDir
	}

	opts := cfg.PlanOptions()

	units, err := plan.Drive(opts)
	if err != nil {
		return fmt.Errorf("driving generation: %w", err)
	}

	diags := plan.VerifyUnits(units, opts)
	for _, info := range diags.Infos {
		fmt.Println(info)
	}

	for _, warn := range diags.Warnings {
		fmt.Fprintln(os.Stderr, warn)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("verifying units: %w", err)
	}

	if checkOnly {
		fmt.Printf("checked %d units\n", len(units))
		return nil
	}

	files, err := gen.Render(units, cfg.RenderConfig())
	if err != nil {
		return fmt.Errorf("rendering units: %w", err)
	}

	if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("wrote %d unit files to %s\n", len(files), cfg.OutputDir)

	return nil
}

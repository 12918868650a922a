package config

import (
	"errors"
	"fmt"
	"strings"

	"tuplecast-generator/internal/common"
)

// Ceiling bounds: a union needs at least two slots, and past sixteen the
// 2^N overload blow-up is impractical to emit and review.
const (
	minCeiling = 2
	maxCeiling = 16
)

// Validate checks the configuration for inconsistencies and returns an error
// listing every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Version != "1" {
		problems = append(problems, fmt.Sprintf("unsupported config version %q", c.Version))
	}

	for _, name := range c.Flavors {
		if _, ok := flavorByName[name]; !ok {
			problems = append(problems, fmt.Sprintf("unknown flavor %q", name))
		}
	}

	for _, name := range c.Shapes {
		if _, ok := shapeByName[name]; !ok {
			problems = append(problems, fmt.Sprintf("unknown shape %q", name))
		}
	}

	ceilings := map[string]int{
		"tuple":        c.Ceilings.Tuple,
		"named_record": c.Ceilings.NamedRecord,
		"positional":   c.Ceilings.Positional,
	}

	for _, name := range []string{"tuple", "named_record", "positional"} {
		ceiling := ceilings[name]
		if ceiling == 0 {
			continue // keep the shape default
		}

		if !common.IsInRange(minCeiling, ceiling, maxCeiling) {
			problems = append(problems,
				fmt.Sprintf("ceiling %s=%d outside [%d, %d]", name, ceiling, minCeiling, maxCeiling))
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}

	return nil
}

package executable

import (
	"fmt"
	"maps"
	"os"
	"slices"
)

// BuildEnvironment returns the environment of the engine process: the
// current environment followed by the extra variables in key order, so that
// extras override inherited values.
func BuildEnvironment(extra map[string]string) []string {
	env := os.Environ()

	for _, key := range slices.Sorted(maps.Keys(extra)) {
		env = append(env, fmt.Sprintf("%s=%s", key, extra[key]))
	}

	return env
}

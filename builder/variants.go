// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// variants.go - textual shape names for the CLI and HTTP API.

package builder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// shapeArity lists every name accepted by Shape with its integer arity.
var shapeArity = map[string]int{
	"path":       1,
	"cycle":      1,
	"star":       1,
	"wheel":      1,
	"complete":   1,
	"grid":       2,
	"envelope":   0,
	"octahedron": 0,
}

// ShapeNames returns the accepted shape names in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapeArity))
	for name := range shapeArity {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Shape resolves a textual description "name[:n[,m]]" such as "cycle:5",
// "grid:3,4" or "envelope" into a Constructor.
func Shape(spec string) (Constructor, error) {
	name, rawArgs, _ := strings.Cut(strings.TrimSpace(strings.ToLower(spec)), ":")
	arity, ok := shapeArity[name]
	if !ok {
		return nil, fmt.Errorf("Shape(%q): %w", spec, ErrUnknownShape)
	}

	var args []int
	if rawArgs != "" {
		for _, part := range strings.Split(rawArgs, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("Shape(%q): argument %q: %w", spec, part, ErrConstructFailed)
			}
			args = append(args, v)
		}
	}
	if len(args) != arity {
		return nil, fmt.Errorf("Shape(%q): want %d argument(s), got %d: %w", spec, arity, len(args), ErrConstructFailed)
	}

	switch name {
	case "path":
		return Path(args[0]), nil
	case "cycle":
		return Cycle(args[0]), nil
	case "star":
		return Star(args[0]), nil
	case "wheel":
		return Wheel(args[0]), nil
	case "complete":
		return Complete(args[0]), nil
	case "grid":
		return Grid(args[0], args[1]), nil
	case "envelope":
		return Envelope(), nil
	default:
		return Octahedron(), nil
	}
}

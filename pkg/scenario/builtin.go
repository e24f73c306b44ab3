package scenario

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var loadBuiltins = sync.OnceValues(func() (map[string]Scenario, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}

	out := make(map[string]Scenario, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, err
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", e.Name(), err)
		}
		if s.Name == "" {
			s.Name = strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		}
		out[s.Name] = s
	}
	return out, nil
})

// Builtin returns one of the bundled scenarios by name.
func Builtin(name string) (Scenario, error) {
	all, err := loadBuiltins()
	if err != nil {
		return Scenario{}, err
	}
	s, ok := all[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// BuiltinNames lists the bundled scenarios in sorted order.
func BuiltinNames() []string {
	all, err := loadBuiltins()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

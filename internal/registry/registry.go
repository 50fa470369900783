// Package registry provides a global registry of run modes.
// Modes register themselves in init() functions, allowing the CLI and the
// menu to list and launch them without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/letra/internal/catalog"
	"github.com/vovakirdan/letra/internal/core"
	"github.com/vovakirdan/letra/internal/run"
)

// Info contains metadata about a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
	// Timer reports whether runs of this mode can count down.
	Timer bool
	// PicksTheme reports whether the player chooses a theme.
	PicksTheme bool
}

// Settings are the launch parameters handed to a Factory.
type Settings struct {
	Theme     string
	Date      string
	Timed     bool
	Words     int // practice and relax only
	TimeLimit int // seconds, practice only
	Source    core.Source
	Options   []run.Option
}

// Factory plans and creates a run that has not been started yet.
type Factory func(c *catalog.Catalog, s Settings) *run.Run

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered modes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a mode.
func Lookup(id string) (Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Info{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.info, nil
}

// Create plans a new run of the given mode.
// Returns an error if the mode is not registered.
func Create(id string, c *catalog.Catalog, s Settings) (*run.Run, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(c, s), nil
}

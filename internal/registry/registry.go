// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the host to
// discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/florian-runner/internal/core"
)

// Game is the interface between a game and its host.
// Games contain pure logic with no Bubble Tea dependency; the host handles
// input mapping, frame timing and turning the surface into terminal output.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Mount starts a fresh session drawing on surface. Mounting again
	// replaces the previous session entirely.
	Mount(surface *core.Screen, cfg core.RuntimeConfig)

	// Step runs one frame: the frame's actions are applied at the frame
	// boundary, then the simulation advances to in.Now and the surface is
	// redrawn.
	Step(in core.InputFrame) core.StepResult

	// Unmount stops the session. Further steps are no-ops.
	Unmount()

	// State returns the current game state.
	State() core.GameState
}

// Options carries host settings into a game factory.
type Options struct {
	ConfigPath string      // Custom config file, "" for the default search order
	Difficulty string      // Difficulty preset name, "" for the config as loaded
	Logger     *log.Logger // Optional; games log nothing when nil
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: creating %q: %w", id, err)
	}
	return g, nil
}

// Title returns the display name of a registered game.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := titles[id]
	return t, ok
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

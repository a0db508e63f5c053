// Package registry provides a global registry of rule variants.
// Variants register themselves in init() functions, allowing the CLI and
// config layer to select rules by name without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/drmario/internal/games/drmario"
)

// DefaultVariant is used when no variant is named.
const DefaultVariant = "classic"

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
	Rules drmario.Rules
}

// Factory returns the rule set for a variant.
type Factory func() drmario.Rules

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered or the rules
// it produces are invalid.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	if err := f().Validate(); err != nil {
		panic(fmt.Sprintf("registry: variant %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id, f := range factories {
		result = append(result, VariantInfo{
			ID:    id,
			Title: titles[id],
			Rules: f(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the rules of a variant by its ID.
// An empty ID selects DefaultVariant.
func Create(id string) (drmario.Rules, error) {
	if id == "" {
		id = DefaultVariant
	}

	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return drmario.Rules{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

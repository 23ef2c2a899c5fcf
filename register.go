// File: appconf/register.go
package appconf

import (
	"fmt"
	"sort"
	"sync"
)

// engineRegistry maps (category, implementation name) to a constructor.
// Built-in implementations register themselves at init; applications extend
// the set through RegisterEngine.
var engineRegistry = struct {
	mutex sync.RWMutex
	ctors map[Category]map[string]EngineConstructor
}{
	ctors: make(map[Category]map[string]EngineConstructor),
}

// RegisterEngine makes an engine constructor available under the given
// category and implementation name. Registering the same pair twice
// replaces the earlier constructor.
func RegisterEngine(cat Category, name string, ctor EngineConstructor) error {
	if !cat.valid() {
		return fmt.Errorf("unknown engine category %q", cat)
	}
	if name == "" {
		return fmt.Errorf("engine name cannot be empty")
	}
	if ctor == nil {
		return fmt.Errorf("engine constructor cannot be nil")
	}

	engineRegistry.mutex.Lock()
	defer engineRegistry.mutex.Unlock()

	byName, ok := engineRegistry.ctors[cat]
	if !ok {
		byName = make(map[string]EngineConstructor)
		engineRegistry.ctors[cat] = byName
	}
	byName[name] = ctor

	return nil
}

// mustRegisterEngine is the init-time registration path for the built-in
// implementations.
func mustRegisterEngine(cat Category, name string, ctor EngineConstructor) {
	if err := RegisterEngine(cat, name, ctor); err != nil {
		panic(fmt.Sprintf("appconf: register %s engine %q: %v", cat, name, err))
	}
}

// RegisteredEngines returns the implementation names registered for a
// category, sorted.
func RegisteredEngines(cat Category) []string {
	engineRegistry.mutex.RLock()
	defer engineRegistry.mutex.RUnlock()

	names := make([]string, 0, len(engineRegistry.ctors[cat]))
	for name := range engineRegistry.ctors[cat] {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// newEngine constructs an engine instance through the registry.
func newEngine(cat Category, cfg EngineConfig) (Engine, error) {
	engineRegistry.mutex.RLock()
	ctor, ok := engineRegistry.ctors[cat][cfg.Name]
	engineRegistry.mutex.RUnlock()

	if !ok {
		return nil, &UnknownEngineError{Category: cat, Name: cfg.Name}
	}

	eng, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s engine %q: %w", cat, cfg.Name, err)
	}

	return eng, nil
}

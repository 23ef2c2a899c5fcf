// File: appconf/config.go
package appconf

import (
	"fmt"
	"sync"
)

// Config owns the live settings structure and the engines map for one
// application instance. Instances are produced by Builder.Build; the zero
// value is not usable.
type Config struct {
	location    string
	environment string
	appName     string
	hooks       Hooks
	runtime     *Runtime

	mutex        sync.RWMutex
	settings     map[string]any
	engines      map[Category]Engine
	enginesBuilt bool
}

// Location returns the configuration root directory, empty when the
// application runs without config files.
func (c *Config) Location() string {
	return c.location
}

// Environment returns the active runtime profile name.
func (c *Config) Environment() string {
	return c.environment
}

// AppName returns the owning application's name.
func (c *Config) AppName() string {
	return c.appName
}

// Runtime returns the process-behavior toggles compiled from settings.
func (c *Config) Runtime() *Runtime {
	return c.runtime
}

// Get returns the value stored under key and whether the key is present.
// Presence is independent of value truthiness: a key holding false is
// present.
func (c *Config) Get(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	value, ok := c.settings[key]
	return value, ok
}

// Setting returns the value stored under key, or nil when absent.
func (c *Config) Setting(key string) any {
	value, _ := c.Get(key)
	return value
}

// Has reports whether key is present in the live settings structure.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Settings returns a shallow copy of the live settings structure. Nested
// values are shared; treat the result as read-only and mutate through Set.
func (c *Config) Settings() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	settings := make(map[string]any, len(c.settings))
	for key, value := range c.settings {
		settings[key] = value
	}
	return settings
}

// Set writes one or more settings given as alternating key/value pairs, in
// argument order. Each value runs through normalization and compilation
// before it is stored, so engine keys may construct or replace engine
// instances as a side effect. It returns the number of pairs written; on
// error, pairs before the failing one remain written.
func (c *Config) Set(pairs ...any) (int, error) {
	if len(pairs)%2 != 0 {
		return 0, fmt.Errorf("Set requires key/value pairs, got %d arguments", len(pairs))
	}

	written := 0
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return written, fmt.Errorf("setting key must be a string, got %T", pairs[i])
		}

		if err := c.set(key, pairs[i+1]); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}

// set runs the write pipeline for a single key: normalize, compile, store.
func (c *Config) set(key string, value any) error {
	normalized, err := normalizeSetting(key, value)
	if err != nil {
		return err
	}

	compiled, err := c.compileSetting(key, normalized)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	c.settings[key] = compiled
	c.mutex.Unlock()

	return nil
}

// Engine returns the live instance for a category, building the default
// engine set first if none has been built yet. A nil engine with a nil
// error means the category is deliberately unconfigured, which is valid
// for template and serializer.
func (c *Config) Engine(cat Category) (Engine, error) {
	if !cat.valid() {
		return nil, fmt.Errorf("unknown engine category %q", cat)
	}

	if err := c.BuildEngines(); err != nil {
		return nil, err
	}

	eng, _ := c.engineFor(cat)
	return eng, nil
}

// Engines returns a copy of the engines map, building the default engine
// set first if none has been built yet.
func (c *Config) Engines() (map[Category]Engine, error) {
	if err := c.BuildEngines(); err != nil {
		return nil, err
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	engines := make(map[Category]Engine, len(c.engines))
	for cat, eng := range c.engines {
		engines[cat] = eng
	}
	return engines, nil
}

// BuildEngines constructs the default engine for every category that does
// not hold an instance yet, pulling implementation names from the live
// settings. It is idempotent: once the set has been built, further calls
// are no-ops. Individual engines may still be rebuilt later through Set.
func (c *Config) BuildEngines() error {
	c.mutex.RLock()
	built := c.enginesBuilt
	c.mutex.RUnlock()
	if built {
		return nil
	}

	for _, cat := range Categories() {
		if err := c.buildDefaultEngine(cat); err != nil {
			return err
		}
	}

	c.mutex.Lock()
	c.enginesBuilt = true
	c.mutex.Unlock()

	return nil
}

// buildDefaultEngine builds the engine for one category unless an instance
// already exists. Categories without a configured name fall back to their
// default implementation; template and serializer have none and stay absent.
func (c *Config) buildDefaultEngine(cat Category) error {
	if _, ok := c.engineFor(cat); ok {
		return nil
	}

	name, _ := c.Setting(string(cat)).(string)
	if name == "" {
		name = defaultEngineName(cat)
	}
	if name == "" {
		return nil
	}

	eng, err := c.buildEngine(cat, name)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	c.settings[string(cat)] = eng
	c.mutex.Unlock()

	return nil
}

// buildEngine constructs a named implementation through the factory and
// stores it as the category's single live instance, replacing any prior one.
func (c *Config) buildEngine(cat Category, name string) (Engine, error) {
	eng, err := newEngine(cat, EngineConfig{
		Name:        name,
		AppName:     c.appName,
		Environment: c.environment,
		Options:     c.engineOptions(cat, name),
		Hooks:       c.hooks,
	})
	if err != nil {
		return nil, err
	}

	c.storeEngine(cat, eng)
	return eng, nil
}

// engineOptions resolves the option structure for an engine instance:
// {environment, location} defaults, overlaid with the scalar entries of the
// category block in the engines config section, overlaid with the
// name-specific sub-block. Map-valued category entries are per-implementation
// blocks; only the block for the requested name applies, so one
// implementation's options never reach another's constructor.
func (c *Config) engineOptions(cat Category, name string) map[string]any {
	defaults := map[string]any{
		"environment": c.environment,
		"location":    c.location,
	}

	c.mutex.RLock()
	enginesCfg, ok := c.settings["engines"].(map[string]any)
	c.mutex.RUnlock()
	if !ok {
		return defaults
	}

	catCfg, ok := enginesCfg[string(cat)].(map[string]any)
	if !ok {
		return defaults
	}

	catDefaults := make(map[string]any, len(catCfg))
	for key, value := range catCfg {
		if _, isBlock := value.(map[string]any); isBlock {
			continue
		}
		catDefaults[key] = value
	}

	options := mergeLayers(defaults, catDefaults)
	if nameCfg, ok := catCfg[name].(map[string]any); ok {
		options = mergeLayers(options, nameCfg)
	}

	return options
}

func (c *Config) storeEngine(cat Category, eng Engine) {
	c.mutex.Lock()
	c.engines[cat] = eng
	c.mutex.Unlock()
}

func (c *Config) engineFor(cat Category) (Engine, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	eng, ok := c.engines[cat]
	return eng, ok
}

// templateEngine returns the live template engine, if one exists and
// supports the views/layout surface.
func (c *Config) templateEngine() (TemplateEngine, bool) {
	eng, ok := c.engineFor(CategoryTemplate)
	if !ok || eng == nil {
		return nil, false
	}

	tmpl, ok := eng.(TemplateEngine)
	return tmpl, ok
}

// File: appconf/builder.go
package appconf

import (
	"fmt"
	"sort"
)

// Builder collects the inputs of a Config instance and performs the
// construction in one explicit step. Build resolves config files, loads and
// merges them over the defaults, and runs every key through normalization
// and compilation, so the finished Config never exposes a raw value for a
// ruled key.
type Builder struct {
	location    string
	environment string
	appName     string
	defaults    map[string]any
	hooks       Hooks
	discovery   *DiscoveryOptions
}

// NewBuilder creates a configuration builder for the "development"
// environment. All inputs are optional; a builder with no location produces
// a config-file-less instance holding only the defaults.
func NewBuilder() *Builder {
	return &Builder{
		environment: "development",
	}
}

// WithLocation sets the configuration root directory.
func (b *Builder) WithLocation(location string) *Builder {
	b.location = location
	return b
}

// WithEnvironment sets the active runtime profile name.
func (b *Builder) WithEnvironment(environment string) *Builder {
	b.environment = environment
	return b
}

// WithAppName sets the owning application's name, passed through to engine
// constructors.
func (b *Builder) WithAppName(name string) *Builder {
	b.appName = name
	return b
}

// WithDefaults sets the base settings structure merged beneath every
// discovered config file.
func (b *Builder) WithDefaults(defaults map[string]any) *Builder {
	b.defaults = defaults
	return b
}

// WithHooks sets the postponed lifecycle hooks handed to every constructed
// engine.
func (b *Builder) WithHooks(hooks Hooks) *Builder {
	b.hooks = hooks
	return b
}

// WithDiscovery replaces the default file discovery options. Location and
// environment set on the builder are ignored in favor of the options.
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// Build constructs the Config: discover files, load each, merge over the
// defaults, then normalize and compile every key. Engine keys present in
// the merged configuration are compiled eagerly; categories left
// unconfigured build their defaults on first engine access.
func (b *Builder) Build() (*Config, error) {
	discovery := b.discoveryOptions()

	layers := []map[string]any{b.defaults}
	for _, path := range discovery.Resolve() {
		layer, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	merged := mergeLayers(layers...)

	c := &Config{
		location:    discovery.location(),
		environment: discovery.Environment,
		appName:     b.appName,
		hooks:       b.hooks,
		runtime:     &Runtime{},
		settings:    make(map[string]any, len(merged)),
		engines:     make(map[Category]Engine),
	}

	for key, value := range merged {
		normalized, err := normalizeSetting(key, value)
		if err != nil {
			return nil, err
		}
		c.settings[key] = normalized
	}

	for _, key := range compileOrder(c.settings) {
		compiled, err := c.compileSetting(key, c.settings[key])
		if err != nil {
			return nil, fmt.Errorf("failed to compile setting %q: %w", key, err)
		}
		c.settings[key] = compiled
	}

	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return c
}

func (b *Builder) discoveryOptions() DiscoveryOptions {
	if b.discovery != nil {
		return *b.discovery
	}
	return DefaultDiscoveryOptions(b.location, b.environment)
}

// compileOrder returns the keys of the merged structure in compile order:
// engine categories first, in canonical order, so settings that forward
// onto an engine (views, layout) find their engine already constructed;
// remaining keys follow sorted for reproducibility.
func compileOrder(settings map[string]any) []string {
	order := make([]string, 0, len(settings))
	isCategory := make(map[string]bool, 4)

	for _, cat := range Categories() {
		isCategory[string(cat)] = true
		if _, ok := settings[string(cat)]; ok {
			order = append(order, string(cat))
		}
	}

	rest := make([]string, 0, len(settings))
	for key := range settings {
		if !isCategory[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

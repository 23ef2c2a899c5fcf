// File: appconf/engine.go
package appconf

import (
	"log/slog"
)

// Category identifies one of the pluggable engine slots an application
// carries. Each category holds at most one live instance per Config.
type Category string

const (
	CategoryLogger     Category = "logger"
	CategorySession    Category = "session"
	CategoryTemplate   Category = "template"
	CategorySerializer Category = "serializer"
)

// Categories returns all engine categories in their canonical build order.
func Categories() []Category {
	return []Category{CategoryLogger, CategorySession, CategoryTemplate, CategorySerializer}
}

func (c Category) valid() bool {
	switch c {
	case CategoryLogger, CategorySession, CategoryTemplate, CategorySerializer:
		return true
	}
	return false
}

// HookFunc is a deferred lifecycle callback an application registers before
// its engines exist.
type HookFunc func(args ...any)

// Hooks collects postponed lifecycle hooks by hook name. The set is handed
// to every engine at construction time so hook registration order relative
// to engine construction does not matter.
type Hooks map[string][]HookFunc

// Engine is the minimal surface the config core needs from any constructed
// engine instance. Everything else is category-specific.
type Engine interface {
	// EngineName returns the implementation name the engine was
	// constructed under, e.g. "console".
	EngineName() string
}

// LoggerEngine is implemented by logger engines. The core hands out the
// underlying structured logger; callers attach their own context.
type LoggerEngine interface {
	Engine
	Logger() *slog.Logger
}

// SessionEngine is implemented by session storage engines.
type SessionEngine interface {
	Engine

	// Create starts a new session and returns its identifier.
	Create() (string, error)

	// Read returns the stored data for a session, or false if the
	// session does not exist.
	Read(id string) (map[string]any, bool)

	// Write stores a value under key for the given session.
	Write(id, key string, value any) error

	// Destroy removes a session and its data.
	Destroy(id string) error
}

// TemplateEngine is implemented by template renderers. The views and layout
// settings forward onto it through the compile triggers.
type TemplateEngine interface {
	Engine

	// SetViews points the renderer at the directory holding templates.
	SetViews(dir string)

	// SetLayout selects the wrapping layout template, empty for none.
	SetLayout(name string)

	// Render executes the named template with the given data.
	Render(name string, data any) (string, error)
}

// SerializerEngine is implemented by serializer engines.
type SerializerEngine interface {
	Engine

	Serialize(value any) ([]byte, error)
	Deserialize(data []byte, target any) error
	ContentType() string
}

// EngineConfig carries everything a constructor needs to build an engine
// instance.
type EngineConfig struct {
	// Name is the implementation name the instance is built under.
	Name string

	// AppName identifies the owning application instance, when known.
	AppName string

	// Environment is the active runtime profile, e.g. "development".
	Environment string

	// Options is the resolved option structure for this instance:
	// {environment, location} defaults merged with the category and
	// name-specific blocks of the engines config section.
	Options map[string]any

	// Hooks are the postponed lifecycle hooks pending at construction.
	Hooks Hooks
}

// EngineConstructor builds one engine instance from its configuration.
type EngineConstructor func(cfg EngineConfig) (Engine, error)

// defaultEngineName returns the implementation built for a category when the
// configuration names none. Template and serializer have no default: an
// application without them is a valid terminal state.
func defaultEngineName(cat Category) string {
	switch cat {
	case CategoryLogger:
		return "console"
	case CategorySession:
		return "simple"
	}
	return ""
}

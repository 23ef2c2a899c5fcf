// File: appconf/engine_test.go
package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureEngine records the EngineConfig it was constructed with so tests
// can inspect factory inputs.
type captureEngine struct {
	cfg EngineConfig
}

func (e *captureEngine) EngineName() string {
	return e.cfg.Name
}

func newCaptureEngine(cfg EngineConfig) (Engine, error) {
	return &captureEngine{cfg: cfg}, nil
}

// TestRegisterEngine tests registration validation.
func TestRegisterEngine(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		engine      string
		ctor        EngineConstructor
		expectError bool
	}{
		{"Valid", CategoryLogger, "capture", newCaptureEngine, false},
		{"UnknownCategory", Category("cache"), "capture", newCaptureEngine, true},
		{"EmptyName", CategoryLogger, "", newCaptureEngine, true},
		{"NilConstructor", CategoryLogger, "capture", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RegisterEngine(tt.category, tt.engine, tt.ctor)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestRegisteredEngines verifies the built-in implementations are present.
func TestRegisteredEngines(t *testing.T) {
	assert.Contains(t, RegisteredEngines(CategoryLogger), "console")
	assert.Contains(t, RegisteredEngines(CategoryLogger), "null")
	assert.Contains(t, RegisteredEngines(CategorySession), "simple")
	assert.Contains(t, RegisteredEngines(CategoryTemplate), "simple")
	assert.Contains(t, RegisteredEngines(CategorySerializer), "json")
	assert.Contains(t, RegisteredEngines(CategorySerializer), "yaml")
}

// TestNewEngineUnknown tests the factory failure for unregistered pairs.
func TestNewEngineUnknown(t *testing.T) {
	_, err := newEngine(CategoryLogger, EngineConfig{Name: "no-such-logger"})

	var uerr *UnknownEngineError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, CategoryLogger, uerr.Category)
	assert.Equal(t, "no-such-logger", uerr.Name)
	assert.Contains(t, uerr.Error(), "no-such-logger")
}

// TestEngineOptionsResolution tests the defaults/category/name merge order
// for engine option structures.
func TestEngineOptionsResolution(t *testing.T) {
	newConfig := func(engines any) *Config {
		c := &Config{
			location:    "/srv/app",
			environment: "test",
			runtime:     &Runtime{},
			settings:    map[string]any{},
			engines:     make(map[Category]Engine),
		}
		if engines != nil {
			c.settings["engines"] = engines
		}
		return c
	}

	t.Run("NoEnginesBlock", func(t *testing.T) {
		c := newConfig(nil)
		opts := c.engineOptions(CategoryLogger, "console")

		assert.Equal(t, map[string]any{
			"environment": "test",
			"location":    "/srv/app",
		}, opts)
	})

	t.Run("CategoryDefaultsAndNameOverrides", func(t *testing.T) {
		c := newConfig(map[string]any{
			"logger": map[string]any{
				"level": "warn",
				"console": map[string]any{
					"level": "debug",
				},
			},
		})
		opts := c.engineOptions(CategoryLogger, "console")

		assert.Equal(t, "debug", opts["level"])
		assert.Equal(t, "test", opts["environment"])
		assert.Equal(t, "/srv/app", opts["location"])
	})

	t.Run("CategoryDefaultsOnly", func(t *testing.T) {
		c := newConfig(map[string]any{
			"logger": map[string]any{"level": "warn"},
		})
		opts := c.engineOptions(CategoryLogger, "console")

		assert.Equal(t, "warn", opts["level"])
	})

	t.Run("SiblingBlocksStayIsolated", func(t *testing.T) {
		c := newConfig(map[string]any{
			"logger": map[string]any{
				"level":   "warn",
				"console": map[string]any{"level": "debug"},
				"file":    map[string]any{"path": "/var/log/app.log"},
			},
		})
		opts := c.engineOptions(CategoryLogger, "console")

		// Only the console block and the scalar category defaults apply;
		// the file implementation's block must not leak across.
		assert.Equal(t, "debug", opts["level"])
		assert.NotContains(t, opts, "file")
		assert.NotContains(t, opts, "console")
		assert.NotContains(t, opts, "path")
	})

	t.Run("NameOverridesCanShadowDefaults", func(t *testing.T) {
		c := newConfig(map[string]any{
			"logger": map[string]any{
				"console": map[string]any{"environment": "forced"},
			},
		})
		opts := c.engineOptions(CategoryLogger, "console")

		assert.Equal(t, "forced", opts["environment"])
	})
}

// TestBuildEngineStoresInstance verifies the factory path stores the result
// as the category's single live instance.
func TestBuildEngineStoresInstance(t *testing.T) {
	require.NoError(t, RegisterEngine(CategorySession, "capture", newCaptureEngine))

	c := &Config{
		location:    "/srv/app",
		environment: "test",
		appName:     "myapp",
		hooks:       Hooks{"before_request": {func(args ...any) {}}},
		runtime:     &Runtime{},
		settings:    map[string]any{},
		engines:     make(map[Category]Engine),
	}

	eng, err := c.buildEngine(CategorySession, "capture")
	require.NoError(t, err)

	stored, ok := c.engineFor(CategorySession)
	require.True(t, ok)
	assert.Same(t, eng, stored)

	capture := eng.(*captureEngine)
	assert.Equal(t, "capture", capture.cfg.Name)
	assert.Equal(t, "myapp", capture.cfg.AppName)
	assert.Equal(t, "test", capture.cfg.Environment)
	assert.Len(t, capture.cfg.Hooks["before_request"], 1)
	assert.Equal(t, map[string]any{
		"environment": "test",
		"location":    "/srv/app",
	}, capture.cfg.Options)
}

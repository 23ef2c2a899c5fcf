// File: appconf/compile.go
package appconf

// compileFunc turns a normalized setting value into its compiled form. A
// trigger may construct or replace an engine instance, or flip runtime
// toggles, before returning the value to store.
type compileFunc func(c *Config, value any) (any, error)

// triggers is the closed dispatch table of recognized setting keys. Keys
// outside the table pass through compilation unchanged.
var triggers = map[string]compileFunc{
	"logger":     compileEngineSetting(CategoryLogger),
	"session":    compileEngineSetting(CategorySession),
	"template":   compileEngineSetting(CategoryTemplate),
	"serializer": compileEngineSetting(CategorySerializer),

	"import_warnings": compileImportWarnings,
	"traces":          compileTraces,

	"views":  compileViews,
	"layout": compileLayout,
}

// compileSetting dispatches one key through the trigger table.
func (c *Config) compileSetting(key string, value any) (any, error) {
	trigger, ok := triggers[key]
	if !ok {
		return value, nil
	}
	return trigger(c, value)
}

// compileEngineSetting returns the trigger for one engine category. A value
// that is already an Engine instance is stored as-is and never
// reconstructed; a string is a descriptor naming the implementation to
// build. A nil value means no engine, which is a valid terminal state.
func compileEngineSetting(cat Category) compileFunc {
	return func(c *Config, value any) (any, error) {
		switch v := value.(type) {
		case nil:
			return nil, nil
		case Engine:
			c.storeEngine(cat, v)
			return v, nil
		case string:
			eng, err := c.buildEngine(cat, v)
			if err != nil {
				return nil, err
			}
			return eng, nil
		default:
			return nil, &ValueError{
				Key:    string(cat),
				Value:  value,
				Reason: "must be an implementation name or an engine instance",
			}
		}
	}
}

func compileImportWarnings(c *Config, value any) (any, error) {
	on, err := toBool(value)
	if err != nil {
		return nil, &ValueError{Key: "import_warnings", Value: value, Reason: err.Error()}
	}
	c.runtime.setWarnings(on)
	return on, nil
}

func compileTraces(c *Config, value any) (any, error) {
	on, err := toBool(value)
	if err != nil {
		return nil, &ValueError{Key: "traces", Value: value, Reason: err.Error()}
	}
	c.runtime.setTraces(on)
	return on, nil
}

func compileViews(c *Config, value any) (any, error) {
	dir, ok := value.(string)
	if !ok {
		return nil, &ValueError{Key: "views", Value: value, Reason: "views must be a directory path"}
	}

	tmpl, ok := c.templateEngine()
	if !ok {
		return nil, ErrNoTemplateEngine
	}
	tmpl.SetViews(dir)

	return dir, nil
}

func compileLayout(c *Config, value any) (any, error) {
	name, ok := value.(string)
	if !ok {
		return nil, &ValueError{Key: "layout", Value: value, Reason: "layout must be a template name"}
	}

	tmpl, ok := c.templateEngine()
	if !ok {
		return nil, ErrNoTemplateEngine
	}
	tmpl.SetLayout(name)

	return name, nil
}

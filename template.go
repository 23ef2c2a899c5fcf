// File: appconf/template.go
package appconf

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

func init() {
	mustRegisterEngine(CategoryTemplate, "simple", newSimpleTemplate)
}

// templateOptions are the options the built-in template engine understands.
// Views and layout usually arrive later through the views/layout settings.
type templateOptions struct {
	Views  string `config:"views"`
	Layout string `config:"layout"`
}

// simpleTemplate renders text/template files from a views directory,
// optionally wrapped in a layout template that receives the rendered page
// as its "content" value.
type simpleTemplate struct {
	name string

	mutex  sync.RWMutex
	views  string
	layout string
}

func newSimpleTemplate(cfg EngineConfig) (Engine, error) {
	var opts templateOptions
	if err := DecodeOptions(cfg.Options, &opts); err != nil {
		return nil, err
	}

	return &simpleTemplate{
		name:   cfg.Name,
		views:  opts.Views,
		layout: opts.Layout,
	}, nil
}

func (t *simpleTemplate) EngineName() string {
	return t.name
}

func (t *simpleTemplate) SetViews(dir string) {
	t.mutex.Lock()
	t.views = dir
	t.mutex.Unlock()
}

func (t *simpleTemplate) SetLayout(name string) {
	t.mutex.Lock()
	t.layout = name
	t.mutex.Unlock()
}

func (t *simpleTemplate) Render(name string, data any) (string, error) {
	t.mutex.RLock()
	views := t.views
	layout := t.layout
	t.mutex.RUnlock()

	if views == "" {
		return "", fmt.Errorf("no views directory configured")
	}

	content, err := renderFile(filepath.Join(views, name), data)
	if err != nil {
		return "", err
	}

	if layout == "" {
		return content, nil
	}

	return renderFile(filepath.Join(views, layout), map[string]any{
		"content": content,
		"data":    data,
	})
}

func renderFile(path string, data any) (string, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}

	return b.String(), nil
}

// File: appconf/errors.go
package appconf

import (
	"errors"
	"fmt"
)

// ErrNoTemplateEngine is returned when a setting that targets the template
// engine (views, layout) is written before any template engine exists.
var ErrNoTemplateEngine = errors.New("no template engine configured")

// errEmptyConfig marks a config file that parsed to nothing.
var errEmptyConfig = errors.New("config file is empty")

// ParseError reports a discovered configuration file that exists but could
// not be parsed, or parsed to an empty result. It is fatal: a broken config
// file must stop application construction rather than degrade silently.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValueError reports a setting value that is structurally invalid for its
// key, e.g. an unrecognized charset name.
type ValueError struct {
	Key    string
	Value  any
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %v for setting %q: %s", e.Value, e.Key, e.Reason)
}

// UnknownEngineError reports a requested engine implementation that has no
// registered constructor for its category.
type UnknownEngineError struct {
	Category Category
	Name     string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("no %s engine registered under name %q", e.Category, e.Name)
}

// File: appconf/loader.go
package appconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// parsers maps file extensions to unmarshal functions. Each parser returns
// the decoded document as a nested map.
var parsers = map[string]func(data []byte) (map[string]any, error){
	"json": parseJSON,
	"toml": parseTOML,
	"yaml": parseYAML,
	"yml":  parseYAML,
}

// SupportedExtensions returns the config file extensions the loader
// understands, sorted for deterministic candidate ordering.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// LoadFile reads and parses a single configuration file, inferring the
// format from the file extension. A file that exists but cannot be parsed,
// or parses to nothing, yields a *ParseError; this is the one hard failure
// point in config loading.
func LoadFile(path string) (map[string]any, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	parser, ok := parsers[ext]
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unsupported config extension %q", ext)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	parsed, err := parser(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if len(parsed) == 0 {
		return nil, &ParseError{Path: path, Err: errEmptyConfig}
	}

	return parsed, nil
}

func parseJSON(data []byte) (map[string]any, error) {
	parsed := make(map[string]any)
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func parseTOML(data []byte) (map[string]any, error) {
	parsed := make(map[string]any)
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func parseYAML(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	parsed, ok := stringifyKeys(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level document must be a mapping, got %T", doc)
	}
	return parsed, nil
}

// stringifyKeys rewrites any map[any]any nodes produced by the YAML decoder
// into map[string]any so all layers merge under one map shape.
func stringifyKeys(value any) any {
	switch node := value.(type) {
	case map[string]any:
		for k, v := range node {
			node[k] = stringifyKeys(v)
		}
		return node
	case map[any]any:
		converted := make(map[string]any, len(node))
		for k, v := range node {
			converted[fmt.Sprintf("%v", k)] = stringifyKeys(v)
		}
		return converted
	case []any:
		for i, v := range node {
			node[i] = stringifyKeys(v)
		}
		return node
	default:
		return value
	}
}

// File: appconf/normalize.go
package appconf

import (
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// normalizeFunc canonicalizes a raw setting value. Rules are pure and
// idempotent: applying one twice yields the same result as applying it once.
type normalizeFunc func(value any) (any, error)

// normalizers holds the per-key normalization rules. Keys without a rule
// pass through unchanged.
var normalizers = map[string]normalizeFunc{
	"charset": normalizeCharset,
	"engines": normalizeEngines,
}

// normalizeSetting applies the normalization rule registered for key, if any.
func normalizeSetting(key string, value any) (any, error) {
	rule, ok := normalizers[key]
	if !ok {
		return value, nil
	}

	normalized, err := rule(value)
	if err != nil {
		if verr, ok := err.(*ValueError); ok && verr.Key == "" {
			verr.Key = key
		}
		return nil, err
	}
	return normalized, nil
}

// normalizeCharset maps an encoding alias to its canonical name. The strict
// variant "utf-8-strict" is treated as plain "utf-8".
func normalizeCharset(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	name, ok := value.(string)
	if !ok {
		return nil, &ValueError{Value: value, Reason: "charset must be a string"}
	}
	if name == "" {
		return "", nil
	}
	if strings.EqualFold(name, "utf-8-strict") {
		name = "utf-8"
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &ValueError{Value: value, Reason: "unrecognized charset name"}
	}

	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return nil, &ValueError{Value: value, Reason: "charset has no canonical name"}
	}

	return canonical, nil
}

// normalizeEngines requires the engines key to hold a mapping of category
// blocks. Rejecting other shapes here surfaces a malformed block at Set or
// Build time instead of silently resolving engines to bare defaults.
func normalizeEngines(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	block, ok := stringifyKeys(value).(map[string]any)
	if !ok {
		return nil, &ValueError{Value: value, Reason: "engines must be a mapping of category blocks"}
	}
	for cat, catValue := range block {
		if catValue == nil {
			continue
		}
		if _, ok := catValue.(map[string]any); !ok {
			return nil, &ValueError{Value: catValue, Reason: "engines." + cat + " must be a mapping"}
		}
	}
	return block, nil
}

// FILE: appconf/decode.go
package appconf

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decoderTagName is the struct tag engine option structs use for mapping.
const decoderTagName = "config"

// DecodeOptions decodes a resolved option structure into a typed struct.
// Engine constructors use it to turn EngineConfig.Options into their own
// option types. Conversions are weakly typed: "8080" populates an int
// field, "true" a bool, comma-separated strings a slice, and duration
// strings a time.Duration.
func DecodeOptions(options map[string]any, target any) error {
	return decodeMap(options, target, "engine options")
}

// Scan decodes the settings subtree under a dot-separated path into the
// target struct or map. An empty path scans the full settings structure.
func (c *Config) Scan(path string, target any) error {
	settings := c.Settings()

	section := navigateToPath(settings, path)
	if section == nil {
		section = make(map[string]any)
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("setting path %q refers to non-map value (type %T)", path, section)
	}

	return decodeMap(sectionMap, target, fmt.Sprintf("settings under %q", path))
}

func decodeMap(source map[string]any, target any, what string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          decoderTagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(source); err != nil {
		return fmt.Errorf("failed to decode %s: %w", what, err)
	}

	return nil
}

// File: appconf/convenience.go
package appconf

import (
	"fmt"
	"strconv"
)

// String retrieves a string setting, converting scalar values when the
// stored value isn't already a string.
func (c *Config) String(key string) (string, error) {
	value, ok := c.Get(key)
	if !ok {
		return "", fmt.Errorf("setting not present: %s", key)
	}
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string for setting %s", value, key)
}

// Bool retrieves a boolean setting, accepting numeric and parsable string
// forms.
func (c *Config) Bool(key string) (bool, error) {
	value, ok := c.Get(key)
	if !ok {
		return false, fmt.Errorf("setting not present: %s", key)
	}

	b, err := toBool(value)
	if err != nil {
		return false, fmt.Errorf("%v for setting %s", err, key)
	}
	return b, nil
}

// Int64 retrieves an integer setting, converting numeric and parsable
// string forms.
func (c *Config) Int64(key string) (int64, error) {
	value, ok := c.Get(key)
	if !ok {
		return 0, fmt.Errorf("setting not present: %s", key)
	}

	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int64 for setting %s: %w", v, key, err)
		}
		return i, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for setting %s", value, key)
}

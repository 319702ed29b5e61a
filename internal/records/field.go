package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrCorrupt reports a stored value that does not decode into its field's shape.
var ErrCorrupt = errors.New("corrupt record")

// Field is the schema of a single key.
type Field[T any] struct {
	Key     string
	Default T
	Encode  func(T) ([]byte, error)
	Decode  func([]byte) (T, error)
}

// Bool stores the literal strings "true" and "false". Anything else decodes
// as corrupt.
func Bool(key string, def bool) Field[bool] {
	return Field[bool]{
		Key:     key,
		Default: def,
		Encode: func(v bool) ([]byte, error) {
			return []byte(strconv.FormatBool(v)), nil
		},
		Decode: func(b []byte) (bool, error) {
			switch string(b) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, fmt.Errorf("%w: %q is not a boolean", ErrCorrupt, b)
		},
	}
}

// Int stores a decimal integer string. normalize, when set, maps every decoded
// and every encoded value into the field's domain.
func Int(key string, def int, normalize func(int) int) Field[int] {
	if normalize == nil {
		normalize = func(v int) int { return v }
	}
	return Field[int]{
		Key:     key,
		Default: def,
		Encode: func(v int) ([]byte, error) {
			return []byte(strconv.Itoa(normalize(v))), nil
		},
		Decode: func(b []byte) (int, error) {
			v, err := strconv.Atoi(string(b))
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			return normalize(v), nil
		},
	}
}

// Text stores a string that must pass parse to be accepted.
func Text[T any](key string, def T, format func(T) string, parse func(string) (T, error)) Field[T] {
	return Field[T]{
		Key:     key,
		Default: def,
		Encode: func(v T) ([]byte, error) {
			return []byte(format(v)), nil
		},
		Decode: func(b []byte) (T, error) {
			v, err := parse(string(b))
			if err != nil {
				var zero T
				return zero, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			return v, nil
		},
	}
}

// JSON stores v as a JSON document.
func JSON[T any](key string, def T) Field[T] {
	return Field[T]{
		Key:     key,
		Default: def,
		Encode: func(v T) ([]byte, error) {
			return json.Marshal(v)
		},
		Decode: func(b []byte) (T, error) {
			var v T
			if err := json.Unmarshal(b, &v); err != nil {
				var zero T
				return zero, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			return v, nil
		},
	}
}

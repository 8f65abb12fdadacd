package gptypes

import (
	"fmt"
	"strconv"
)

// Scalar parameter types wrap exactly one primitive. Encoding applies the
// type's conversion to the stored value; decoding applies the same
// conversion to the input and returns the raw primitive, not a wrapped
// value. Callers rely on receiving plain primitives for simple types.

// GPBoolean is a geoprocessing boolean parameter.
type GPBoolean struct {
	Value bool
}

func (b GPBoolean) JSONStruct() (interface{}, error) { return b.Value, nil }
func (b GPBoolean) String() string                   { return jsonString(b) }

// BooleanFromJSON decodes a boolean parameter to a bare bool.
func BooleanFromJSON(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("gptypes: cannot convert %q to boolean", v)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("gptypes: cannot convert %T to boolean", value)
	}
}

// GPDouble is a geoprocessing double parameter.
type GPDouble struct {
	Value float64
}

func (d GPDouble) JSONStruct() (interface{}, error) { return d.Value, nil }
func (d GPDouble) String() string                   { return jsonString(d) }

// DoubleFromJSON decodes a double parameter to a bare float64.
func DoubleFromJSON(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("gptypes: cannot convert %q to double", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("gptypes: cannot convert %T to double", value)
	}
}

// GPLong is a geoprocessing long (integer) parameter.
type GPLong struct {
	Value int64
}

func (l GPLong) JSONStruct() (interface{}, error) { return l.Value, nil }
func (l GPLong) String() string                   { return jsonString(l) }

// LongFromJSON decodes a long parameter to a bare int64. JSON numbers
// arrive as float64 and are truncated toward zero.
func LongFromJSON(value interface{}) (int64, error) {
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("gptypes: cannot convert %q to long", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("gptypes: cannot convert %T to long", value)
	}
}

// GPString is a geoprocessing string parameter.
type GPString struct {
	Value string
}

func (s GPString) JSONStruct() (interface{}, error) { return s.Value, nil }
func (s GPString) String() string                   { return jsonString(s) }

// StringFromJSON decodes a string parameter to a bare string. Non-string
// primitives are stringified, matching the permissive source behavior.
func StringFromJSON(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("gptypes: cannot convert %T to string", value)
	}
}

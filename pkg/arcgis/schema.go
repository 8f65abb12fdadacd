// Package arcgis provides the geoprocessing service schema plumbing:
// task metadata types and generic parameter encoding/decoding driven by
// the gptypes registry.
package arcgis

import (
	"encoding/json"
	"fmt"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/gptypes"
)

// DecodeParameter parses a raw JSON parameter value according to its
// declared data type. Scalar types yield bare primitives; structured
// types yield their gptypes value. An unknown data type surfaces the
// registry's lookup error.
func DecodeParameter(dataType string, raw json.RawMessage) (interface{}, error) {
	t, err := gptypes.Lookup(dataType)
	if err != nil {
		return nil, err
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to parse %s value: %v", dataType, err)
	}
	return t.FromJSON(value)
}

// DecodeParameterValue decodes one parameter document entry.
func DecodeParameterValue(pv ParameterValue) (interface{}, error) {
	decoded, err := DecodeParameter(pv.DataType, pv.Value)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", pv.ParamName, err)
	}
	return decoded, nil
}

// EncodeParameter renders a parameter value back into its wire JSON.
func EncodeParameter(v gptypes.Value) (json.RawMessage, error) {
	s, err := v.JSONStruct()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parameter value: %v", err)
	}
	return data, nil
}

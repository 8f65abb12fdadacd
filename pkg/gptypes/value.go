// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

// Package gptypes converts between the JSON wire representation of
// geoprocessing task parameters on an ArcGIS REST server and typed
// in-process values. Each parameter type knows its exact wire shape;
// decoding a scalar type deliberately yields the bare primitive rather
// than a wrapped value.
package gptypes

import (
	"encoding/json"
)

// Value is the contract every geoprocessing parameter value satisfies.
type Value interface {
	// JSONStruct returns the exact wire-format value for this instance:
	// a primitive, an object, or an array.
	JSONStruct() (interface{}, error)
	// String returns the compact JSON encoding of JSONStruct, or the
	// empty string when encoding fails.
	String() string
}

// jsonString renders a value's wire form as compact JSON. Shared by the
// String implementations of every concrete type.
func jsonString(v Value) string {
	s, err := v.JSONStruct()
	if err != nil {
		return ""
	}
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
}

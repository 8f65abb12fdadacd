package gptypes

import (
	"fmt"
)

// DefaultUnit is used when a linear unit is constructed without one.
const DefaultUnit = "esriMeters"

// AllowedUnits is the fixed set of unit names a GPLinearUnit accepts.
var AllowedUnits = map[string]struct{}{
	"esriCentimeters":    {},
	"esriDecimalDegrees": {},
	"esriDecimeters":     {},
	"esriFeet":           {},
	"esriInches":         {},
	"esriKilometers":     {},
	"esriMeters":         {},
	"esriMiles":          {},
	"esriMillimeters":    {},
	"esriNauticalMiles":  {},
	"esriPoints":         {},
	"esriUnknownUnits":   {},
	"esriYards":          {},
}

// GPLinearUnit is a geoprocessing linear unit parameter: a distance and
// a unit name from the allowed set.
type GPLinearUnit struct {
	Distance float64
	Units    string
}

// NewLinearUnit builds a linear unit. An empty unit defaults to
// esriMeters; any other unit must be a member of AllowedUnits.
func NewLinearUnit(value float64, unit string) (GPLinearUnit, error) {
	if unit == "" {
		unit = DefaultUnit
	} else if _, ok := AllowedUnits[unit]; !ok {
		return GPLinearUnit{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return GPLinearUnit{Distance: value, Units: unit}, nil
}

// LinearUnitFromPair builds a linear unit from a two-element
// [value, unit] sequence, as callers sometimes pass instead of separate
// arguments.
func LinearUnitFromPair(pair []interface{}) (GPLinearUnit, error) {
	if len(pair) != 2 {
		return GPLinearUnit{}, fmt.Errorf("gptypes: linear unit pair must have exactly two elements, got %d", len(pair))
	}
	value, err := DoubleFromJSON(pair[0])
	if err != nil {
		return GPLinearUnit{}, err
	}
	unit, ok := pair[1].(string)
	if !ok {
		return GPLinearUnit{}, fmt.Errorf("gptypes: linear unit name is not a string")
	}
	return NewLinearUnit(value, unit)
}

// JSONStruct returns {"distance": number, "units": string}.
func (u GPLinearUnit) JSONStruct() (interface{}, error) {
	return map[string]interface{}{
		"distance": u.Distance,
		"units":    u.Units,
	}, nil
}

func (u GPLinearUnit) String() string { return jsonString(u) }

// LinearUnitFromJSON decodes the {"distance", "units"} wire object and
// reconstructs the value through the constructor.
func LinearUnitFromJSON(value interface{}) (GPLinearUnit, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return GPLinearUnit{}, fmt.Errorf("gptypes: linear unit value must be an object, got %T", value)
	}
	distance, err := DoubleFromJSON(obj["distance"])
	if err != nil {
		return GPLinearUnit{}, fmt.Errorf("gptypes: invalid linear unit distance: %v", err)
	}
	units, ok := obj["units"].(string)
	if !ok {
		return GPLinearUnit{}, fmt.Errorf("gptypes: linear unit object missing units")
	}
	return NewLinearUnit(distance, units)
}

package gptypes

import (
	"errors"
)

// Failure taxonomy for parameter conversion. All conversion failures wrap
// one of these sentinels so callers can classify them with errors.Is.
var (
	// ErrInvalidUnit indicates a linear-unit name outside the allowed set.
	ErrInvalidUnit = errors.New("gptypes: unit not in allowed set")
	// ErrMissingSpatialReference indicates a feature record set whose
	// spatial reference could not be determined.
	ErrMissingSpatialReference = errors.New("gptypes: could not determine spatial reference")
	// ErrInconsistentGeometry indicates a feature record set mixing
	// geometry types at encode time.
	ErrInconsistentGeometry = errors.New("gptypes: features must share one geometry type")
	// ErrUnparseableDate indicates a date string matching neither the
	// supplied nor the fallback format.
	ErrUnparseableDate = errors.New("gptypes: unparseable date")
	// ErrUnresolvableType indicates a registry lookup miss.
	ErrUnresolvableType = errors.New("gptypes: unresolvable geoprocessing type name")
)

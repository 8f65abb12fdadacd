package gptypes

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ReservedSeparator marks compound/union type names that must not be
// independently resolvable and are therefore never registered.
const ReservedSeparator = "|"

// Type describes one registered geoprocessing parameter type: its wire
// name and its decode operation. Decode takes an already-decoded JSON
// value of the expected shape. For scalar types the result is a bare
// primitive; for structured types it is the corresponding value type.
type Type struct {
	Name     string
	FromJSON func(value interface{}) (interface{}, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Type)
)

// Register adds a type definition under its own name. Names containing
// the reserved separator are skipped. Registration is idempotent; the
// last definition for a name wins.
func Register(t Type) {
	if t.Name == "" || strings.Contains(t.Name, ReservedSeparator) {
		return
	}
	registryMu.Lock()
	registry[t.Name] = t
	registryMu.Unlock()
}

// Lookup returns the type registered under name. A miss means the
// service schema names a type this package does not support; callers
// must treat that as a schema error.
func Lookup(name string) (Type, error) {
	registryMu.RLock()
	t, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnresolvableType, name)
	}
	return t, nil
}

// Types returns the sorted names of all registered types.
func Types() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	sort.Strings(names)
	return names
}

func init() {
	Register(Type{Name: "GPBoolean", FromJSON: func(v interface{}) (interface{}, error) { return BooleanFromJSON(v) }})
	Register(Type{Name: "GPDouble", FromJSON: func(v interface{}) (interface{}, error) { return DoubleFromJSON(v) }})
	Register(Type{Name: "GPLong", FromJSON: func(v interface{}) (interface{}, error) { return LongFromJSON(v) }})
	Register(Type{Name: "GPString", FromJSON: func(v interface{}) (interface{}, error) { return StringFromJSON(v) }})
	Register(Type{Name: "GPLinearUnit", FromJSON: func(v interface{}) (interface{}, error) { return LinearUnitFromJSON(v) }})
	Register(Type{Name: "GPDate", FromJSON: func(v interface{}) (interface{}, error) { return DateFromJSON(v) }})
	Register(Type{Name: "GPDataFile", FromJSON: func(v interface{}) (interface{}, error) { return DataFileFromJSON(v) }})
	Register(Type{Name: "GPRasterData", FromJSON: func(v interface{}) (interface{}, error) { return RasterDataFromJSON(v) }})
	Register(Type{Name: "GPRasterLayer", FromJSON: func(v interface{}) (interface{}, error) { return RasterLayerFromJSON(v) }})
	Register(Type{Name: "GPFeatureRecordSetLayer", FromJSON: func(v interface{}) (interface{}, error) { return FeatureRecordSetLayerFromJSON(v) }})
	Register(Type{Name: "GPRecordSet", FromJSON: func(v interface{}) (interface{}, error) { return RecordSetFromJSON(v) }})
}

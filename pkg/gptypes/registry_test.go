package gptypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	for _, name := range []string{
		"GPBoolean", "GPDouble", "GPLong", "GPString",
		"GPLinearUnit", "GPDate", "GPDataFile",
		"GPRasterData", "GPRasterLayer",
		"GPFeatureRecordSetLayer", "GPRecordSet",
	} {
		got, err := Lookup(name)
		require.NoError(t, err, "expected %s to be registered", name)
		assert.Equal(t, name, got.Name)
		assert.NotNil(t, got.FromJSON)
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	_, err := Lookup("GPMultiValue")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolvableType))
	assert.Contains(t, err.Error(), "GPMultiValue")
}

func TestRegistryRegisterCustomType(t *testing.T) {
	Register(Type{Name: "Widget", FromJSON: func(v interface{}) (interface{}, error) { return v, nil }})

	got, err := Lookup("Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestRegistryRefusesReservedSeparator(t *testing.T) {
	Register(Type{Name: "GPLong|GPDouble", FromJSON: func(v interface{}) (interface{}, error) { return v, nil }})

	_, err := Lookup("GPLong|GPDouble")
	assert.True(t, errors.Is(err, ErrUnresolvableType))
}

func TestRegistryTypesSorted(t *testing.T) {
	names := Types()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
	assert.Contains(t, names, "GPFeatureRecordSetLayer")
}

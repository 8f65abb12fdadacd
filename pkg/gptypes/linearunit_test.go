package gptypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinearUnit(t *testing.T) {
	u, err := NewLinearUnit(5, "esriMeters")
	require.NoError(t, err)
	assert.Equal(t, 5.0, u.Distance)
	assert.Equal(t, "esriMeters", u.Units)
}

func TestNewLinearUnitDefaultsToMeters(t *testing.T) {
	u, err := NewLinearUnit(2.5, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultUnit, u.Units)
}

func TestNewLinearUnitRejectsUnknownUnit(t *testing.T) {
	_, err := NewLinearUnit(5, "esriFurlongs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))
	assert.Contains(t, err.Error(), "esriFurlongs")
}

func TestLinearUnitFromPair(t *testing.T) {
	u, err := LinearUnitFromPair([]interface{}{float64(3), "esriKilometers"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, u.Distance)
	assert.Equal(t, "esriKilometers", u.Units)

	_, err = LinearUnitFromPair([]interface{}{float64(3)})
	assert.Error(t, err)
}

func TestLinearUnitWireShape(t *testing.T) {
	u, err := NewLinearUnit(5, "esriMiles")
	require.NoError(t, err)

	s, err := u.JSONStruct()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"distance": 5.0,
		"units":    "esriMiles",
	}, s)
	assert.JSONEq(t, `{"distance":5,"units":"esriMiles"}`, u.String())
}

func TestLinearUnitFromJSON(t *testing.T) {
	u, err := LinearUnitFromJSON(map[string]interface{}{
		"distance": 12.5,
		"units":    "esriFeet",
	})
	require.NoError(t, err)
	assert.Equal(t, GPLinearUnit{Distance: 12.5, Units: "esriFeet"}, u)

	_, err = LinearUnitFromJSON(map[string]interface{}{
		"distance": 12.5,
		"units":    "feet",
	})
	assert.True(t, errors.Is(err, ErrInvalidUnit))

	_, err = LinearUnitFromJSON("5 meters")
	assert.Error(t, err)
}

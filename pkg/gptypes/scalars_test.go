package gptypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarEncode(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"boolean true", GPBoolean{Value: true}, "true"},
		{"boolean false", GPBoolean{Value: false}, "false"},
		{"double", GPDouble{Value: 2.5}, "2.5"},
		{"long", GPLong{Value: 42}, "42"},
		{"string", GPString{Value: "buffer"}, `"buffer"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestScalarDecodeReturnsBarePrimitive(t *testing.T) {
	// Decoding a scalar yields the raw primitive, never a wrapped value.
	b, err := BooleanFromJSON(true)
	require.NoError(t, err)
	assert.Equal(t, true, b)

	d, err := DoubleFromJSON(2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	l, err := LongFromJSON(float64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), l)

	s, err := StringFromJSON("riverside")
	require.NoError(t, err)
	assert.Equal(t, "riverside", s)
}

func TestScalarDecodeThroughRegistry(t *testing.T) {
	typ, err := Lookup("GPBoolean")
	require.NoError(t, err)

	decoded, err := typ.FromJSON(true)
	require.NoError(t, err)
	assert.IsType(t, true, decoded)
	assert.Equal(t, true, decoded)
}

func TestLongDecodeTruncatesTowardZero(t *testing.T) {
	l, err := LongFromJSON(3.9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), l)

	l, err = LongFromJSON(-3.9)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), l)
}

func TestScalarDecodeCoercions(t *testing.T) {
	b, err := BooleanFromJSON("true")
	require.NoError(t, err)
	assert.True(t, b)

	d, err := DoubleFromJSON("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	s, err := StringFromJSON(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.5", s)

	_, err = BooleanFromJSON([]interface{}{true})
	assert.Error(t, err)
}

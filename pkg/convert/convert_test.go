// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

package convert

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/geometry"
	"github.com/Sudo-Ivan/arcgis-gp/pkg/gptypes"
)

func sampleFeatureSet(t *testing.T) *gptypes.GPFeatureRecordSetLayer {
	t.Helper()
	fs, err := gptypes.NewFeatureRecordSetLayer([]geometry.Geometry{
		&geometry.Point{X: -122.45, Y: 37.75, Attrs: map[string]interface{}{"name": "alpha", "rank": 1}},
		&geometry.Point{X: -122.40, Y: 37.78, Attrs: map[string]interface{}{"name": "bravo"}},
	}, 4326)
	require.NoError(t, err)
	return fs
}

func TestToGeoJSON(t *testing.T) {
	fc, err := ToGeoJSON(sampleFeatureSet(t))
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	assert.Equal(t, orb.Point{-122.45, 37.75}, fc.Features[0].Geometry)
	assert.Equal(t, "alpha", fc.Features[0].Properties["name"])
	assert.Equal(t, 1, fc.Features[0].Properties["rank"])
	assert.Equal(t, "bravo", fc.Features[1].Properties["name"])
}

func TestMarshalGeoJSON(t *testing.T) {
	fc, err := ToGeoJSON(sampleFeatureSet(t))
	require.NoError(t, err)

	out, err := MarshalGeoJSON(fc)
	require.NoError(t, err)
	assert.Contains(t, out, `"FeatureCollection"`)
	assert.Contains(t, out, `"alpha"`)
}

func TestFeaturesToCSV(t *testing.T) {
	out, err := FeaturesToCSV(sampleFeatureSet(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,rank,"+KeyWKTGeometry, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "alpha,1,POINT"))
	// Missing attributes render as empty cells.
	assert.True(t, strings.HasPrefix(lines[2], "bravo,,POINT"))
}

func TestFeaturesToCSVEmpty(t *testing.T) {
	fs, err := gptypes.NewFeatureRecordSetLayer(nil, 4326)
	require.NoError(t, err)

	out, err := FeaturesToCSV(fs)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFeaturesToText(t *testing.T) {
	out, err := FeaturesToText(sampleFeatureSet(t), "Stops")
	require.NoError(t, err)

	assert.Contains(t, out, "Layer: Stops")
	assert.Contains(t, out, "Total Features: 2")
	assert.Contains(t, out, "--- Feature 1 ---")
	assert.Contains(t, out, "  name: alpha")
	assert.Contains(t, out, "Geometry (WKT):")
	assert.Contains(t, out, "POINT(-122.45 37.75)")
}

func TestFeaturesToTextEmpty(t *testing.T) {
	fs, err := gptypes.NewFeatureRecordSetLayer(nil, 4326)
	require.NoError(t, err)

	_, err = FeaturesToText(fs, "Stops")
	assert.Error(t, err)
}

func TestGeometryToWKT(t *testing.T) {
	assert.Equal(t, "POINT(-122.45 37.75)", GeometryToWKT(&geometry.Point{X: -122.45, Y: 37.75}))

	line := &geometry.Polyline{Paths: [][][]float64{{{0, 0}, {10, 10}}}}
	assert.Equal(t, "LINESTRING(0 0,10 10)", GeometryToWKT(line))
}

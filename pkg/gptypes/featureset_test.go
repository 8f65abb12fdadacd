package gptypes

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/geometry"
)

func samplePoints() []geometry.Geometry {
	return []geometry.Geometry{
		&geometry.Point{X: -122.45, Y: 37.75, Attrs: map[string]interface{}{"name": "alpha", "rank": float64(1)}},
		&geometry.Point{X: -122.40, Y: 37.78, Attrs: map[string]interface{}{"name": "bravo", "score": float64(9)}},
	}
}

func TestNewFeatureRecordSetLayerExplicitSR(t *testing.T) {
	fs, err := NewFeatureRecordSetLayer(samplePoints(), 4326)
	require.NoError(t, err)
	require.NotNil(t, fs.SpatialReference)
	assert.Equal(t, 4326, fs.SpatialReference.WKID)
}

func TestNewFeatureRecordSetLayerFieldsUnion(t *testing.T) {
	fs, err := NewFeatureRecordSetLayer(samplePoints(), 4326)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"name":  {},
		"rank":  {},
		"score": {},
	}, fs.Fields)
}

func TestNewFeatureRecordSetLayerInfersSRFromFirstFeature(t *testing.T) {
	features := []geometry.Geometry{
		&geometry.Point{X: 1, Y: 2, SR: geometry.WGS84()},
	}
	fs, err := NewFeatureRecordSetLayer(features, nil)
	require.NoError(t, err)
	require.NotNil(t, fs.SpatialReference)
	assert.Equal(t, 4326, fs.SpatialReference.WKID)
}

func TestNewFeatureRecordSetLayerMissingSR(t *testing.T) {
	_, err := NewFeatureRecordSetLayer(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSpatialReference))

	_, err = NewFeatureRecordSetLayer([]geometry.Geometry{&geometry.Point{X: 1, Y: 2}}, nil)
	assert.True(t, errors.Is(err, ErrMissingSpatialReference))
}

func TestFeatureRecordSetLayerEncode(t *testing.T) {
	fs, err := FeatureRecordSetLayerFromGeometry(&geometry.Point{X: -122.45, Y: 37.75}, 4326)
	require.NoError(t, err)

	s, err := fs.JSONStruct()
	require.NoError(t, err)

	obj, ok := s.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, geometry.TypePoint, obj["geometryType"])
	assert.Equal(t, map[string]interface{}{"wkid": 4326}, obj["spatialReference"])

	features, ok := obj["features"].([]interface{})
	require.True(t, ok)
	require.Len(t, features, 1)
	assert.Equal(t, map[string]interface{}{
		"geometry":   map[string]interface{}{"x": -122.45, "y": 37.75},
		"attributes": map[string]interface{}{},
	}, features[0])
}

func TestFeatureRecordSetLayerEncodeMixedGeometry(t *testing.T) {
	features := []geometry.Geometry{
		&geometry.Point{X: 1, Y: 2},
		&geometry.Polygon{Rings: [][][]float64{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}}},
	}
	fs, err := NewFeatureRecordSetLayer(features, 4326)
	require.NoError(t, err)

	_, err = fs.JSONStruct()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentGeometry))
}

func TestFeatureRecordSetLayerDecode(t *testing.T) {
	doc := `{
		"geometryType": "esriGeometryPolyline",
		"spatialReference": {"wkid": 3857},
		"features": [
			{
				"geometry": {"paths": [[[0, 0], [10, 10]], [[20, 20], [30, 30]]]},
				"attributes": {"route": "A1"}
			}
		]
	}`
	var value interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &value))

	fs, err := FeatureRecordSetLayerFromJSON(value)
	require.NoError(t, err)
	assert.Equal(t, 3857, fs.SpatialReference.WKID)
	require.Len(t, fs.Features, 1)

	line, ok := fs.Features[0].(*geometry.Polyline)
	require.True(t, ok)
	assert.Equal(t, [][][]float64{{{0, 0}, {10, 10}}, {{20, 20}, {30, 30}}}, line.Paths)
	assert.Equal(t, map[string]interface{}{"route": "A1"}, line.Attributes())
	assert.Contains(t, fs.Fields, "route")
}

func TestFeatureRecordSetLayerRoundTrip(t *testing.T) {
	original, err := NewFeatureRecordSetLayer(samplePoints(), 4326)
	require.NoError(t, err)

	s, err := original.JSONStruct()
	require.NoError(t, err)

	// Through real JSON so decoded shapes match wire types.
	data, err := json.Marshal(s)
	require.NoError(t, err)
	var value interface{}
	require.NoError(t, json.Unmarshal(data, &value))

	decoded, err := FeatureRecordSetLayerFromJSON(value)
	require.NoError(t, err)
	require.Len(t, decoded.Features, 2)
	assert.Equal(t, original.SpatialReference.WKID, decoded.SpatialReference.WKID)
	assert.Equal(t, original.Fields, decoded.Fields)

	p, ok := decoded.Features[0].(*geometry.Point)
	require.True(t, ok)
	assert.Equal(t, -122.45, p.X)
	assert.Equal(t, 37.75, p.Y)
}

func TestFeatureRecordSetLayerDecodeErrors(t *testing.T) {
	_, err := FeatureRecordSetLayerFromJSON("not an object")
	assert.Error(t, err)

	_, err = FeatureRecordSetLayerFromJSON(map[string]interface{}{
		"spatialReference": map[string]interface{}{"wkid": float64(4326)},
	})
	assert.Error(t, err)
}

func TestRecordSetRoundTrip(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"attributes": map[string]interface{}{"id": float64(1)}},
	}
	r, err := RecordSetFromJSON(raw)
	require.NoError(t, err)

	s, err := r.JSONStruct()
	require.NoError(t, err)
	assert.Equal(t, raw, s)
}

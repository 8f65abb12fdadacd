package gptypes

import (
	"fmt"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/geometry"
)

// GPFeatureRecordSetLayer is a geoprocessing feature recordset parameter:
// an ordered list of features sharing one spatial reference, plus the
// union of the features' attribute field names.
type GPFeatureRecordSetLayer struct {
	Features         []geometry.Geometry
	SpatialReference *geometry.SpatialReference
	Fields           map[string]struct{}
}

// NewFeatureRecordSetLayer bundles features with a spatial reference.
// sr may be nil, a *geometry.SpatialReference, a WKID integer, a WKT
// string, or a decoded JSON object; when nil, the spatial reference is
// inferred from the first feature. With no features and no explicit sr
// the construction fails with ErrMissingSpatialReference.
func NewFeatureRecordSetLayer(features []geometry.Geometry, sr interface{}) (*GPFeatureRecordSetLayer, error) {
	fs := &GPFeatureRecordSetLayer{
		Features: features,
		Fields:   make(map[string]struct{}),
	}

	switch {
	case sr != nil:
		parsed, err := geometry.NewSpatialReference(sr)
		if err != nil {
			return nil, err
		}
		fs.SpatialReference = parsed
	case len(features) > 0 && features[0].SpatialReference() != nil:
		parsed, err := geometry.NewSpatialReference(features[0].SpatialReference())
		if err != nil {
			return nil, err
		}
		fs.SpatialReference = parsed
	default:
		return nil, ErrMissingSpatialReference
	}

	for _, feature := range features {
		for name := range feature.Attributes() {
			fs.Fields[name] = struct{}{}
		}
	}
	return fs, nil
}

// FeatureRecordSetLayerFromGeometry wraps a single feature.
func FeatureRecordSetLayerFromGeometry(g geometry.Geometry, sr interface{}) (*GPFeatureRecordSetLayer, error) {
	return NewFeatureRecordSetLayer([]geometry.Geometry{g}, sr)
}

// JSONStruct returns the featureset wire object. All features must report
// the identical geometry-type tag; a mix fails with
// ErrInconsistentGeometry.
func (fs *GPFeatureRecordSetLayer) JSONStruct() (interface{}, error) {
	geometryTypes := make(map[string]struct{})
	for _, feature := range fs.Features {
		geometryTypes[feature.GeometryType()] = struct{}{}
	}
	if len(geometryTypes) != 1 {
		return nil, fmt.Errorf("%w: found %d geometry types", ErrInconsistentGeometry, len(geometryTypes))
	}
	var geometryType string
	for tag := range geometryTypes {
		geometryType = tag
	}

	features := make([]interface{}, 0, len(fs.Features))
	for _, feature := range fs.Features {
		features = append(features, feature.FeatureSetJSON())
	}
	return map[string]interface{}{
		"geometryType":     geometryType,
		"spatialReference": fs.SpatialReference.JSONStruct(),
		"features":         features,
	}, nil
}

func (fs *GPFeatureRecordSetLayer) String() string { return jsonString(fs) }

// FeatureRecordSetLayerFromJSON decodes the featureset wire object:
// the spatial reference and every feature's geometry+attributes are
// reconstructed through the geometry package, then rebundled via the
// constructor.
func FeatureRecordSetLayerFromJSON(value interface{}) (*GPFeatureRecordSetLayer, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("gptypes: featureset value must be an object, got %T", value)
	}

	sr, err := geometry.ConvertSpatialReferenceFromJSON(obj["spatialReference"])
	if err != nil {
		return nil, err
	}

	rawFeatures, ok := obj["features"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("gptypes: featureset object missing features array")
	}

	features := make([]geometry.Geometry, 0, len(rawFeatures))
	for i, raw := range rawFeatures {
		featureObj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("gptypes: feature %d is not an object", i)
		}
		geomJSON, _ := featureObj["geometry"].(map[string]interface{})
		attrs, _ := featureObj["attributes"].(map[string]interface{})
		g, err := geometry.ConvertFromJSON(geomJSON, attrs)
		if err != nil {
			return nil, fmt.Errorf("gptypes: feature %d: %v", i, err)
		}
		features = append(features, g)
	}
	return NewFeatureRecordSetLayer(features, sr)
}

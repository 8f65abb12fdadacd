// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

// Package geometry implements the esri JSON geometry model used by
// geoprocessing feature record sets: points, multipoints, polylines and
// polygons, each carrying an attribute map and an optional spatial
// reference.
package geometry

import (
	"fmt"
)

// Geometry type tags as they appear in ArcGIS REST featuresets.
const (
	TypePoint      = "esriGeometryPoint"
	TypeMultipoint = "esriGeometryMultipoint"
	TypePolyline   = "esriGeometryPolyline"
	TypePolygon    = "esriGeometryPolygon"
)

// Geometry is one feature's shape plus its named attribute values.
type Geometry interface {
	// GeometryType returns the esriGeometry* tag for the shape kind.
	GeometryType() string
	// Attributes returns the feature's attribute map. May be nil.
	Attributes() map[string]interface{}
	// SpatialReference returns the geometry's own spatial reference, if any.
	SpatialReference() *SpatialReference
	// JSONStruct returns the geometry-only JSON object.
	JSONStruct() map[string]interface{}
	// FeatureSetJSON returns the per-feature featureset encoding,
	// an object with "geometry" and "attributes" keys.
	FeatureSetJSON() map[string]interface{}
}

// Point is a single x/y location.
type Point struct {
	X     float64
	Y     float64
	SR    *SpatialReference
	Attrs map[string]interface{}
}

func (p *Point) GeometryType() string                { return TypePoint }
func (p *Point) Attributes() map[string]interface{}  { return p.Attrs }
func (p *Point) SpatialReference() *SpatialReference { return p.SR }

func (p *Point) JSONStruct() map[string]interface{} {
	return map[string]interface{}{"x": p.X, "y": p.Y}
}

func (p *Point) FeatureSetJSON() map[string]interface{} {
	return featureSetJSON(p)
}

// Multipoint is an ordered collection of points.
type Multipoint struct {
	Points [][]float64
	SR     *SpatialReference
	Attrs  map[string]interface{}
}

func (m *Multipoint) GeometryType() string                { return TypeMultipoint }
func (m *Multipoint) Attributes() map[string]interface{}  { return m.Attrs }
func (m *Multipoint) SpatialReference() *SpatialReference { return m.SR }

func (m *Multipoint) JSONStruct() map[string]interface{} {
	return map[string]interface{}{"points": m.Points}
}

func (m *Multipoint) FeatureSetJSON() map[string]interface{} {
	return featureSetJSON(m)
}

// Polyline is a collection of paths, each path an ordered list of
// x/y pairs.
type Polyline struct {
	Paths [][][]float64
	SR    *SpatialReference
	Attrs map[string]interface{}
}

func (l *Polyline) GeometryType() string                { return TypePolyline }
func (l *Polyline) Attributes() map[string]interface{}  { return l.Attrs }
func (l *Polyline) SpatialReference() *SpatialReference { return l.SR }

func (l *Polyline) JSONStruct() map[string]interface{} {
	return map[string]interface{}{"paths": l.Paths}
}

func (l *Polyline) FeatureSetJSON() map[string]interface{} {
	return featureSetJSON(l)
}

// Polygon is a collection of rings, each ring an ordered list of
// x/y pairs.
type Polygon struct {
	Rings [][][]float64
	SR    *SpatialReference
	Attrs map[string]interface{}
}

func (p *Polygon) GeometryType() string                { return TypePolygon }
func (p *Polygon) Attributes() map[string]interface{}  { return p.Attrs }
func (p *Polygon) SpatialReference() *SpatialReference { return p.SR }

func (p *Polygon) JSONStruct() map[string]interface{} {
	return map[string]interface{}{"rings": p.Rings}
}

func (p *Polygon) FeatureSetJSON() map[string]interface{} {
	return featureSetJSON(p)
}

// featureSetJSON builds the {"geometry": ..., "attributes": ...} object
// shared by all geometry kinds. Attributes default to an empty object so
// the wire form never carries a JSON null.
func featureSetJSON(g Geometry) map[string]interface{} {
	attrs := g.Attributes()
	if attrs == nil {
		attrs = map[string]interface{}{}
	}
	return map[string]interface{}{
		"geometry":   g.JSONStruct(),
		"attributes": attrs,
	}
}

// ConvertFromJSON reconstructs a geometry from its esri JSON object plus
// an attribute map. The shape kind is detected from the keys present:
// x/y for points, "points" for multipoints, "paths" for polylines and
// "rings" for polygons.
func ConvertFromJSON(geomJSON map[string]interface{}, attrs map[string]interface{}) (Geometry, error) {
	if geomJSON == nil {
		return nil, fmt.Errorf("geometry: nil geometry object")
	}

	var sr *SpatialReference
	if srVal, ok := geomJSON["spatialReference"]; ok {
		parsed, err := ConvertSpatialReferenceFromJSON(srVal)
		if err != nil {
			return nil, err
		}
		sr = parsed
	}

	if xVal, xOk := geomJSON["x"]; xOk {
		yVal, yOk := geomJSON["y"]
		if !yOk {
			return nil, fmt.Errorf("geometry: point object missing y")
		}
		x, xFloatOk := xVal.(float64)
		y, yFloatOk := yVal.(float64)
		if !xFloatOk || !yFloatOk {
			return nil, fmt.Errorf("geometry: point coordinates are not numbers")
		}
		return &Point{X: x, Y: y, SR: sr, Attrs: attrs}, nil
	}

	if points, ok := geomJSON["points"]; ok {
		coords, err := toCoordPairs(points)
		if err != nil {
			return nil, fmt.Errorf("geometry: invalid multipoint: %v", err)
		}
		return &Multipoint{Points: coords, SR: sr, Attrs: attrs}, nil
	}

	if paths, ok := geomJSON["paths"]; ok {
		coords, err := toCoordPaths(paths)
		if err != nil {
			return nil, fmt.Errorf("geometry: invalid polyline: %v", err)
		}
		return &Polyline{Paths: coords, SR: sr, Attrs: attrs}, nil
	}

	if rings, ok := geomJSON["rings"]; ok {
		coords, err := toCoordPaths(rings)
		if err != nil {
			return nil, fmt.Errorf("geometry: invalid polygon: %v", err)
		}
		return &Polygon{Rings: coords, SR: sr, Attrs: attrs}, nil
	}

	return nil, fmt.Errorf("geometry: unrecognized geometry object")
}

// toCoordPairs converts a decoded JSON array of [x, y] pairs.
func toCoordPairs(val interface{}) ([][]float64, error) {
	arr, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", val)
	}
	pairs := make([][]float64, 0, len(arr))
	for _, p := range arr {
		point, pointOk := p.([]interface{})
		if !pointOk || len(point) < 2 {
			return nil, fmt.Errorf("coordinate pair must have at least two elements")
		}
		x, xOk := point[0].(float64)
		y, yOk := point[1].(float64)
		if !xOk || !yOk {
			return nil, fmt.Errorf("coordinates are not numbers")
		}
		pairs = append(pairs, []float64{x, y})
	}
	return pairs, nil
}

// toCoordPaths converts a decoded JSON array of paths/rings.
func toCoordPaths(val interface{}) ([][][]float64, error) {
	arr, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", val)
	}
	paths := make([][][]float64, 0, len(arr))
	for _, p := range arr {
		pairs, err := toCoordPairs(p)
		if err != nil {
			return nil, err
		}
		paths = append(paths, pairs)
	}
	return paths, nil
}

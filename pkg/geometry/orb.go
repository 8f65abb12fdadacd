package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ToOrb bridges an esri geometry to the orb geometry library so that
// downstream code can reuse orb's GeoJSON and WKT encodings.
func ToOrb(g Geometry) (orb.Geometry, error) {
	switch v := g.(type) {
	case *Point:
		return orb.Point{v.X, v.Y}, nil
	case *Multipoint:
		mp := make(orb.MultiPoint, 0, len(v.Points))
		for _, p := range v.Points {
			mp = append(mp, orb.Point{p[0], p[1]})
		}
		return mp, nil
	case *Polyline:
		if len(v.Paths) == 1 {
			return toLineString(v.Paths[0]), nil
		}
		mls := make(orb.MultiLineString, 0, len(v.Paths))
		for _, path := range v.Paths {
			mls = append(mls, toLineString(path))
		}
		return mls, nil
	case *Polygon:
		poly := make(orb.Polygon, 0, len(v.Rings))
		for _, ring := range v.Rings {
			r := make(orb.Ring, 0, len(ring)+1)
			for _, p := range ring {
				r = append(r, orb.Point{p[0], p[1]})
			}
			// orb expects closed rings
			if len(r) > 0 && r[0] != r[len(r)-1] {
				r = append(r, r[0])
			}
			poly = append(poly, r)
		}
		return poly, nil
	default:
		return nil, fmt.Errorf("geometry: no orb mapping for %T", g)
	}
}

// FromOrb converts an orb geometry back into the esri model, attaching
// the given attributes and spatial reference.
func FromOrb(g orb.Geometry, attrs map[string]interface{}, sr *SpatialReference) (Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return &Point{X: v[0], Y: v[1], SR: sr, Attrs: attrs}, nil
	case orb.MultiPoint:
		points := make([][]float64, 0, len(v))
		for _, p := range v {
			points = append(points, []float64{p[0], p[1]})
		}
		return &Multipoint{Points: points, SR: sr, Attrs: attrs}, nil
	case orb.LineString:
		return &Polyline{Paths: [][][]float64{fromLineString(v)}, SR: sr, Attrs: attrs}, nil
	case orb.MultiLineString:
		paths := make([][][]float64, 0, len(v))
		for _, ls := range v {
			paths = append(paths, fromLineString(ls))
		}
		return &Polyline{Paths: paths, SR: sr, Attrs: attrs}, nil
	case orb.Polygon:
		return &Polygon{Rings: fromRings(v), SR: sr, Attrs: attrs}, nil
	case orb.MultiPolygon:
		var rings [][][]float64
		for _, poly := range v {
			rings = append(rings, fromRings(poly)...)
		}
		return &Polygon{Rings: rings, SR: sr, Attrs: attrs}, nil
	default:
		return nil, fmt.Errorf("geometry: no esri mapping for %T", g)
	}
}

func toLineString(path [][]float64) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, orb.Point{p[0], p[1]})
	}
	return ls
}

func fromLineString(ls orb.LineString) [][]float64 {
	path := make([][]float64, 0, len(ls))
	for _, p := range ls {
		path = append(path, []float64{p[0], p[1]})
	}
	return path
}

func fromRings(poly orb.Polygon) [][][]float64 {
	rings := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		r := make([][]float64, 0, len(ring))
		for _, p := range ring {
			r = append(r, []float64{p[0], p[1]})
		}
		rings = append(rings, r)
	}
	return rings
}

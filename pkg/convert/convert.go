// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

// Package convert turns geoprocessing feature record sets into
// interchange formats: GeoJSON, CSV and formatted text.
package convert

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/geometry"
	"github.com/Sudo-Ivan/arcgis-gp/pkg/gptypes"
)

// ToGeoJSON converts a feature record set to a GeoJSON FeatureCollection.
// Each feature's esri geometry is bridged through orb; attributes become
// GeoJSON properties.
func ToGeoJSON(fs *gptypes.GPFeatureRecordSetLayer) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for i, feature := range fs.Features {
		orbGeom, err := geometry.ToOrb(feature)
		if err != nil {
			return nil, fmt.Errorf("failed to convert feature %d: %v", i, err)
		}
		gf := geojson.NewFeature(orbGeom)
		for k, v := range feature.Attributes() {
			gf.Properties[k] = v
		}
		fc.Append(gf)
	}
	return fc, nil
}

// MarshalGeoJSON marshals a FeatureCollection into an indented JSON string.
func MarshalGeoJSON(fc *geojson.FeatureCollection) (string, error) {
	data, err := json.MarshalIndent(fc, "", JSONIndent)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FeaturesToCSV converts a feature record set to a CSV string. Columns
// are the record set's field names in sorted order plus a trailing WKT
// geometry column.
func FeaturesToCSV(fs *gptypes.GPFeatureRecordSetLayer) (string, error) {
	if len(fs.Features) == 0 {
		return "", nil
	}

	var headers []string
	for name := range fs.Fields {
		headers = append(headers, name)
	}
	sort.Strings(headers) // Sort for consistent column order
	headers = append(headers, KeyWKTGeometry)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, feature := range fs.Features {
		row := make([]string, len(headers))
		for i, header := range headers {
			if header == KeyWKTGeometry {
				row[i] = GeometryToWKT(feature)
			} else {
				if val, ok := feature.Attributes()[header]; ok && val != nil {
					row[i] = fmt.Sprintf("%v", val)
				} else {
					row[i] = "" // Handle nil or missing attributes
				}
			}
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row to CSV: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error during CSV writing: %v", err)
	}

	return buf.String(), nil
}

// FeaturesToText converts a feature record set to a formatted text
// listing: attributes in sorted order plus the WKT geometry per feature.
func FeaturesToText(fs *gptypes.GPFeatureRecordSetLayer, layerName string) (string, error) {
	if len(fs.Features) == 0 {
		return "", fmt.Errorf("no features to convert to text")
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Layer: %s\n", layerName))
	output.WriteString(fmt.Sprintf("Total Features: %d\n", len(fs.Features)))
	output.WriteString("========================================\n\n")

	for i, feature := range fs.Features {
		output.WriteString(fmt.Sprintf("--- Feature %d ---\n", i+1))

		var keys []string
		for k := range feature.Attributes() {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		output.WriteString("Attributes:\n")
		for _, k := range keys {
			output.WriteString(fmt.Sprintf("  %s: %v\n", k, feature.Attributes()[k]))
		}

		output.WriteString("Geometry (WKT):\n")
		text := GeometryToWKT(feature)
		if text == "" {
			output.WriteString("  <No Geometry>\n")
		} else {
			output.WriteString(fmt.Sprintf("  %s\n", text))
		}
		output.WriteString("\n") // Add a blank line between features
	}

	return output.String(), nil
}

// GeometryToWKT renders a feature's geometry as WKT. Returns an empty
// string when the geometry cannot be bridged to orb.
func GeometryToWKT(g geometry.Geometry) string {
	orbGeom, err := geometry.ToOrb(g)
	if err != nil {
		return ""
	}
	return wkt.MarshalString(orbGeom)
}

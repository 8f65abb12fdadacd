// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

// Package export renders GeoJSON feature collections as KML and GPX
// documents.
package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToKML converts a GeoJSON FeatureCollection to a KML string.
func ToKML(fc *geojson.FeatureCollection, layerName string) (string, error) {
	var placemarks strings.Builder
	for _, feature := range fc.Features {
		if feature.Geometry == nil {
			continue
		}

		name := getFeatureName(feature)
		description := formatProperties(feature.Properties)

		geometryString := kmlGeometry(feature.Geometry)
		if geometryString == "" {
			continue
		}

		placemarks.WriteString(fmt.Sprintf(`
        <Placemark>
            <name>%s</name>
            <description><![CDATA[%s]]></description>
            %s
        </Placemark>`, escapeXML(name), description, geometryString))
	}

	kml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
    <Document>
        <name>%s</name>%s
    </Document>
</kml>`, escapeXML(layerName), placemarks.String())

	return kml, nil
}

// kmlGeometry renders one orb geometry as a KML geometry element.
// Unsupported kinds yield an empty string and the feature is skipped.
func kmlGeometry(g orb.Geometry) string {
	switch geom := g.(type) {
	case orb.Point:
		return fmt.Sprintf("<Point><coordinates>%s</coordinates></Point>", kmlCoord(geom))
	case orb.LineString:
		return fmt.Sprintf("<LineString><coordinates>%s</coordinates></LineString>", kmlCoords(geom))
	case orb.MultiLineString:
		var parts strings.Builder
		for _, ls := range geom {
			parts.WriteString(fmt.Sprintf("<LineString><coordinates>%s</coordinates></LineString>", kmlCoords(ls)))
		}
		return fmt.Sprintf("<MultiGeometry>%s</MultiGeometry>", parts.String())
	case orb.Polygon:
		if len(geom) == 0 {
			return ""
		}
		var outerBoundary, innerBoundaries strings.Builder
		outerBoundary.WriteString(fmt.Sprintf("<outerBoundaryIs><LinearRing><coordinates>%s</coordinates></LinearRing></outerBoundaryIs>", kmlCoords(orb.LineString(geom[0]))))
		for _, innerRing := range geom[1:] {
			innerBoundaries.WriteString(fmt.Sprintf("<innerBoundaryIs><LinearRing><coordinates>%s</coordinates></LinearRing></innerBoundaryIs>", kmlCoords(orb.LineString(innerRing))))
		}
		return fmt.Sprintf("<Polygon>%s%s</Polygon>", outerBoundary.String(), innerBoundaries.String())
	default:
		return ""
	}
}

func kmlCoord(p orb.Point) string {
	return fmt.Sprintf(KMLCoordFormat, p[0], p[1])
}

func kmlCoords(ls orb.LineString) string {
	parts := make([]string, len(ls))
	for i, p := range ls {
		parts[i] = kmlCoord(p)
	}
	return strings.Join(parts, KMLSpace)
}

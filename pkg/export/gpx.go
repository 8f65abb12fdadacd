package export

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ToGPX converts a GeoJSON FeatureCollection to a GPX string. Points
// become waypoints; lines and polygon boundaries become tracks.
func ToGPX(fc *geojson.FeatureCollection, layerName string) (string, error) {
	var waypoints strings.Builder
	var tracks strings.Builder

	for _, feature := range fc.Features {
		if feature.Geometry == nil {
			continue
		}

		name := getFeatureName(feature)
		desc := formatProperties(feature.Properties, ", ")

		switch geom := feature.Geometry.(type) {
		case orb.Point:
			waypoints.WriteString(fmt.Sprintf(`
    <wpt lat="%.10f" lon="%.10f">
        <name>%s</name>
        <desc>%s</desc>
    </wpt>`, geom[1], geom[0], escapeXML(name), escapeXML(desc)))
		case orb.LineString:
			writeTrack(&tracks, name, desc, geom)
		case orb.MultiLineString:
			for _, ls := range geom {
				writeTrack(&tracks, name, desc, ls)
			}
		case orb.Polygon:
			if len(geom) > 0 {
				writeTrack(&tracks, name+" (Boundary)", desc, orb.LineString(geom[0]))
			}
		}
	}

	gpxContent := waypoints.String() + tracks.String()

	gpx := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="arcgis-gp"
    xmlns="http://www.topografix.com/GPX/1/1"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
    <metadata>
        <name>%s</name>
    </metadata>%s
</gpx>`, escapeXML(layerName), gpxContent)

	return gpx, nil
}

func writeTrack(tracks *strings.Builder, name, desc string, ls orb.LineString) {
	tracks.WriteString(fmt.Sprintf(`
    <trk>
        <name>%s</name>
        <desc>%s</desc>
        <trkseg>`, escapeXML(name), escapeXML(desc)))
	for _, p := range ls {
		tracks.WriteString(fmt.Sprintf(`<trkpt lat="%.10f" lon="%.10f"></trkpt>`, p[1], p[0]))
	}
	tracks.WriteString(`
        </trkseg>
    </trk>`)
}

package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb/geojson"
)

const (
	KMLCoordFormat = "%.10f,%.10f,0"
	KMLSpace       = " "
)

// getFeatureName extracts a suitable name from a feature's properties.
func getFeatureName(feature *geojson.Feature) string {
	props := feature.Properties
	for _, key := range []string{"name", "Name", "NAME", "title", "Title", "TITLE", "OBJECTID", "FID"} {
		if val, ok := props[key]; ok && val != nil {
			return fmt.Sprintf("%v", val)
		}
	}
	return "Feature"
}

// formatProperties formats a property map into a string.
func formatProperties(props geojson.Properties, separator ...string) string {
	sep := "<br>"
	if len(separator) > 0 {
		sep = separator[0]
	}
	var keys []string
	for k := range props {
		keys = append(keys, k)
	}
	// Sorted so the output is stable
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("<strong>%s</strong>: %v", escapeXML(k), escapeXML(fmt.Sprintf("%v", props[k]))))
	}
	return strings.Join(parts, sep)
}

// escapeXML escapes XML special characters in a string.
func escapeXML(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
		"/", "&#x2F;",
	).Replace(s)
}

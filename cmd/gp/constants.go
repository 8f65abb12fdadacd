package gp

const (
	FormatGeoJSON = "geojson"
	FormatKML     = "kml"
	FormatGPX     = "gpx"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatText    = "text"

	DirPerm    = 0750
	FilePerm   = 0600
	JSONIndent = "  "
)

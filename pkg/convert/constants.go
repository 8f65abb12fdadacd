package convert

const (
	KeyWKTGeometry = "WKT_Geometry"
	JSONIndent     = "  "
)

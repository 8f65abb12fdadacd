package geometry

import (
	"fmt"
)

// SpatialReference is a coordinate system descriptor, identified either
// by a well-known ID or by well-known text.
type SpatialReference struct {
	WKID int
	WKT  string
}

// WGS84 returns the standard geographic coordinate system (WKID 4326).
func WGS84() *SpatialReference {
	return &SpatialReference{WKID: 4326}
}

// NewSpatialReference builds a spatial reference from whatever the caller
// has at hand: an existing *SpatialReference, a WKID integer, a WKT
// string, or a decoded JSON object with a "wkid" or "wkt" key.
func NewSpatialReference(val interface{}) (*SpatialReference, error) {
	switch v := val.(type) {
	case *SpatialReference:
		if v == nil {
			return nil, fmt.Errorf("geometry: nil spatial reference")
		}
		sr := *v
		return &sr, nil
	case SpatialReference:
		sr := v
		return &sr, nil
	case int:
		return &SpatialReference{WKID: v}, nil
	case float64:
		return &SpatialReference{WKID: int(v)}, nil
	case string:
		if v == "" {
			return nil, fmt.Errorf("geometry: empty spatial reference text")
		}
		return &SpatialReference{WKT: v}, nil
	case map[string]interface{}:
		return ConvertSpatialReferenceFromJSON(v)
	default:
		return nil, fmt.Errorf("geometry: cannot build spatial reference from %T", val)
	}
}

// ConvertSpatialReferenceFromJSON parses the JSON form of a spatial
// reference. Accepts {"wkid": n}, {"wkt": s}, or a bare WKID number.
func ConvertSpatialReferenceFromJSON(val interface{}) (*SpatialReference, error) {
	switch v := val.(type) {
	case float64:
		return &SpatialReference{WKID: int(v)}, nil
	case map[string]interface{}:
		if wkid, ok := v["wkid"]; ok {
			id, idOk := wkid.(float64)
			if !idOk {
				return nil, fmt.Errorf("geometry: wkid is not a number")
			}
			return &SpatialReference{WKID: int(id)}, nil
		}
		if wkt, ok := v["wkt"]; ok {
			text, textOk := wkt.(string)
			if !textOk {
				return nil, fmt.Errorf("geometry: wkt is not a string")
			}
			return &SpatialReference{WKT: text}, nil
		}
		return nil, fmt.Errorf("geometry: spatial reference object has neither wkid nor wkt")
	default:
		return nil, fmt.Errorf("geometry: cannot parse spatial reference from %T", val)
	}
}

// JSONStruct returns the wire form, preferring the WKID when both are set.
func (sr *SpatialReference) JSONStruct() map[string]interface{} {
	if sr.WKID != 0 {
		return map[string]interface{}{"wkid": sr.WKID}
	}
	return map[string]interface{}{"wkt": sr.WKT}
}

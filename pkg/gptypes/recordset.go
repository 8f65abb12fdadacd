package gptypes

// GPRecordSet is a geoprocessing recordset parameter: an opaque feature
// array with no wire contract beyond round-tripping. Present so schema
// enumeration over the registered type list stays total.
type GPRecordSet struct {
	Features interface{}
}

// JSONStruct returns the held feature array unmodified.
func (r GPRecordSet) JSONStruct() (interface{}, error) {
	return r.Features, nil
}

func (r GPRecordSet) String() string { return jsonString(r) }

// RecordSetFromJSON keeps the decoded value as-is.
func RecordSetFromJSON(value interface{}) (GPRecordSet, error) {
	return GPRecordSet{Features: value}, nil
}

package arcgis

import "encoding/json"

// GPTask represents the metadata of a geoprocessing task on an ArcGIS
// REST server.
type GPTask struct {
	Name           string        `json:"name"`
	DisplayName    string        `json:"displayName"`
	Category       string        `json:"category"`
	ExecutionType  string        `json:"executionType"`
	Parameters     []GPParameter `json:"parameters"`
	CurrentVersion string        `json:"currentVersion"`
	Error          *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GPParameter represents one parameter in a geoprocessing task schema.
type GPParameter struct {
	Name          string          `json:"name"`
	DataType      string          `json:"dataType"`
	DisplayName   string          `json:"displayName"`
	Direction     string          `json:"direction"`
	DefaultValue  json.RawMessage `json:"defaultValue"`
	ParameterType string          `json:"parameterType"`
	Category      string          `json:"category"`
	ChoiceList    []string        `json:"choiceList"`
}

// ParameterValue is one entry of a geoprocessing job parameter document:
// a named value paired with its declared data type.
type ParameterValue struct {
	ParamName string          `json:"paramName"`
	DataType  string          `json:"dataType"`
	Value     json.RawMessage `json:"value"`
}

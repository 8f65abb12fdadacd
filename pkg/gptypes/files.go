package gptypes

import (
	"fmt"
)

// GPDataFile is a URL for a geoprocessing data file parameter.
type GPDataFile struct {
	URL string
}

// JSONStruct returns {"url": string}.
func (f GPDataFile) JSONStruct() (interface{}, error) {
	return map[string]interface{}{"url": f.URL}, nil
}

func (f GPDataFile) String() string { return jsonString(f) }

// DataFileFromJSON decodes the {"url"} wire object.
func DataFileFromJSON(value interface{}) (GPDataFile, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return GPDataFile{}, fmt.Errorf("gptypes: data file value must be an object, got %T", value)
	}
	url, ok := obj["url"].(string)
	if !ok {
		return GPDataFile{}, fmt.Errorf("gptypes: data file object missing url")
	}
	return GPDataFile{URL: url}, nil
}

// GPRasterData is a URL plus data format (jpeg, png, ...) for a
// geoprocessing raster data parameter. GPRasterLayer shares the same
// structure; the two differ only by registered type name.
type GPRasterData struct {
	URL    string
	Format string
}

// JSONStruct returns {"url": string, "format": string}.
func (r GPRasterData) JSONStruct() (interface{}, error) {
	return urlFormatStruct(r.URL, r.Format), nil
}

func (r GPRasterData) String() string { return jsonString(r) }

// RasterDataFromJSON decodes the {"url", "format"} wire object.
func RasterDataFromJSON(value interface{}) (GPRasterData, error) {
	url, format, err := urlFormatFromJSON(value)
	if err != nil {
		return GPRasterData{}, err
	}
	return GPRasterData{URL: url, Format: format}, nil
}

// GPRasterLayer is a URL plus data format for a geoprocessing raster
// layer parameter.
type GPRasterLayer struct {
	URL    string
	Format string
}

// JSONStruct returns {"url": string, "format": string}.
func (r GPRasterLayer) JSONStruct() (interface{}, error) {
	return urlFormatStruct(r.URL, r.Format), nil
}

func (r GPRasterLayer) String() string { return jsonString(r) }

// RasterLayerFromJSON decodes the {"url", "format"} wire object.
func RasterLayerFromJSON(value interface{}) (GPRasterLayer, error) {
	url, format, err := urlFormatFromJSON(value)
	if err != nil {
		return GPRasterLayer{}, err
	}
	return GPRasterLayer{URL: url, Format: format}, nil
}

func urlFormatStruct(url, format string) map[string]interface{} {
	return map[string]interface{}{"url": url, "format": format}
}

func urlFormatFromJSON(value interface{}) (string, string, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return "", "", fmt.Errorf("gptypes: raster value must be an object, got %T", value)
	}
	url, ok := obj["url"].(string)
	if !ok {
		return "", "", fmt.Errorf("gptypes: raster object missing url")
	}
	format, ok := obj["format"].(string)
	if !ok {
		return "", "", fmt.Errorf("gptypes: raster object missing format")
	}
	return url, format, nil
}

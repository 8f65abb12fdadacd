// Copyright (c) 2025 Sudo-Ivan
// Licensed under the MIT License

// Command arcgis-gp inspects and converts ArcGIS geoprocessing parameter
// JSON documents.
package main

import (
	"os"

	"github.com/Sudo-Ivan/arcgis-gp/cmd/gp"
)

func main() {
	if err := gp.Execute(); err != nil {
		os.Exit(1)
	}
}

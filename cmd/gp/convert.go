package gp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/convert"
	"github.com/Sudo-Ivan/arcgis-gp/pkg/export"
	"github.com/Sudo-Ivan/arcgis-gp/pkg/gptypes"
)

func newConvertCmd() *cobra.Command {
	var (
		format       string
		outputDir    string
		layerName    string
		prefix       string
		overwrite    bool
		skipExisting bool
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a GPFeatureRecordSetLayer JSON value to another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = viper.GetString("convert.format")
			}
			if outputDir == "" {
				outputDir, _ = os.Getwd()
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			var value interface{}
			if err := json.Unmarshal(data, &value); err != nil {
				return fmt.Errorf("failed to parse input JSON: %w", err)
			}

			fs, err := gptypes.FeatureRecordSetLayerFromJSON(value)
			if err != nil {
				return fmt.Errorf("failed to decode feature record set: %w", err)
			}
			logger.Info().Int("features", len(fs.Features)).Str("format", format).Msg("converting feature record set")

			output, fileExt, err := renderFeatureSet(fs, format, layerName)
			if err != nil {
				return err
			}

			outputPath, err := resolveOutputPath(outputDir, layerName, prefix, fileExt, overwrite, skipExisting)
			if err != nil {
				return err
			}
			if outputPath == "" {
				logger.Warn().Msg("output file exists, skipping")
				return nil
			}

			if err := os.MkdirAll(outputDir, DirPerm); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
			}
			if err := os.WriteFile(outputPath, []byte(output), FilePerm); err != nil {
				return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
			}
			logger.Info().Str("path", outputPath).Msg("wrote output")
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatGeoJSON, "Output format (geojson, kml, gpx, csv, json, text)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&layerName, "name", "FeatureSet", "Layer name used in output")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for output filenames")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing output files")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip if the output file already exists")
	return cmd
}

// renderFeatureSet converts a decoded feature record set to the requested
// format, returning the output body and the file extension to use.
func renderFeatureSet(fs *gptypes.GPFeatureRecordSetLayer, format, layerName string) (string, string, error) {
	switch strings.ToLower(format) {
	case FormatGeoJSON:
		fc, err := convert.ToGeoJSON(fs)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to GeoJSON: %w", err)
		}
		data, err := convert.MarshalGeoJSON(fc)
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal GeoJSON: %w", err)
		}
		return data, FormatGeoJSON, nil
	case FormatKML:
		fc, err := convert.ToGeoJSON(fs)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to GeoJSON for KML: %w", err)
		}
		data, err := export.ToKML(fc, layerName)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to KML: %w", err)
		}
		return data, FormatKML, nil
	case FormatGPX:
		fc, err := convert.ToGeoJSON(fs)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to GeoJSON for GPX: %w", err)
		}
		data, err := export.ToGPX(fc, layerName)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to GPX: %w", err)
		}
		return data, FormatGPX, nil
	case FormatCSV:
		data, err := convert.FeaturesToCSV(fs)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to CSV: %w", err)
		}
		return data, FormatCSV, nil
	case FormatText:
		data, err := convert.FeaturesToText(fs, layerName)
		if err != nil {
			return "", "", fmt.Errorf("failed to convert to text: %w", err)
		}
		return data, "txt", nil
	case FormatJSON:
		s, err := fs.JSONStruct()
		if err != nil {
			return "", "", fmt.Errorf("failed to encode featureset: %w", err)
		}
		data, err := json.MarshalIndent(s, "", JSONIndent)
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal featureset JSON: %w", err)
		}
		return string(data), FormatJSON, nil
	default:
		return "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?* ]`)

// resolveOutputPath builds the output file path and applies the
// overwrite/skip-existing policy. An empty path with nil error means the
// file exists and was skipped.
func resolveOutputPath(outputDir, layerName, prefix, fileExt string, overwrite, skipExisting bool) (string, error) {
	base := unsafeFilenameChars.ReplaceAllString(strings.ReplaceAll(layerName, " ", "_"), "")
	if base == "" {
		base = "FeatureSet"
	}
	if prefix != "" {
		base = prefix + base
	}

	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s.%s", base, fileExt))

	if _, err := os.Stat(outputPath); err == nil {
		if skipExisting {
			return "", nil
		}
		if !overwrite {
			return "", fmt.Errorf("output file %s already exists. Use --overwrite or --skip-existing", outputPath)
		}
		logger.Warn().Str("path", outputPath).Msg("overwriting existing file")
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check output file status %s: %w", outputPath, err)
	}

	return outputPath, nil
}

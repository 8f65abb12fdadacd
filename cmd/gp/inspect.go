package gp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/arcgis"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Decode a geoprocessing parameter document and print its values",
		Long: `Inspect reads a JSON array of parameter entries of the form
{"paramName": ..., "dataType": ..., "value": ...} and prints each value
decoded according to its declared type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read parameter document: %w", err)
			}

			var params []arcgis.ParameterValue
			if err := json.Unmarshal(data, &params); err != nil {
				return fmt.Errorf("failed to parse parameter document: %w", err)
			}

			failed := 0
			for _, pv := range params {
				decoded, err := arcgis.DecodeParameterValue(pv)
				if err != nil {
					logger.Error().Err(err).Str("param", pv.ParamName).Msg("decode failed")
					failed++
					continue
				}
				logger.Debug().Str("param", pv.ParamName).Str("dataType", pv.DataType).Msg("decoded")
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %v\n", pv.ParamName, pv.DataType, decoded)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d parameters failed to decode", failed, len(params))
			}
			return nil
		},
	}
}

package gp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/gptypes"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported geoprocessing parameter type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gptypes.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

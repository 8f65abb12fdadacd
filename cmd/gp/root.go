// Package gp implements the arcgis-gp command tree.
package gp

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sudo-Ivan/arcgis-gp/pkg/logging"
)

var (
	cfgFile  string
	logLevel string
	logJSON  bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "arcgis-gp",
	Short:         "Convert ArcGIS geoprocessing parameter JSON to and from typed values",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("log-level") {
			logLevel = viper.GetString("log.level")
		}
		logger = logging.Build(logging.Config{Level: logLevel, Console: !logJSON}, os.Stderr)
		return nil
	},
}

// Execute runs the command tree, reporting the error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func loadConfig() error {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("convert.format", FormatGeoJSON)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arcgis-gp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./arcgis-gp.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON logs instead of console output")

	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConvertCmd())
}

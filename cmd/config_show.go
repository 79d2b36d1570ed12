package cmd

import (
	"fmt"
	"strings"

	"github.com/m-lima/passifier/internal/configs"
	"github.com/m-lima/passifier/internal/source"
	"github.com/m-lima/passifier/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Displays the configuration in use, with defaults filled in for anything the
file does not set.

Examples:
  passifier config show
  passifier config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Flags: json=%t", configShowJSON)

		config, err := configs.LoadConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to load configuration: %w", err)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			data, err := source.MarshalJSON(config, true)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("failed to encode configuration: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		path := configs.UserPassifierSettings.ConfigFilePath
		fmt.Fprintln(out, ui.Info.Sprint("Configuration")+" "+ui.Muted.Sprint(path))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Default store:     "+orNone(config.Store.Default))
		fmt.Fprintln(out, "  Cipher:            "+config.Crypto.Cipher)
		fmt.Fprintf(out, "  Compression level: %d\n", config.Crypto.CompressionLevel)
		fmt.Fprintln(out, "  Exclude:           "+orNone(strings.Join(config.Directory.Exclude, ", ")))
		fmt.Fprintf(out, "  Pretty JSON:       %t\n", config.Output.Pretty)
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return ui.Muted.Sprint("none")
	}
	return ui.Path.Sprint(s)
}

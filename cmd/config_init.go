package cmd

import (
	"github.com/m-lima/passifier/internal/configs"
	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/utils"

	"github.com/spf13/cobra"
)

var (
	configInitForce   bool
	configInitDefault string
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration")
	configInitCmd.Flags().StringVar(&configInitDefault, "default-store", "", "store used when --input is omitted")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	configInitDefault = ""
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the default configuration",
	Long: `Writes a configuration file with the default settings.

Examples:
  passifier config init
  passifier config init --default-store ~/secrets.pass
  passifier config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		spinner, cleanup := startSpinnerWithFlags("Writing configuration...", configVerbose, configDebug)
		defer cleanup()

		path := configs.UserPassifierSettings.ConfigFilePath
		ConfigLogger.Debugf("Configuration path: %s", path)

		exists, err := utils.PathExists(path)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to check %s: %w", path, err)
		}
		if exists && !configInitForce {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " already exists\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passifier config init --force") + " to overwrite it"
			return nil
		}

		config := configs.Default()
		config.Store.Default = configInitDefault

		if err := configs.SaveConfig(config); err != nil {
			return ConfigLogger.ErrorfAndReturn("failed to write configuration: %w", err)
		}

		ConfigLogger.Infof("Configuration written to %s", path)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Configuration written to " + ui.Path.Sprint(path)
		return nil
	},
}

package cmd

import (
	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete PATH",
	Short: "Removes a secret or subtree",
	Long: `Removes the secret or subtree at a dotted PATH. Branches left empty by the
removal are pruned.

Examples:
  passifier secrets delete db.password
  passifier secrets delete db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")
		spinner, cleanup := startSpinner("Deleting secret...", verbose)
		defer cleanup()

		path, err := store.ParsePath(args[0])
		if err != nil {
			return fail(spinner, err)
		}

		opts, err := resolveOptions(spinner, storeRequest{mutating: true})
		if err != nil {
			return fail(spinner, err)
		}

		result, err := workflows.Delete(cmd.Context(), opts, path)
		if err != nil {
			return fail(spinner, err)
		}

		Logger.Infof("Deleted %s, %d secrets left", args[0], result.Remaining)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Deleted " + ui.SecretPath.Sprint(joinPath(result.Path)) + "\n" +
			savedMessage(result.Saved, result.Output)
		return nil
	},
}

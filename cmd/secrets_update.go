package cmd

import (
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update PATH [SECRET]",
	Short: "Replaces an existing secret or subtree",
	Long: `Replaces the secret at a dotted PATH, which must already exist.

SECRET follows the same rules as for create. Updating with an empty object
('{}') deletes PATH.

Examples:
  passifier secrets update db.password 'correct horse battery staple'
  passifier secrets update tls.key --file server.key`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting update command")
		return runMutation(cmd, args, "Updating secret...", "Updated", workflows.Update)
	},
}

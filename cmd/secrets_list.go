package cmd

import (
	"fmt"
	"strings"

	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the path of every secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		spinner, cleanup := startSpinner("Loading store...", verbose)
		defer cleanup()

		opts, err := resolveOptions(spinner, storeRequest{})
		if err != nil {
			return fail(spinner, err)
		}

		result, err := workflows.List(cmd.Context(), opts)
		if err != nil {
			return fail(spinner, err)
		}

		spinner.Stop()
		for _, path := range result.Paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}

		var final []string
		if len(result.Paths) == 0 {
			final = append(final, ui.Warning.Sprint("⚠")+" Store is empty")
		}
		if result.Saved {
			final = append(final, savedMessage(result.Saved, opts.Output))
		}
		spinner.FinalMSG = strings.Join(final, "\n")
		return nil
	},
}

package cmd

import (
	"github.com/m-lima/passifier/internal/source"
	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	printPretty bool
	printTree   bool
	printReveal bool
)

func init() {
	printCmd.Flags().BoolVar(&printPretty, "pretty", false, "indent JSON output (defaults to the configured value)")
	printCmd.Flags().BoolVar(&printTree, "tree", false, "print a tree instead of JSON")
	printCmd.Flags().BoolVar(&printReveal, "reveal", false, "show secret values in the tree")
}

// resetPrintState resets the print command's global state for testing.
func resetPrintState() {
	printPretty = false
	printTree = false
	printReveal = false
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Prints the whole store",
	Long: `Prints the whole store as JSON, or as a tree with --tree.

Combined with --save this converts a store between formats.

Examples:
  passifier secrets print --pretty
  passifier secrets print --tree --reveal
  passifier secrets print -i secrets.pass -s secrets.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting print command")
		spinner, cleanup := startSpinner("Loading store...", verbose)
		defer cleanup()

		req := storeRequest{}
		if cmd.Flags().Changed("pretty") {
			req.pretty = &printPretty
		}
		opts, err := resolveOptions(spinner, req)
		if err != nil {
			return fail(spinner, err)
		}

		result, err := workflows.Print(cmd.Context(), opts)
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Loaded %d secrets", len(result.Store.List()))

		var out string
		if printTree {
			out = ui.RenderTree(result.Store.Root(), printReveal)
		} else {
			data, err := source.MarshalJSON(result.Store, opts.Pretty)
			if err != nil {
				return fail(spinner, err)
			}
			out = string(data)
		}

		spinner.Stop()
		if _, err := cmd.OutOrStdout().Write([]byte(ui.EnsureNewline(out))); err != nil {
			return err
		}

		if result.Saved {
			spinner.FinalMSG = savedMessage(result.Saved, opts.Output)
		}
		return nil
	},
}

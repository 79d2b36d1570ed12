package cmd

import (
	"github.com/m-lima/passifier/internal/source"
	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var readJSON bool

func init() {
	readCmd.Flags().BoolVar(&readJSON, "json", false, "print single secrets as JSON too")
}

// resetReadState resets the read command's global state for testing.
func resetReadState() {
	readJSON = false
}

var readCmd = &cobra.Command{
	Use:   "read PATH",
	Short: "Prints a secret or subtree",
	Long: `Prints the secret at a dotted PATH to stdout.

A single secret is printed as-is, so it can be piped. A subtree is printed as
JSON, with binary data as arrays of bytes.

Examples:
  passifier secrets read db.password
  passifier secrets read db --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting read command")
		spinner, cleanup := startSpinner("Reading secret...", verbose)
		defer cleanup()

		path, err := store.ParsePath(args[0])
		if err != nil {
			return fail(spinner, err)
		}

		opts, err := resolveOptions(spinner, storeRequest{})
		if err != nil {
			return fail(spinner, err)
		}

		result, err := workflows.Read(cmd.Context(), opts, path)
		if err != nil {
			return fail(spinner, err)
		}

		data, err := renderNode(result.Node, readJSON, opts.Pretty)
		if err != nil {
			return fail(spinner, err)
		}

		// The spinner has to be gone before anything reaches stdout.
		spinner.Stop()
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}

		if result.Saved {
			spinner.FinalMSG = savedMessage(result.Saved, opts.Output)
		}
		return nil
	},
}

// renderNode returns a leaf's raw bytes, or JSON for branches and when asJSON
// is set.
func renderNode(node store.Node, asJSON, pretty bool) ([]byte, error) {
	if entry, ok := node.Leaf(); ok && !asJSON {
		if text, ok := entry.Text(); ok {
			return []byte(text + "\n"), nil
		}
		return entry.Bytes(), nil
	}

	data, err := source.MarshalJSON(node, pretty)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

package cmd

import (
	"context"
	"strings"

	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	secretFile  string
	secretStdin bool
)

func init() {
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().StringVar(&secretFile, "file", "", "read the secret from a file")
		c.Flags().BoolVar(&secretStdin, "stdin", false, "read the secret from stdin")
		c.MarkFlagsMutuallyExclusive("file", "stdin")
	}
}

// resetSecretInputState resets the create and update commands' global state for testing.
func resetSecretInputState() {
	secretFile = ""
	secretStdin = false
}

var createCmd = &cobra.Command{
	Use:   "create PATH [SECRET]",
	Short: "Adds a new secret or subtree",
	Long: `Adds a secret at a dotted PATH, creating intermediate branches.

SECRET may be a plain string or JSON: an object creates a subtree and an array
of bytes creates binary data. Fails if PATH already exists or crosses an
existing secret.

Examples:
  passifier secrets create db.password hunter2
  passifier secrets create db '{"user": "root", "password": "hunter2"}'
  passifier secrets create tls.key --file server.key
  cat token | passifier secrets create api.token --stdin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting create command")
		return runMutation(cmd, args, "Creating secret...", "Created", workflows.Create)
	},
}

// mutation is the shape shared by the create and update workflows.
type mutation func(ctx context.Context, opts workflows.Options, path []string, node *store.Node) (*workflows.MutationResult, error)

// runMutation reads PATH and the secret, then applies op.
func runMutation(cmd *cobra.Command, args []string, message, verb string, op mutation) error {
	spinner, cleanup := startSpinner(message, verbose)
	defer cleanup()

	path, err := store.ParsePath(args[0])
	if err != nil {
		return fail(spinner, err)
	}

	var node *store.Node
	pauseSpinner(spinner, func() {
		node, err = readSecret(args, secretFile, secretStdin)
	})
	if err != nil {
		return fail(spinner, err)
	}

	opts, err := resolveOptions(spinner, storeRequest{mutating: true, passphraseFromTTY: secretStdin})
	if err != nil {
		return fail(spinner, err)
	}

	result, err := op(cmd.Context(), opts, path, node)
	if err != nil {
		return fail(spinner, err)
	}

	Logger.Infof("%s %s, %d secrets in store", verb, args[0], result.Remaining)
	spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " " + ui.SecretPath.Sprint(joinPath(result.Path)) + "\n" +
		savedMessage(result.Saved, result.Output)
	return nil
}

func joinPath(path []string) string {
	return strings.Join(path, store.Separator)
}

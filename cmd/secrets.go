package cmd

import (
	"os"

	logger "github.com/m-lima/passifier/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	inputFlag   string
	outputFlag  string
	forceFlag   bool
	excludeFlag []string

	SecretsCmd = &cobra.Command{
		Use:   "secrets",
		Short: "Create, read, update and delete secrets in a store",
		Long: `Loads a secret store from an input, applies one operation and saves the
result to an output.

A store can live in an encrypted file, a directory tree of plain files, or a
plain JSON file. Encrypted stores ask for a passphrase, unless it is given in
the PASSIFIER_PASSPHRASE environment variable.

Without --input the default store from the configuration is used, and is also
written back when --save is omitted. Without any input, commands start from an
empty store.

Examples:
  # Add a secret to the default store
  passifier secrets create db.password hunter2

  # Convert an encrypted store into a directory tree
  passifier secrets print -i secrets.pass -s ./secrets/

  # Read a subtree as JSON
  passifier secrets -i secrets.pass read db`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     os.Stderr,
			}
			cmd.SilenceUsage = true
			Logger.Debugf("Initializing secrets command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SecretsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	SecretsCmd.PersistentFlags().StringVarP(&inputFlag, "input", "i", "", "store to load (file, directory/, file.json)")
	SecretsCmd.PersistentFlags().StringVarP(&outputFlag, "save", "s", "", "store to save the result to")
	SecretsCmd.PersistentFlags().BoolVarP(&forceFlag, "force", "f", false, "overwrite an existing output")
	SecretsCmd.PersistentFlags().StringArrayVar(&excludeFlag, "exclude", nil, "glob skipped when loading a directory (repeatable)")

	SecretsCmd.AddCommand(createCmd)
	SecretsCmd.AddCommand(readCmd)
	SecretsCmd.AddCommand(updateCmd)
	SecretsCmd.AddCommand(deleteCmd)
	SecretsCmd.AddCommand(printCmd)
	SecretsCmd.AddCommand(listCmd)
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	inputFlag = ""
	outputFlag = ""
	forceFlag = false
	excludeFlag = nil
	resetSecretInputState()
	resetReadState()
	resetPrintState()
	resetCobraFlagState(SecretsCmd)
}

// resetCobraFlagState clears the changed marks left by a previous run so the
// next Execute sees a fresh command tree.
func resetCobraFlagState(root *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
		if slice, ok := flag.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		}
	}
	root.PersistentFlags().VisitAll(reset)
	root.Flags().VisitAll(reset)
	for _, sub := range root.Commands() {
		sub.Flags().VisitAll(reset)
	}
}

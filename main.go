package main

import (
	"fmt"
	"os"

	"github.com/m-lima/passifier/cmd"
	"github.com/m-lima/passifier/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "passifier",
	Short: "passifier - a nested, encrypted secret store",
	Long: `passifier keeps secrets in a tree addressed by dotted paths such as
db.password, and stores that tree encrypted with a passphrase.

Features:
  - Create, read, update and delete secrets and whole subtrees
  - Encrypted files, plain directory trees and JSON as storage
  - Convert a store between any of those formats

Usage:
  passifier <command> [flags]

Available Commands:
  secrets    Manage secrets in a store
  config     Manage passifier configuration

Run 'passifier help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("passifier", "small", "cyan", true).Print()
		fmt.Println()
		fmt.Println("Run " + ui.Code.Sprint("passifier --help") + " to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.SecretsCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:"), err)
		}
		os.Exit(1)
	}
}

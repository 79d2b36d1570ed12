package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/m-lima/passifier/internal/configs"
	"github.com/m-lima/passifier/internal/crypter"
	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/source"
	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/ui"
	"github.com/m-lima/passifier/internal/utils"
	"github.com/m-lima/passifier/internal/workflows"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// The spinner and its final message go to stderr so that secrets written to
// stdout can be piped. FinalMSG values do not need trailing newlines.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	return startSpinnerWithFlags(message, verbose, debug)
}

// startSpinnerWithFlags creates and starts a spinner with explicit verbose and debug flags.
// This is useful for commands that have their own flag variables (e.g., config commands).
func startSpinnerWithFlags(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	quiet := !verbose && !debugFlag
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(os.Stderr, finalMsg)
		}
	}

	return s, cleanup
}

// pauseSpinner stops s while fn talks to the user and resumes it afterwards.
func pauseSpinner(s *spinner.Spinner, fn func()) {
	if s == nil || !s.Active() {
		fn()
		return
	}
	s.Stop()
	defer s.Start()
	fn()
}

// storeRequest describes how a secrets subcommand wants its store resolved.
type storeRequest struct {
	// mutating commands warn when nothing will be persisted.
	mutating bool

	// passphraseFromTTY reads the passphrase from the terminal device because
	// stdin carries the secret.
	passphraseFromTTY bool

	// pretty overrides the configured JSON indentation when set.
	pretty *bool
}

// resolveOptions combines the configuration with the persistent secrets flags.
//
// When --input is omitted the configured default store is used. If a mutating
// command omits --save too, the default store is also the output and
// overwriting it is implied.
func resolveOptions(s *spinner.Spinner, req storeRequest) (workflows.Options, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return workflows.Options{}, err
	}
	Logger.Debugf("Loaded configuration from %s", configs.UserPassifierSettings.ConfigFilePath)

	opts := workflows.Options{
		Crypter: crypter.Supplier(promptPassphrase(s, req.passphraseFromTTY), config.CrypterOptions()...),
		Exclude: append(append([]string{}, config.Directory.Exclude...), excludeFlag...),
		Force:   forceFlag,
		Pretty:  config.Output.Pretty,
	}
	if req.pretty != nil {
		opts.Pretty = *req.pretty
	}

	rawInput := inputFlag
	fromDefault := false
	if rawInput == "" && config.Store.Default != "" {
		rawInput = config.Store.Default
		fromDefault = true
		Logger.Infof("Using default store %s", rawInput)
	}

	if rawInput != "" {
		if opts.Input, err = source.Parse(rawInput); err != nil {
			return workflows.Options{}, err
		}
		Logger.Debugf("Input: %s (%s)", opts.Input, opts.Input.Kind)
	}

	if outputFlag != "" {
		if opts.Output, err = source.Parse(outputFlag); err != nil {
			return workflows.Options{}, err
		}
	} else if fromDefault && req.mutating {
		opts.Output = opts.Input
		opts.Force = true
	}
	if opts.Output != nil {
		Logger.Debugf("Output: %s (%s), force=%t", opts.Output, opts.Output.Kind, opts.Force)
	}

	if req.mutating && opts.Output == nil {
		pauseSpinner(s, func() {
			Logger.WarnfUser("No output given, changes will not be saved (use %s)", ui.Flag.Sprint("--save"))
		})
	}

	return opts, nil
}

// promptPassphrase supplies the passphrase from PASSIFIER_PASSPHRASE or asks
// for it. A failed prompt aborts instead of returning an error.
func promptPassphrase(s *spinner.Spinner, fromTTY bool) crypter.PassphraseSupplier {
	return func() (string, bool) {
		if passphrase, ok := utils.LookupPassphrase(); ok {
			Logger.Debugf("Using passphrase from %s", utils.PassphraseEnv)
			return passphrase, true
		}

		read := utils.ReadPassphrase
		if fromTTY {
			read = utils.ReadPassphraseFromTTY
		}

		var passphrase []byte
		var err error
		pauseSpinner(s, func() {
			passphrase, err = read("Passphrase: ")
		})
		if err != nil {
			Logger.Warnf("Passphrase prompt failed: %v", err)
			return "", false
		}
		return string(passphrase), true
	}
}

// readSecret builds the node to store from --file, --stdin or the SECRET
// argument. Raw bytes become a single entry; the argument may be JSON.
func readSecret(args []string, file string, stdin bool) (*store.Node, error) {
	given := 0
	if len(args) > 1 {
		given++
	}
	if file != "" {
		given++
	}
	if stdin {
		given++
	}
	switch {
	case given == 0:
		return nil, fmt.Errorf("no secret given: pass SECRET, --file or --stdin")
	case given > 1:
		return nil, fmt.Errorf("only one of SECRET, --file or --stdin may be given")
	}

	switch {
	case file != "":
		Logger.Debugf("Reading secret from %s", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
		}
		return store.Leaf(store.EntryFromBytes(data)), nil
	case stdin:
		Logger.Debugf("Reading secret from stdin")
		if utils.IsTerminal() {
			Logger.WarnfUser("Reading the secret from the terminal, finish with Ctrl-D")
		}
		data, err := utils.ReadStdin()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
		}
		return store.Leaf(store.EntryFromBytes(data)), nil
	default:
		return store.ParseSecret(args[1]), nil
	}
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

// fail sets the spinner's final message from err and returns it marked as
// reported.
func fail(s *spinner.Spinner, err error) error {
	Logger.Infof("Command failed: %v", err)
	msg := ui.Error.Sprint("✗") + " " + describeError(err)
	if hint := errorHint(err); hint != "" {
		msg += "\n" + ui.Info.Sprint("→") + " " + hint
	}
	if verbose || debug {
		msg += "\n" + ui.Muted.Sprint(err.Error())
	}
	s.FinalMSG = msg
	return reportedError{err}
}

// describeError maps the error taxonomy to user-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrDecryptFailed):
		return "Wrong passphrase or tampered store"
	case errors.Is(err, kerrors.ErrInflation), errors.Is(err, kerrors.ErrSerialization):
		return "Corrupt store"
	case errors.Is(err, kerrors.ErrEncryptFailed):
		return "Could not encrypt the store"
	case errors.Is(err, kerrors.ErrNoPassphrase):
		return "No passphrase given"
	case errors.Is(err, kerrors.ErrOutputExists):
		return "Output already exists"
	case errors.Is(err, kerrors.ErrNotImplemented):
		return "Object storage is not supported"
	case errors.Is(err, kerrors.ErrNotFound):
		return "No such secret"
	case errors.Is(err, kerrors.ErrConflict):
		return "Secret already exists"
	case errors.Is(err, kerrors.ErrEmptyPath):
		return "Secret path is empty"
	case errors.Is(err, kerrors.ErrEmptySecret):
		return "Secret is empty"
	case errors.Is(err, kerrors.ErrInvalidSource):
		return "Invalid store location"
	case errors.Is(err, kerrors.ErrConfig):
		return "Invalid configuration"
	case errors.Is(err, kerrors.ErrIO):
		return "Disk error"
	default:
		return capitalize(err.Error())
	}
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrOutputExists):
		return "Run again with " + ui.Flag.Sprint("--force") + " to overwrite it"
	case errors.Is(err, kerrors.ErrConflict):
		return "Use " + ui.Code.Sprint("passifier secrets update") + " to replace it"
	case errors.Is(err, kerrors.ErrNoPassphrase):
		return "Set " + ui.Flag.Sprint(utils.PassphraseEnv) + " when no terminal is available"
	case errors.Is(err, kerrors.ErrConfig):
		return "Check " + ui.Path.Sprint(configs.UserPassifierSettings.ConfigFilePath)
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// savedMessage describes where a store went after a command.
func savedMessage(saved bool, output *source.Source) string {
	if !saved || output == nil {
		return ui.Warning.Sprint("⚠") + " Store not saved"
	}
	return ui.Success.Sprint("✓") + " Saved to " + ui.Path.Sprint(output.String())
}

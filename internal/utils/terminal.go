package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/term"
)

// PassphraseEnv, when set, supplies the passphrase without prompting.
const PassphraseEnv = "PASSIFIER_PASSPHRASE"

// ttyPath names the controlling terminal, which stays readable when stdin
// carries a piped secret.
func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}

// ReadPassphrase asks for a passphrase on stdin without echoing it.
func ReadPassphrase(prompt string) ([]byte, error) {
	return readHidden(os.Stdin, os.Stderr, prompt)
}

// ReadPassphraseFromTTY asks for a passphrase on the terminal device instead of
// stdin.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	tty, err := os.Open(ttyPath())
	if err != nil {
		return nil, fmt.Errorf("no terminal for the passphrase prompt (hint: set %s): %w", PassphraseEnv, err)
	}
	defer tty.Close()

	return readHidden(tty, os.Stderr, prompt)
}

// readHidden writes prompt to w and reads one line from in with echo off.
func readHidden(in *os.File, w io.Writer, prompt string) ([]byte, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal (hint: set %s)", in.Name(), PassphraseEnv)
	}

	fmt.Fprint(w, prompt)
	passphrase, err := term.ReadPassword(fd)
	// The newline typed by the user is not echoed.
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return passphrase, nil
}

// LookupPassphrase returns the passphrase from the environment, if set.
func LookupPassphrase() (string, bool) {
	return os.LookupEnv(PassphraseEnv)
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-lima/passifier/internal/configs"
	"github.com/m-lima/passifier/internal/utils"

	"github.com/spf13/cobra"
)

const testPassphrase = "correct horse battery staple"

// setupTestEnvironment points the configuration at a temporary directory,
// supplies the passphrase through the environment and resets command state.
// It returns the temporary directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserPassifierSettings
	configs.UserPassifierSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		ConfigFilePath:  filepath.Join(tempDir, "config", "config.toml"),
	}
	t.Cleanup(func() {
		configs.UserPassifierSettings = originalSettings
		ResetGlobalState()
		ResetConfigState()
	})

	t.Setenv(utils.PassphraseEnv, testPassphrase)
	ResetGlobalState()
	ResetConfigState()
	return tempDir
}

// setDefaultStore writes a configuration whose default store is location.
func setDefaultStore(t *testing.T, location string) {
	t.Helper()
	config := configs.Default()
	config.Store.Default = location
	if err := configs.SaveConfig(config); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	collect := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		out <- buf.String()
	}
	go collect(stdoutReader, stdoutChan)
	go collect(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// captureStdout runs fn and returns only what it wrote to stdout.
func captureStdout(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	devNull, _ := os.Open(os.DevNull)
	defer devNull.Close()

	os.Stdout = stdoutWriter
	os.Stderr = devNull

	out := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		out <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-out, err
}

// createTestCLI builds a root command holding the given group, ready to run args.
func createTestCLI(group *cobra.Command, args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "passifier",
		Short: "passifier - a nested secret store",
	}
	rootCmd.AddCommand(group)
	rootCmd.SetArgs(append([]string{group.Name()}, args...))
	return rootCmd
}

// runSecrets executes `passifier secrets args...` and returns stdout and stderr combined.
func runSecrets(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	return captureOutput(func() error {
		return createTestCLI(SecretsCmd, args...).Execute()
	})
}

// readSecrets executes `passifier secrets args...` and returns stdout only.
func readSecrets(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	return captureStdout(func() error {
		return createTestCLI(SecretsCmd, args...).Execute()
	})
}

// runConfig executes `passifier config args...` and returns stdout and stderr combined.
func runConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetConfigState()
	return captureOutput(func() error {
		return createTestCLI(ConfigCmd, args...).Execute()
	})
}

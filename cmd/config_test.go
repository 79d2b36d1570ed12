package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/m-lima/passifier/internal/configs"
)

func TestConfigInit(t *testing.T) {
	setupTestEnvironment(t)
	path := configs.UserPassifierSettings.ConfigFilePath

	output, err := runConfig(t, "init", "--default-store", "/tmp/secrets.pass")
	if err != nil {
		t.Fatalf("Config init failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Configuration written") {
		t.Errorf("Expected confirmation, got: %s", output)
	}

	config, err := configs.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if config.Store.Default != "/tmp/secrets.pass" {
		t.Errorf("Expected default store to be saved, got %q", config.Store.Default)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected config file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %o", info.Mode().Perm())
	}

	output, err = runConfig(t, "init")
	if err != nil {
		t.Fatalf("Config init failed: %v", err)
	}
	if !strings.Contains(output, "already exists") {
		t.Errorf("Expected existing config message, got: %s", output)
	}

	if output, err := runConfig(t, "init", "--force"); err != nil {
		t.Fatalf("Forced config init failed: %v\nOutput: %s", err, output)
	}
	config, err = configs.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load written config: %v", err)
	}
	if config.Store.Default != "" {
		t.Errorf("Expected --force to write defaults, got %q", config.Store.Default)
	}
}

func TestConfigShowJSON(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runConfig(t, "show", "--json")
	if err != nil {
		t.Fatalf("Config show failed: %v\nOutput: %s", err, output)
	}

	var shown configs.Config
	if err := json.Unmarshal([]byte(output), &shown); err != nil {
		t.Fatalf("Expected JSON output, got: %s", output)
	}
	if shown.Crypto.Cipher != "aes-256-gcm" || shown.Crypto.CompressionLevel != 8 {
		t.Errorf("Expected defaults, got: %+v", shown)
	}
}

func TestConfigShowRejectsInvalid(t *testing.T) {
	setupTestEnvironment(t)
	path := configs.UserPassifierSettings.ConfigFilePath
	if err := os.MkdirAll(configs.UserPassifierSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[crypto]\ncipher = \"rot13\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := runConfig(t, "show"); err == nil {
		t.Error("Expected invalid config to fail")
	}
}

package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/m-lima/passifier/internal/crypter"
	kerrors "github.com/m-lima/passifier/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

type Config struct {
	Store     StoreConfig     `toml:"store" json:"store"`
	Crypto    CryptoConfig    `toml:"crypto" json:"crypto"`
	Directory DirectoryConfig `toml:"directory" json:"directory"`
	Output    OutputConfig    `toml:"output" json:"output"`
}

type StoreConfig struct {
	// Default is the source used when --input is omitted.
	Default string `toml:"default" json:"default"`
}

type CryptoConfig struct {
	Cipher           string `toml:"cipher" json:"cipher"`
	CompressionLevel int    `toml:"compression_level" json:"compression_level"`
}

type DirectoryConfig struct {
	// Exclude holds doublestar globs, matched against slash-separated paths
	// relative to the directory root.
	Exclude []string `toml:"exclude" json:"exclude"`
}

type OutputConfig struct {
	Pretty bool `toml:"pretty" json:"pretty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Crypto: CryptoConfig{
			Cipher:           string(crypter.DefaultCipher),
			CompressionLevel: crypter.DefaultCompressionLevel,
		},
		Directory: DirectoryConfig{
			Exclude: []string{".git/**"},
		},
	}
}

// LoadConfig loads the user configuration from the config file, falling back
// to the defaults when it does not exist.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(UserPassifierSettings.ConfigFilePath)
}

// LoadConfigFrom reads path on top of the defaults and validates the result.
func LoadConfigFrom(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	undecoded, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w: %v", path, kerrors.ErrInvalidConfig, err)
	}
	if len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %s: %w", path, strings.Join(undecoded, ", "), kerrors.ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(config *Config) error {
	return SaveConfigTo(UserPassifierSettings.ConfigFilePath, config)
}

func SaveConfigTo(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate rejects unknown ciphers, out-of-range compression levels and
// malformed exclusion globs.
func (c *Config) Validate() error {
	if !crypter.ValidCipher(crypter.Cipher(c.Crypto.Cipher)) {
		return fmt.Errorf("unknown cipher %q: %w", c.Crypto.Cipher, kerrors.ErrInvalidConfig)
	}
	if !crypter.ValidCompressionLevel(c.Crypto.CompressionLevel) {
		return fmt.Errorf("compression level %d outside -2..9: %w", c.Crypto.CompressionLevel, kerrors.ErrInvalidConfig)
	}
	for _, pattern := range c.Directory.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("malformed exclude pattern %q: %w", pattern, kerrors.ErrInvalidConfig)
		}
	}
	return nil
}

// CrypterOptions translates the crypto section into crypter options.
func (c *Config) CrypterOptions() []crypter.Option {
	return []crypter.Option{
		crypter.WithCipher(crypter.Cipher(c.Crypto.Cipher)),
		crypter.WithCompressionLevel(c.Crypto.CompressionLevel),
	}
}

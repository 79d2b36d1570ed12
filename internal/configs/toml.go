package configs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/m-lima/passifier/internal/utils"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data and atomically replaces filePath with it, creating the
// parent directory when needed.
func SaveTOML(filePath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return err
	}

	return utils.WriteFileAtomic(filePath, buf.Bytes(), 0600)
}

// LoadTOML loads a TOML file into a struct. Keys in the file that data has no
// field for are returned as undecoded.
func LoadTOML(filePath string, data any) ([]string, error) {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return nil, err
	}

	var undecoded []string
	for _, key := range meta.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

package source

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/utils"
)

const (
	filePerm = 0600
	dirPerm  = 0700
)

func loadFile(path string, opts Options) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
	}

	c, err := opts.crypter()
	if err != nil {
		return nil, err
	}

	st := store.New()
	if err := c.Decrypt(data, st); err != nil {
		return nil, fmt.Errorf("decrypting %s: %w", path, err)
	}
	return st, nil
}

func saveFile(path string, st *store.Store, opts Options) error {
	c, err := opts.crypter()
	if err != nil {
		return err
	}

	data, err := c.Encrypt(st)
	if err != nil {
		return fmt.Errorf("encrypting store: %w", err)
	}

	return writeBlob(path, data)
}

// writeBlob atomically replaces path with data, creating missing parents.
func writeBlob(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}
	if err := utils.WriteFileAtomic(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}
	return nil
}

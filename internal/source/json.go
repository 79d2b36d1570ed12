package source

import (
	"encoding/json"
	"fmt"
	"os"

	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"
)

func loadJSON(path string) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
	}

	st := store.New()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", path, kerrors.ErrSerialization, err)
	}
	return st, nil
}

func saveJSON(path string, st *store.Store, opts Options) error {
	data, err := MarshalJSON(st, opts.Pretty)
	if err != nil {
		return err
	}
	return writeBlob(path, data)
}

// MarshalJSON renders v in its flattened JSON form, indented when pretty.
func MarshalJSON(v any, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrSerialization, err)
	}
	return data, nil
}

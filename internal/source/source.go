package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-lima/passifier/internal/crypter"
	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"
	"github.com/m-lima/passifier/internal/utils"
)

// Kind is the closed set of storage backends.
type Kind int

const (
	// File is a single encrypted blob.
	File Kind = iota
	// Directory maps files to leaves and subdirectories to branches, unencrypted.
	Directory
	// JSON is the plain flattened JSON form of the tree, unencrypted.
	JSON
	// Object is a remote object store location. It is recognized but not available.
	Object
)

const objectScheme = "s3://"

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	case JSON:
		return "json"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Encrypted reports whether the backend needs a crypter.
func (k Kind) Encrypted() bool {
	return k == File || k == Object
}

type Source struct {
	Kind     Kind
	Location string
}

// Parse classifies raw: an s3:// URL is Object, a .json path is JSON, a path with
// a trailing separator or naming an existing directory is Directory, and anything
// else is File. A leading ~/ expands to the home directory.
func Parse(raw string) (*Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty source: %w", kerrors.ErrInvalidSource)
	}

	if strings.HasPrefix(raw, objectScheme) {
		location := strings.TrimPrefix(raw, objectScheme)
		if strings.Trim(location, "/") == "" {
			return nil, fmt.Errorf("missing bucket in %q: %w", raw, kerrors.ErrInvalidSource)
		}
		return &Source{Kind: Object, Location: location}, nil
	}

	path, err := expandHome(raw)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return &Source{Kind: JSON, Location: filepath.Clean(path)}, nil
	case strings.HasSuffix(path, "/"), strings.HasSuffix(path, string(os.PathSeparator)), utils.IsDir(path):
		return &Source{Kind: Directory, Location: filepath.Clean(path)}, nil
	default:
		return &Source{Kind: File, Location: filepath.Clean(path)}, nil
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func (s *Source) String() string {
	if s.Kind == Object {
		return objectScheme + s.Location
	}
	return s.Location
}

// Exists reports whether the source location is already occupied.
func (s *Source) Exists() (bool, error) {
	if s.Kind == Object {
		return false, kerrors.ErrNotImplemented
	}
	return utils.PathExists(s.Location)
}

// Options carries what the backends need beyond the location.
type Options struct {
	// Crypter supplies the cipher for encrypted backends. It is only called when
	// one is needed.
	Crypter func() (*crypter.Crypter, error)

	// Exclude lists doublestar globs skipped when loading a directory.
	Exclude []string

	// Force allows Save to replace an existing target.
	Force bool

	// Pretty indents JSON output.
	Pretty bool
}

func (o Options) crypter() (*crypter.Crypter, error) {
	if o.Crypter == nil {
		return nil, kerrors.ErrNoPassphrase
	}
	return o.Crypter()
}

// Load reads a whole store from src.
func Load(ctx context.Context, src *Source, opts Options) (*store.Store, error) {
	switch src.Kind {
	case File:
		return loadFile(src.Location, opts)
	case Directory:
		return loadDirectory(ctx, src.Location, opts)
	case JSON:
		return loadJSON(src.Location)
	case Object:
		return nil, fmt.Errorf("loading %s: %w", src, kerrors.ErrNotImplemented)
	default:
		return nil, fmt.Errorf("unknown source kind %v: %w", src.Kind, kerrors.ErrInvalidSource)
	}
}

// Save writes st to dst. An existing target is only replaced when opts.Force is
// set; otherwise Save fails with ErrOutputExists.
func Save(ctx context.Context, dst *Source, st *store.Store, opts Options) error {
	if dst.Kind == Object {
		return fmt.Errorf("saving %s: %w", dst, kerrors.ErrNotImplemented)
	}

	if !opts.Force {
		exists, err := dst.Exists()
		if err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
		}
		if exists {
			return fmt.Errorf("%s: %w", dst, kerrors.ErrOutputExists)
		}
	}

	switch dst.Kind {
	case File:
		return saveFile(dst.Location, st, opts)
	case Directory:
		return saveDirectory(ctx, dst.Location, st, opts.Exclude)
	case JSON:
		return saveJSON(dst.Location, st, opts)
	default:
		return fmt.Errorf("unknown source kind %v: %w", dst.Kind, kerrors.ErrInvalidSource)
	}
}

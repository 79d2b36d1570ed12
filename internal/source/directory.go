package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// loadDirectory maps the tree under root into a store. Files become leaves,
// plain text when their content is valid UTF-8; subdirectories become branches
// and empty ones are skipped. Excluded paths are matched relative to root with
// forward slashes.
func loadDirectory(ctx context.Context, root string, opts Options) (*store.Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", kerrors.ErrReadFailed, root)
	}

	m, err := readDirectory(ctx, root, "", opts.Exclude)
	if err != nil {
		return nil, err
	}
	return store.FromMap(m), nil
}

func readDirectory(ctx context.Context, dir, rel string, exclude []string) (store.Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
	}

	m := store.Map{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		relPath := path.Join(rel, name)
		if excluded(relPath, exclude) {
			continue
		}

		full := filepath.Join(dir, name)
		info, err := os.Stat(full)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
		}

		if info.IsDir() {
			sub, err := readDirectory(ctx, full, relPath, exclude)
			if err != nil {
				return nil, err
			}
			if len(sub) > 0 {
				m[name] = store.Branch(sub)
			}
			continue
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
		}
		m[name] = store.Leaf(store.EntryFromBytes(data))
	}
	return m, nil
}

func excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// saveDirectory replaces the tree at root with st. Every leaf becomes a file
// and every branch a directory. Paths matching exclude are never written, and
// the ones already on disk survive the save.
//
// The new tree is built next to root and swapped in, so a failed save leaves
// root as it was.
func saveDirectory(ctx context.Context, root string, st *store.Store, exclude []string) error {
	if err := checkNames(st.Root(), nil); err != nil {
		return err
	}

	parent, base := filepath.Dir(root), filepath.Base(root)
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}

	staging := filepath.Join(parent, "."+base+"."+uuid.NewString()+".tmp")
	if err := writeDirectory(ctx, staging, "", st.Root(), exclude); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	kept, err := excludedEntries(root, "", exclude)
	if err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	if err := moveEntries(root, staging, kept); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	if err := swapDirectory(root, staging); err != nil {
		// Hand the excluded entries back before dropping the staging tree.
		_ = moveEntries(staging, root, kept)
		_ = os.RemoveAll(staging)
		return err
	}
	return nil
}

// checkNames rejects keys that cannot be a single file name.
func checkNames(m store.Map, prefix []string) error {
	for name, n := range m {
		key := append(append([]string{}, prefix...), name)
		if name == "" || name == "." || name == ".." ||
			strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
			return fmt.Errorf("%w: %q is not a valid file name", kerrors.ErrWriteFailed, strings.Join(key, store.Separator))
		}
		if sub, ok := n.Branch(); ok {
			if err := checkNames(sub, key); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDirectory(ctx context.Context, dir, rel string, m store.Map, exclude []string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}

	for name, n := range m {
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath := path.Join(rel, name)
		if excluded(relPath, exclude) {
			continue
		}

		full := filepath.Join(dir, name)
		if sub, ok := n.Branch(); ok {
			if err := writeDirectory(ctx, full, relPath, sub, exclude); err != nil {
				return err
			}
			continue
		}

		e, _ := n.Leaf()
		if err := os.WriteFile(full, e.Bytes(), filePerm); err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
		}
	}
	return nil
}

// excludedEntries lists the slash-separated paths under dir that match
// exclude, without descending into matched directories. A missing dir has
// none.
func excludedEntries(dir, rel string, exclude []string) ([]string, error) {
	if len(exclude) == 0 {
		return nil, nil
	}

	if rel == "" {
		info, err := os.Stat(dir)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
		}
		if !info.IsDir() {
			return nil, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadFailed, err)
	}

	var found []string
	for _, entry := range entries {
		relPath := path.Join(rel, entry.Name())
		if excluded(relPath, exclude) {
			found = append(found, relPath)
			continue
		}
		if entry.IsDir() {
			sub, err := excludedEntries(filepath.Join(dir, entry.Name()), relPath, exclude)
			if err != nil {
				return nil, err
			}
			found = append(found, sub...)
		}
	}
	return found, nil
}

// moveEntries renames each relative path from one tree into the other. Parents
// are created up front so a conflict fails before anything moves; a failed
// rename puts back what already moved.
func moveEntries(from, to string, rels []string) error {
	for _, rel := range rels {
		parent := filepath.Dir(filepath.Join(to, filepath.FromSlash(rel)))
		if err := os.MkdirAll(parent, dirPerm); err != nil {
			return fmt.Errorf("%w: keeping excluded %s: %w", kerrors.ErrWriteFailed, rel, err)
		}
	}

	for i, rel := range rels {
		native := filepath.FromSlash(rel)
		if err := os.Rename(filepath.Join(from, native), filepath.Join(to, native)); err != nil {
			for _, done := range rels[:i] {
				done := filepath.FromSlash(done)
				_ = os.Rename(filepath.Join(to, done), filepath.Join(from, done))
			}
			return fmt.Errorf("%w: keeping excluded %s: %w", kerrors.ErrWriteFailed, rel, err)
		}
	}
	return nil
}

// swapDirectory puts staging in place of root and removes the old root.
func swapDirectory(root, staging string) error {
	old := staging + ".old"
	hadRoot := true
	if err := os.Rename(root, old); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
		}
		hadRoot = false
	}

	if err := os.Rename(staging, root); err != nil {
		if hadRoot {
			_ = os.Rename(old, root)
		}
		return fmt.Errorf("%w: %w", kerrors.ErrWriteFailed, err)
	}

	if hadRoot {
		if err := os.RemoveAll(old); err != nil {
			return fmt.Errorf("%w: removing replaced tree: %w", kerrors.ErrWriteFailed, err)
		}
	}
	return nil
}

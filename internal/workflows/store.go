package workflows

import (
	"context"
	"fmt"

	"github.com/m-lima/passifier/internal/crypter"
	"github.com/m-lima/passifier/internal/source"
	"github.com/m-lima/passifier/internal/store"
)

// Options configures where a store comes from and where it goes.
type Options struct {
	// Input is the source to load. A nil Input starts from an empty store.
	Input *source.Source

	// Output is where the store is saved after the operation. A nil Output
	// persists nothing.
	Output *source.Source

	// Crypter supplies the cipher for encrypted sources. It is called at most
	// once per source that needs it.
	Crypter func() (*crypter.Crypter, error)

	// Exclude lists doublestar globs skipped when loading a directory.
	Exclude []string

	// Force allows replacing an existing output.
	Force bool

	// Pretty indents JSON output.
	Pretty bool
}

func (o Options) sourceOptions() source.Options {
	return source.Options{
		Crypter: o.Crypter,
		Exclude: o.Exclude,
		Force:   o.Force,
		Pretty:  o.Pretty,
	}
}

// Load returns the store at opts.Input, or a new empty store without an input.
func Load(ctx context.Context, opts Options) (*store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Input == nil {
		return store.New(), nil
	}

	st, err := source.Load(ctx, opts.Input, opts.sourceOptions())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.Input, err)
	}
	return st, nil
}

// Save writes st to opts.Output. It reports whether anything was written.
func Save(ctx context.Context, opts Options, st *store.Store) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if opts.Output == nil {
		return false, nil
	}

	if err := source.Save(ctx, opts.Output, st, opts.sourceOptions()); err != nil {
		return false, fmt.Errorf("saving %s: %w", opts.Output, err)
	}
	return true, nil
}

// MutationResult contains the outcome of create, update and delete.
type MutationResult struct {
	// Path is the secret path that was changed.
	Path []string

	// Saved indicates whether the store was written to the output.
	Saved bool

	// Output is where the store was written, if anywhere.
	Output *source.Source

	// Remaining is the number of leaves left in the store.
	Remaining int
}

// mutate loads the store, applies op and saves the result.
func mutate(ctx context.Context, opts Options, path []string, op func(*store.Store) error) (*MutationResult, error) {
	st, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := op(st); err != nil {
		return nil, err
	}

	saved, err := Save(ctx, opts, st)
	if err != nil {
		return nil, err
	}

	result := &MutationResult{
		Path:      path,
		Saved:     saved,
		Remaining: len(st.List()),
	}
	if saved {
		result.Output = opts.Output
	}
	return result, nil
}

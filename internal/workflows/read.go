package workflows

import (
	"context"

	"github.com/m-lima/passifier/internal/store"
)

// ReadResult contains the outcome of a read operation.
type ReadResult struct {
	// Node is the secret or subtree at the requested path.
	Node store.Node

	// Saved indicates whether the store was also written to an output.
	Saved bool
}

// Read returns the node at path without modifying the store. When an output is
// configured the unchanged store is still written to it.
//
// Returns ErrNotFound if path does not exist.
func Read(ctx context.Context, opts Options, path []string) (*ReadResult, error) {
	st, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	node, err := st.Read(path)
	if err != nil {
		return nil, err
	}

	saved, err := Save(ctx, opts, st)
	if err != nil {
		return nil, err
	}

	return &ReadResult{Node: node, Saved: saved}, nil
}

// PrintResult contains the whole loaded store.
type PrintResult struct {
	Store *store.Store
	Saved bool
}

// Print loads the store for display. With an output configured this doubles as
// a conversion between backends.
func Print(ctx context.Context, opts Options) (*PrintResult, error) {
	st, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	saved, err := Save(ctx, opts, st)
	if err != nil {
		return nil, err
	}

	return &PrintResult{Store: st, Saved: saved}, nil
}

// ListResult contains the dotted path of every secret.
type ListResult struct {
	Paths []string
	Saved bool
}

func List(ctx context.Context, opts Options) (*ListResult, error) {
	result, err := Print(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &ListResult{Paths: result.Store.List(), Saved: result.Saved}, nil
}

package workflows

import (
	"context"

	"github.com/m-lima/passifier/internal/store"
)

// Create adds node at path and saves the store.
//
// Returns ErrEmptyPath for an empty path and ErrEmptySecret for a node with
// nothing in it. Returns ErrConflict if path is already occupied or crosses an
// existing leaf.
func Create(ctx context.Context, opts Options, path []string, node *store.Node) (*MutationResult, error) {
	return mutate(ctx, opts, path, func(st *store.Store) error {
		return st.Create(path, node)
	})
}

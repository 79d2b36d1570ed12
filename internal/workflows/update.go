package workflows

import (
	"context"

	"github.com/m-lima/passifier/internal/store"
)

// Update replaces the node at path and saves the store. An empty branch deletes
// path instead.
//
// Returns ErrNotFound if path does not exist.
func Update(ctx context.Context, opts Options, path []string, node *store.Node) (*MutationResult, error) {
	return mutate(ctx, opts, path, func(st *store.Store) error {
		return st.Update(path, node)
	})
}

package workflows

import (
	"context"

	"github.com/m-lima/passifier/internal/store"
)

// Delete removes the node at path, prunes ancestors left empty and saves the
// store.
//
// Returns ErrNotFound if path does not exist.
func Delete(ctx context.Context, opts Options, path []string) (*MutationResult, error) {
	return mutate(ctx, opts, path, func(st *store.Store) error {
		return st.Delete(path)
	})
}

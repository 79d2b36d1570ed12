// Package workflows provides high-level orchestration for passifier commands.
//
// Every command follows the same shape: load the store from its input, apply
// one operation, and save the store to its output. Workflows own that sequence
// so the cmd/ package stays a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// # Available Workflows
//
//   - Create: adds a secret, creating intermediate branches
//   - Read: returns a secret or subtree
//   - Update: replaces a secret; an empty branch deletes it
//   - Delete: removes a secret and prunes empty ancestors
//   - Print: returns the whole store, optionally converting it to the output
//   - List: returns every secret path
//
// Without an input a workflow starts from an empty store; without an output
// nothing is persisted.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Read(ctx, opts, path)
//	if errors.Is(err, kerrors.ErrNotFound) {
//	    // Show user-friendly message
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
package workflows

// Package store is the secret tree: a nested map of string keys to Entry values
// with create, read, update and delete semantics over dotted paths.
//
// A path moves through a simple lifecycle: absent, created, updated any number of
// times, deleted. Creating an occupied path is a conflict, and updating or
// deleting an absent one is not found. Updating with an empty branch deletes.
// Deleting prunes every ancestor the removal leaves empty, so the tree never holds
// an empty branch between operations.
package store

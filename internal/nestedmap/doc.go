// Package nestedmap implements a generic recursive container addressed by paths.
//
// A Map holds Nodes, and every Node is either a Leaf wrapping a value or a Branch
// wrapping another Map. Ownership is a strict tree: each Branch owns its map and
// nothing is shared.
//
// Paths are slices of keys. GetFrom, GetMutFrom, RemoveFrom and InsertInto walk a
// path one segment at a time; an empty path always fails, and so does any path
// that tries to descend through a Leaf. InsertInto is the only operation that
// creates structure: missing intermediate segments become empty Branches.
// RemoveFrom never prunes the ancestors it leaves empty.
//
// Nodes encode to JSON and msgpack without a variant tag. See codec.go.
package nestedmap

package store

import (
	"encoding/json"
	"strings"

	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/nestedmap"

	"github.com/vmihailenco/msgpack/v5"
)

type (
	Map  = nestedmap.Map[string, Entry]
	Node = nestedmap.Node[string, Entry]
)

// Leaf wraps an entry in a node.
func Leaf(e Entry) *Node {
	return nestedmap.NewLeaf[string](e)
}

// Branch wraps a map in a node. A nil map yields an empty branch.
func Branch(m Map) *Node {
	return nestedmap.NewBranch(m)
}

// Store is a tree of secrets addressed by dotted paths. It is not safe for
// concurrent use.
type Store struct {
	root Map
}

func New() *Store {
	return &Store{root: Map{}}
}

// FromMap takes ownership of m. Empty branches are dropped.
func FromMap(m Map) *Store {
	if m == nil {
		m = Map{}
	}
	return &Store{root: nestedmap.Compact(m)}
}

// Root exposes the underlying tree for read-only traversal.
func (s *Store) Root() Map {
	return s.root
}

func (s *Store) Len() int {
	return len(s.root)
}

func (s *Store) IsEmpty() bool {
	return len(s.root) == 0
}

// Create stores node at path, creating intermediate branches as needed.
//
// It fails with ErrEmptySecret when node carries nothing, and with ErrConflict when
// path is already occupied or when any segment before the last holds a leaf.
func (s *Store) Create(path []string, node *Node) error {
	if len(path) == 0 {
		return kerrors.ErrEmptyPath
	}
	if isEmpty(node) {
		return kerrors.ErrEmptySecret
	}

	cur := s.root
	for _, key := range path[:len(path)-1] {
		n, ok := cur.Get(key)
		if !ok {
			break
		}
		b, isBranch := n.Branch()
		if !isBranch {
			return kerrors.ErrConflict
		}
		cur = b
	}
	if s.root.ContainsPath(path) {
		return kerrors.ErrConflict
	}

	if !s.root.InsertInto(path, node) {
		return kerrors.ErrConflict
	}
	return nil
}

// Read returns the node at path. The returned node shares structure with the
// store and must not be modified.
func (s *Store) Read(path []string) (Node, error) {
	if len(path) == 0 {
		return Node{}, kerrors.ErrEmptyPath
	}
	n, ok := s.root.GetFrom(path)
	if !ok {
		return Node{}, kerrors.ErrNotFound
	}
	return n, nil
}

// Update overwrites the node at path. An empty branch deletes the path instead.
func (s *Store) Update(path []string, node *Node) error {
	if len(path) == 0 {
		return kerrors.ErrEmptyPath
	}
	if isEmpty(node) {
		return s.Delete(path)
	}
	if !s.root.ContainsPath(path) {
		return kerrors.ErrNotFound
	}
	if !s.root.InsertInto(path, node) {
		return kerrors.ErrNotFound
	}
	return nil
}

// Delete removes the node at path and prunes every ancestor left empty.
func (s *Store) Delete(path []string) error {
	if len(path) == 0 {
		return kerrors.ErrEmptyPath
	}
	if _, ok := s.root.RemoveFrom(path); !ok {
		return kerrors.ErrNotFound
	}
	s.prune(path[:len(path)-1])
	return nil
}

// prune climbs from the deepest ancestor in path toward the root, removing empty
// branches until it meets one that still has entries.
func (s *Store) prune(path []string) {
	for depth := len(path); depth > 0; depth-- {
		n, ok := s.root.GetFrom(path[:depth])
		if !ok || !n.IsEmptyBranch() {
			return
		}
		s.root.RemoveFrom(path[:depth])
	}
}

// List returns the dotted path of every leaf, sorted.
func (s *Store) List() []string {
	var paths []string
	_ = nestedmap.Walk(s.root, func(path []string, _ Entry) error {
		paths = append(paths, strings.Join(path, Separator))
		return nil
	})
	return paths
}

// Walk visits every leaf in sorted path order.
func (s *Store) Walk(fn func(path []string, e Entry) error) error {
	return nestedmap.Walk(s.root, fn)
}

func (s *Store) Equal(other *Store) bool {
	return nestedmap.EqualFunc(s.root, other.root, Entry.Equal)
}

func (s *Store) String() string {
	return s.root.String()
}

func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.root)
}

func (s *Store) UnmarshalJSON(data []byte) error {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = *FromMap(m)
	return nil
}

func (s *Store) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(s.root)
}

func (s *Store) DecodeMsgpack(dec *msgpack.Decoder) error {
	var m Map
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*s = *FromMap(m)
	return nil
}

// isEmpty reports whether node would add nothing to the tree once its empty
// sub-branches are dropped.
func isEmpty(node *Node) bool {
	if node == nil {
		return true
	}
	b, ok := node.Branch()
	if !ok {
		return false
	}
	return len(nestedmap.Compact(b)) == 0
}

package nestedmap

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Map is a container of nodes keyed by K. A nil Map reads as empty but cannot be
// written to.
type Map[K comparable, V any] map[K]*Node[K, V]

// Node is either a Leaf holding a value or a Branch holding a nested Map.
type Node[K comparable, V any] struct {
	value  V
	branch Map[K, V]
}

// NewLeaf returns a terminal node wrapping v.
func NewLeaf[K comparable, V any](v V) *Node[K, V] {
	return &Node[K, V]{value: v}
}

// NewBranch returns a node that owns m. A nil m becomes an empty branch.
func NewBranch[K comparable, V any](m Map[K, V]) *Node[K, V] {
	if m == nil {
		m = Map[K, V]{}
	}
	return &Node[K, V]{branch: m}
}

// IsBranch reports whether n holds a nested map rather than a value.
func (n Node[K, V]) IsBranch() bool {
	return n.branch != nil
}

// IsEmptyBranch reports whether n is a branch with no entries.
func (n Node[K, V]) IsEmptyBranch() bool {
	return n.branch != nil && len(n.branch) == 0
}

// Leaf returns the wrapped value when n is a leaf.
func (n Node[K, V]) Leaf() (V, bool) {
	if n.branch != nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Branch returns the nested map when n is a branch.
func (n Node[K, V]) Branch() (Map[K, V], bool) {
	return n.branch, n.branch != nil
}

// Get looks up key one level below n. A leaf has no children.
func (n Node[K, V]) Get(key K) (*Node[K, V], bool) {
	return n.branch.Get(key)
}

// Get returns the node stored under key. Nil nodes count as absent.
func (m Map[K, V]) Get(key K) (*Node[K, V], bool) {
	n, ok := m[key]
	return n, ok && n != nil
}

// Insert sets key to node, returning the node it replaced, if any.
func (m Map[K, V]) Insert(key K, node *Node[K, V]) (*Node[K, V], bool) {
	prev, ok := m.Get(key)
	m[key] = node
	return prev, ok
}

// Remove deletes key and returns the node it held, if any.
func (m Map[K, V]) Remove(key K) (*Node[K, V], bool) {
	n, ok := m.Get(key)
	if ok {
		delete(m, key)
	}
	return n, ok
}

// Clone returns a deep copy of the tree structure. Leaf values are copied by
// assignment.
func (m Map[K, V]) Clone() Map[K, V] {
	if m == nil {
		return nil
	}
	out := make(Map[K, V], len(m))
	for k, n := range m {
		if n == nil {
			continue
		}
		out[k] = n.Clone()
	}
	return out
}

// Clone returns a deep copy of n.
func (n Node[K, V]) Clone() *Node[K, V] {
	if n.branch != nil {
		return &Node[K, V]{branch: n.branch.Clone()}
	}
	return &Node[K, V]{value: n.value}
}

// Compact removes every empty branch below m, bottom up, and returns m.
func Compact[K comparable, V any](m Map[K, V]) Map[K, V] {
	for k, n := range m {
		if n == nil {
			delete(m, k)
			continue
		}
		if n.branch == nil {
			continue
		}
		Compact(n.branch)
		if len(n.branch) == 0 {
			delete(m, k)
		}
	}
	return m
}

// EqualFunc reports whether a and b have the same shape and equal leaves, using eq
// to compare leaf values.
func EqualFunc[K comparable, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, na := range a {
		nb, ok := b[k]
		if !ok {
			return false
		}
		if !NodeEqualFunc(na, nb, eq) {
			return false
		}
	}
	return true
}

func NodeEqualFunc[K comparable, V any](a, b *Node[K, V], eq func(V, V) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsBranch() != b.IsBranch() {
		return false
	}
	if a.IsBranch() {
		return EqualFunc(a.branch, b.branch, eq)
	}
	return eq(a.value, b.value)
}

// Equal is EqualFunc with == on leaf values.
func Equal[K, V comparable](a, b Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// WalkFunc is called for every leaf. The path slice is reused between calls and
// must be copied if retained.
type WalkFunc[K comparable, V any] func(path []K, value V) error

// Walk visits every leaf of m depth first, in ascending key order at every level.
// It stops at the first error returned by fn.
func Walk[K cmp.Ordered, V any](m Map[K, V], fn WalkFunc[K, V]) error {
	return walk(m, nil, fn)
}

func walk[K cmp.Ordered, V any](m Map[K, V], prefix []K, fn WalkFunc[K, V]) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		n := m[k]
		if n == nil {
			continue
		}
		path := append(prefix, k)
		if n.IsBranch() {
			if err := walk(n.branch, path, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(path, n.value); err != nil {
			return err
		}
	}
	return nil
}

func (m Map[K, V]) String() string {
	parts := make([]string, 0, len(m))
	for k, n := range m {
		if n == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%v: %v", k, n))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

func (n Node[K, V]) String() string {
	if n.branch != nil {
		return n.branch.String()
	}
	return fmt.Sprintf("%v", n.value)
}

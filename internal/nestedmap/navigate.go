package nestedmap

// descend follows path through branches only, returning the map the last segment
// of path resolves to. Any missing segment or leaf along the way fails.
func (m Map[K, V]) descend(path []K) (Map[K, V], bool) {
	cur := m
	for _, key := range path {
		n, ok := cur.Get(key)
		if !ok || !n.IsBranch() {
			return nil, false
		}
		cur = n.branch
	}
	return cur, true
}

// GetFrom resolves path and returns a copy of the node it addresses. The copy
// shares its nested map with the tree, so callers must treat it as read-only.
func (m Map[K, V]) GetFrom(path []K) (Node[K, V], bool) {
	n, ok := m.GetMutFrom(path)
	if !ok {
		return Node[K, V]{}, false
	}
	return *n, true
}

// GetMutFrom resolves path and returns the node it addresses for in-place
// modification.
func (m Map[K, V]) GetMutFrom(path []K) (*Node[K, V], bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent, ok := m.descend(path[:len(path)-1])
	if !ok {
		return nil, false
	}
	return parent.Get(path[len(path)-1])
}

// ContainsPath reports whether path resolves to a leaf or a branch.
func (m Map[K, V]) ContainsPath(path []K) bool {
	_, ok := m.GetMutFrom(path)
	return ok
}

// RemoveEntryFrom detaches the node addressed by path from its parent and returns
// it with its key. Ancestors left empty are not pruned.
func (m Map[K, V]) RemoveEntryFrom(path []K) (K, *Node[K, V], bool) {
	var zero K
	if len(path) == 0 {
		return zero, nil, false
	}
	parent, ok := m.descend(path[:len(path)-1])
	if !ok {
		return zero, nil, false
	}
	key := path[len(path)-1]
	n, ok := parent.Remove(key)
	if !ok {
		return zero, nil, false
	}
	return key, n, true
}

func (m Map[K, V]) RemoveFrom(path []K) (*Node[K, V], bool) {
	_, n, ok := m.RemoveEntryFrom(path)
	return n, ok
}

// InsertInto sets the node addressed by path, creating empty branches for every
// missing intermediate segment and overwriting whatever the last segment held.
//
// It returns false without touching m when path is empty, node is nil, m is nil,
// or an intermediate segment holds a leaf.
func (m Map[K, V]) InsertInto(path []K, node *Node[K, V]) bool {
	if len(path) == 0 || node == nil || m == nil {
		return false
	}

	cur := m
	last := len(path) - 1
	for i, key := range path[:last] {
		n, ok := cur.Get(key)
		if !ok {
			// Nothing exists below this point, so no leaf can block the rest.
			for _, missing := range path[i:last] {
				b := NewBranch[K, V](nil)
				cur[missing] = b
				cur = b.branch
			}
			break
		}
		if !n.IsBranch() {
			return false
		}
		cur = n.branch
	}

	cur[path[last]] = node
	return true
}

// The same navigation is available from a node. A leaf resolves nothing.

func (n Node[K, V]) GetFrom(path []K) (Node[K, V], bool) {
	return n.branch.GetFrom(path)
}

func (n Node[K, V]) GetMutFrom(path []K) (*Node[K, V], bool) {
	return n.branch.GetMutFrom(path)
}

func (n Node[K, V]) ContainsPath(path []K) bool {
	return n.branch.ContainsPath(path)
}

func (n Node[K, V]) RemoveFrom(path []K) (*Node[K, V], bool) {
	return n.branch.RemoveFrom(path)
}

func (n Node[K, V]) InsertInto(path []K, node *Node[K, V]) bool {
	return n.branch.InsertInto(path, node)
}

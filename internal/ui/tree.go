package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/m-lima/passifier/internal/store"
)

const redacted = "<redacted>"

// RenderTree draws m as an indented tree, branches first marked with », leaves
// with -. Leaf values are shown only when reveal is set; binary leaves always
// show a placeholder.
func RenderTree(m store.Map, reveal bool) string {
	var b strings.Builder
	renderLevel(&b, m, 0, reveal)
	return b.String()
}

func renderLevel(b *strings.Builder, m store.Map, level int, reveal bool) {
	indent := strings.Repeat("  ", level)
	keys := slices.Sorted(maps.Keys(m))

	for _, key := range keys {
		n, ok := m.Get(key)
		if !ok {
			continue
		}
		if sub, isBranch := n.Branch(); isBranch {
			b.WriteString(indent + "» " + Branch.Sprint(key) + "\n")
			renderLevel(b, sub, level+1, reveal)
		}
	}

	for _, key := range keys {
		n, ok := m.Get(key)
		if !ok {
			continue
		}
		e, isLeaf := n.Leaf()
		if !isLeaf {
			continue
		}
		b.WriteString(indent + "- " + key + " = " + leafValue(e, reveal) + "\n")
	}
}

func leafValue(e store.Entry, reveal bool) string {
	switch {
	case e.IsBinary():
		return Muted.Sprintf("%d bytes", len(e.Bytes()))
	case reveal:
		return Secret.Sprint(e.String())
	default:
		return Error.Sprint(redacted)
	}
}

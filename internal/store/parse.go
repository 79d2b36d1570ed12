package store

import (
	"encoding/json"
	"strings"

	kerrors "github.com/m-lima/passifier/internal/errors"
)

// Separator joins path segments in their textual form.
const Separator = "."

// ParsePath splits a dotted path into trimmed segments, dropping empty ones.
func ParsePath(raw string) ([]string, error) {
	var path []string
	for _, segment := range strings.Split(raw, Separator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		path = append(path, segment)
	}
	if len(path) == 0 {
		return nil, kerrors.ErrEmptyPath
	}
	return path, nil
}

// ParseSecret interprets raw as the JSON form of a node: a string, an array of
// bytes, or an object of nested secrets. Anything else is taken literally as
// plain text.
func ParseSecret(raw string) *Node {
	var n Node
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return Leaf(PlainText(raw))
	}
	return &n
}

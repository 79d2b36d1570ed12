package nestedmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Nodes are encoded without a tag: a leaf is written as its value and a branch as
// a plain map. Decoding infers the variant by trying the leaf type first and the
// map second. A leaf type whose encoding also parses as a map is ambiguous and
// always decodes as a leaf.

var errNullNode = errors.New("nestedmap: null is neither a leaf nor a map")

func (n Node[K, V]) MarshalJSON() ([]byte, error) {
	if n.branch != nil {
		return json.Marshal(n.branch)
	}
	return json.Marshal(n.value)
}

func (n *Node[K, V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullNode
	}

	var leaf V
	if err := json.Unmarshal(data, &leaf); err == nil {
		n.value, n.branch = leaf, nil
		return nil
	}

	var branch Map[K, V]
	if err := json.Unmarshal(data, &branch); err != nil {
		return fmt.Errorf("nestedmap: value is neither a leaf nor a map: %w", err)
	}
	*n = *NewBranch(branch)
	return nil
}

func (n Node[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if n.branch != nil {
		return enc.Encode(n.branch)
	}
	return enc.Encode(n.value)
}

func (n *Node[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeRaw()
	if err != nil {
		return err
	}
	var leaf V
	if err := msgpack.Unmarshal(raw, &leaf); err == nil {
		n.value, n.branch = leaf, nil
		return nil
	}

	var branch Map[K, V]
	if err := msgpack.Unmarshal(raw, &branch); err != nil {
		return fmt.Errorf("nestedmap: value is neither a leaf nor a map: %w", err)
	}
	*n = *NewBranch(branch)
	return nil
}

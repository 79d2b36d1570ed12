package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry is a secret value: either plain text or an opaque binary blob.
type Entry struct {
	text   string
	data   []byte
	binary bool
}

func PlainText(s string) Entry {
	return Entry{text: s}
}

func Binary(b []byte) Entry {
	if b == nil {
		b = []byte{}
	}
	return Entry{data: b, binary: true}
}

// EntryFromBytes returns PlainText when b is valid UTF-8 and Binary otherwise.
func EntryFromBytes(b []byte) Entry {
	if utf8.Valid(b) {
		return PlainText(string(b))
	}
	return Binary(b)
}

func (e Entry) IsBinary() bool {
	return e.binary
}

// Text returns the value of a PlainText entry.
func (e Entry) Text() (string, bool) {
	return e.text, !e.binary
}

// Bytes returns the raw content of the entry regardless of its variant.
func (e Entry) Bytes() []byte {
	if e.binary {
		return e.data
	}
	return []byte(e.text)
}

func (e Entry) Equal(other Entry) bool {
	if e.binary != other.binary {
		return false
	}
	if e.binary {
		return bytes.Equal(e.data, other.data)
	}
	return e.text == other.text
}

func (e Entry) String() string {
	if e.binary {
		return "[Binary data]"
	}
	return e.text
}

var errInvalidEntry = errors.New("entry must be a string or an array of bytes")

// JSON form: a string, or an array of numbers in 0..255.

func (e Entry) MarshalJSON() ([]byte, error) {
	if !e.binary {
		return json.Marshal(e.text)
	}
	ints := make([]int, len(e.data))
	for i, b := range e.data {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errInvalidEntry
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*e = PlainText(text)
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("%w: %v", errInvalidEntry, err)
	}
	raw := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %d is out of byte range", errInvalidEntry, v)
		}
		raw[i] = byte(v)
	}
	*e = Binary(raw)
	return nil
}

// msgpack form: str for plain text, bin for binary.

func (e Entry) EncodeMsgpack(enc *msgpack.Encoder) error {
	if e.binary {
		data := e.data
		if data == nil {
			data = []byte{}
		}
		return enc.EncodeBytes(data)
	}
	return enc.EncodeString(e.text)
}

func (e *Entry) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterface()
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*e = PlainText(v)
	case []byte:
		*e = Binary(v)
	default:
		return fmt.Errorf("%w: got %T", errInvalidEntry, v)
	}
	return nil
}

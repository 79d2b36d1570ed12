package nestedmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestJSONFlattened(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":{"c":"v"},"d":"w"},"e":"x"}`, string(data))

	var decoded strMap
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, Equal(sample(), decoded), "got %v", decoded)
}

func TestJSONNodeInference(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantBranch bool
		wantErr    bool
	}{
		{"string is leaf", `"v"`, false, false},
		{"object is branch", `{"k":"v"}`, true, false},
		{"empty object is empty branch", `{}`, true, false},
		{"number fits neither", `42`, false, true},
		{"null fits neither", `null`, false, true},
		{"array fits neither", `["a"]`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node[string, string]
			err := json.Unmarshal([]byte(tt.input), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBranch, n.IsBranch())
		})
	}
}

func TestMsgpackFlattened(t *testing.T) {
	data, err := msgpack.Marshal(sample())
	require.NoError(t, err)

	var decoded strMap
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.True(t, Equal(sample(), decoded), "got %v", decoded)

	// Without tags the wire form is the same as a plain nested map.
	var generic map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &generic))
	assert.Equal(t, "x", generic["e"])
	assert.Equal(t, "w", generic["a"].(map[string]any)["d"])
}

func TestMsgpackNodeInference(t *testing.T) {
	leafData, err := msgpack.Marshal("v")
	require.NoError(t, err)
	var n Node[string, string]
	require.NoError(t, msgpack.Unmarshal(leafData, &n))
	assert.False(t, n.IsBranch())

	boolData, err := msgpack.Marshal(true)
	require.NoError(t, err)
	assert.Error(t, msgpack.Unmarshal(boolData, &n))
}

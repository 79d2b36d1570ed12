package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-lima/passifier/internal/crypter"
	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, json.Unmarshal([]byte(`{"db":{"user":"root","pass":"hunter2"},"key":[0,159,146,150],"token":"abc"}`), s))
	return s
}

func withPassphrase(p string) Options {
	return Options{Crypter: crypter.Supplier(crypter.Static(p))}
}

func TestParse(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		input    string
		kind     Kind
		location string
	}{
		{"s3://bucket/key", Object, "bucket/key"},
		{"export.json", JSON, "export.json"},
		{"EXPORT.JSON", JSON, "EXPORT.JSON"},
		{"secrets/", Directory, "secrets"},
		{dir, Directory, dir},
		{"store.pass", File, "store.pass"},
		{"  padded.pass  ", File, "padded.pass"},
		{filepath.Join(dir, "missing"), File, filepath.Join(dir, "missing")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			src, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, src.Kind)
			assert.Equal(t, tt.location, src.Location)
		})
	}

	for _, input := range []string{"", "   ", "s3://", "s3:///"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, kerrors.ErrInvalidSource, "input %q", input)
	}
}

func TestParseExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	src, err := Parse("~/store.pass")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "store.pass"), src.Location)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "directory", Directory.String())
	assert.Equal(t, "json", JSON.String())
	assert.Equal(t, "object", Object.String())
	assert.True(t, File.Encrypted())
	assert.False(t, Directory.Encrypted())
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := &Source{Kind: File, Location: filepath.Join(t.TempDir(), "nested", "store.pass")}
	original := sampleStore(t)

	require.NoError(t, Save(ctx, src, original, withPassphrase("p")))

	info, err := os.Stat(src.Location)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(ctx, src, withPassphrase("p"))
	require.NoError(t, err)
	assert.True(t, original.Equal(loaded))

	_, err = Load(ctx, src, withPassphrase("wrong"))
	assert.ErrorIs(t, err, kerrors.ErrDecryptFailed)
}

func TestSaveRefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	src := &Source{Kind: File, Location: filepath.Join(t.TempDir(), "store.pass")}
	require.NoError(t, Save(ctx, src, sampleStore(t), withPassphrase("p")))

	err := Save(ctx, src, store.New(), withPassphrase("p"))
	assert.ErrorIs(t, err, kerrors.ErrOutputExists)
	assert.ErrorIs(t, err, kerrors.ErrIO)

	opts := withPassphrase("p")
	opts.Force = true
	require.NoError(t, Save(ctx, src, store.New(), opts))

	loaded, err := Load(ctx, src, withPassphrase("p"))
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestFileWithoutPassphrase(t *testing.T) {
	ctx := context.Background()
	src := &Source{Kind: File, Location: filepath.Join(t.TempDir(), "store.pass")}

	assert.ErrorIs(t, Save(ctx, src, sampleStore(t), Options{}), kerrors.ErrNoPassphrase)

	aborted := Options{Crypter: crypter.Supplier(func() (string, bool) { return "", false })}
	assert.ErrorIs(t, Save(ctx, src, sampleStore(t), aborted), kerrors.ErrNoPassphrase)
}

func TestLoadMissingFile(t *testing.T) {
	src := &Source{Kind: File, Location: filepath.Join(t.TempDir(), "missing.pass")}
	_, err := Load(context.Background(), src, withPassphrase("p"))
	assert.ErrorIs(t, err, kerrors.ErrReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := &Source{Kind: JSON, Location: filepath.Join(t.TempDir(), "export.json")}
	original := sampleStore(t)

	require.NoError(t, Save(ctx, src, original, Options{Pretty: true}))

	data, err := os.ReadFile(src.Location)
	require.NoError(t, err)
	assert.JSONEq(t, `{"db":{"user":"root","pass":"hunter2"},"key":[0,159,146,150],"token":"abc"}`, string(data))
	assert.Contains(t, string(data), "\n  ")

	loaded, err := Load(ctx, src, Options{})
	require.NoError(t, err)
	assert.True(t, original.Equal(loaded))
}

func TestLoadCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 42}`), 0600))

	_, err := Load(context.Background(), &Source{Kind: JSON, Location: path}, Options{})
	assert.ErrorIs(t, err, kerrors.ErrSerialization)
}

func TestObjectNotImplemented(t *testing.T) {
	ctx := context.Background()
	src, err := Parse("s3://bucket/store")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/store", src.String())

	_, err = Load(ctx, src, withPassphrase("p"))
	assert.ErrorIs(t, err, kerrors.ErrNotImplemented)
	assert.ErrorIs(t, Save(ctx, src, store.New(), withPassphrase("p")), kerrors.ErrNotImplemented)
}

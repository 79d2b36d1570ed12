package crypter

import (
	"bytes"
	"encoding/json"
	"testing"

	kerrors "github.com/m-lima/passifier/internal/errors"
	"github.com/m-lima/passifier/internal/store"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, json.Unmarshal([]byte(`{
		"db": {"user": "root", "pass": "hunter2"},
		"cert": [0, 1, 2, 253, 254, 255],
		"empty": "",
		"deep": {"a": {"b": {"c": "v"}}}
	}`), s))
	return s
}

// seal encrypts raw bytes directly, bypassing serialization and compression.
func seal(c *Crypter, plaintext []byte) []byte {
	nonce := make([]byte, NonceSize)
	return c.aead.Seal(nonce, nonce, plaintext, nil)
}

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, DefaultCompressionLevel)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	for _, cipherName := range Ciphers {
		for _, passphrase := range []string{"correct horse", "", "ünïcødé 🔑"} {
			t.Run(string(cipherName)+"/"+passphrase, func(t *testing.T) {
				c, err := New(passphrase, WithCipher(cipherName))
				require.NoError(t, err)
				assert.Equal(t, cipherName, c.Cipher())

				original := sampleStore(t)
				data, err := c.Encrypt(original)
				require.NoError(t, err)

				decoded := store.New()
				require.NoError(t, c.Decrypt(data, decoded))
				assert.True(t, original.Equal(decoded), "got %v", decoded)
			})
		}
	}
}

func TestRoundTripEmptyStore(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)

	data, err := c.Encrypt(store.New())
	require.NoError(t, err)

	decoded := store.New()
	require.NoError(t, c.Decrypt(data, decoded))
	assert.True(t, decoded.IsEmpty())
}

func TestRandomNonce(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)

	s := sampleStore(t)
	first, err := c.Encrypt(s)
	require.NoError(t, err)
	second, err := c.Encrypt(s)
	require.NoError(t, err)

	assert.NotEqual(t, first[:NonceSize], second[:NonceSize])
	assert.NotEqual(t, first, second)
}

func TestCompressionLevels(t *testing.T) {
	for _, level := range []int{-2, -1, 0, 1, 9} {
		c, err := New("p", WithCompressionLevel(level))
		require.NoError(t, err, "level %d", level)

		data, err := c.Encrypt(sampleStore(t))
		require.NoError(t, err)
		decoded := store.New()
		require.NoError(t, c.Decrypt(data, decoded))
	}

	for _, level := range []int{-3, 10} {
		_, err := New("p", WithCompressionLevel(level))
		assert.ErrorIs(t, err, kerrors.ErrInvalidConfig, "level %d", level)
	}
}

func TestUnknownCipher(t *testing.T) {
	_, err := New("p", WithCipher("rot13"))
	assert.ErrorIs(t, err, kerrors.ErrInvalidConfig)
	assert.False(t, ValidCipher("rot13"))
	assert.True(t, ValidCipher(ChaCha20Poly1305))
}

func TestTamperDetection(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)
	data, err := c.Encrypt(sampleStore(t))
	require.NoError(t, err)

	for i := range data {
		tampered := bytes.Clone(data)
		tampered[i] ^= 0x01

		err := c.Decrypt(tampered, store.New())
		require.ErrorIs(t, err, kerrors.ErrDecryptFailed, "byte %d", i)
		require.ErrorIs(t, err, kerrors.ErrCrypto)
	}
}

func TestWrongPassphrase(t *testing.T) {
	right, err := New("right")
	require.NoError(t, err)
	wrong, err := New("wrong")
	require.NoError(t, err)

	data, err := right.Encrypt(sampleStore(t))
	require.NoError(t, err)
	assert.ErrorIs(t, wrong.Decrypt(data, store.New()), kerrors.ErrDecryptFailed)
}

func TestCipherMismatch(t *testing.T) {
	gcm, err := New("p", WithCipher(AES256GCM))
	require.NoError(t, err)
	chacha, err := New("p", WithCipher(ChaCha20Poly1305))
	require.NoError(t, err)

	data, err := gcm.Encrypt(sampleStore(t))
	require.NoError(t, err)
	assert.ErrorIs(t, chacha.Decrypt(data, store.New()), kerrors.ErrDecryptFailed)
}

func TestTruncated(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)

	for _, data := range [][]byte{nil, {1, 2, 3}, make([]byte, NonceSize+15)} {
		assert.ErrorIs(t, c.Decrypt(data, store.New()), kerrors.ErrDecryptFailed)
	}
}

func TestFailureKindsAreDistinct(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)

	t.Run("corrupt compression", func(t *testing.T) {
		// 0xff starts a reserved deflate block type.
		err := c.Decrypt(seal(c, []byte{0xff, 0xff, 0xff}), store.New())
		assert.ErrorIs(t, err, kerrors.ErrInflation)
		assert.NotErrorIs(t, err, kerrors.ErrDecryptFailed)
	})

	t.Run("malformed payload", func(t *testing.T) {
		// msgpack positive fixint 7 cannot decode into a map.
		err := c.Decrypt(seal(c, deflate(t, []byte{0x07})), store.New())
		assert.ErrorIs(t, err, kerrors.ErrSerialization)
		assert.NotErrorIs(t, err, kerrors.ErrInflation)
	})
}

func TestSerializationFailureOnEncrypt(t *testing.T) {
	c, err := New("p")
	require.NoError(t, err)
	_, err = c.Encrypt(make(chan int))
	assert.ErrorIs(t, err, kerrors.ErrSerialization)
}

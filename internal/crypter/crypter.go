package crypter

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	kerrors "github.com/m-lima/passifier/internal/errors"

	"github.com/klauspost/compress/flate"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher names an AEAD construction keyed by a 256-bit key with a 96-bit nonce.
type Cipher string

const (
	AES256GCM        Cipher = "aes-256-gcm"
	ChaCha20Poly1305 Cipher = "chacha20-poly1305"
)

const (
	// NonceSize is the length of the nonce prefixed to every ciphertext.
	NonceSize = 12

	DefaultCipher           = AES256GCM
	DefaultCompressionLevel = 8
)

// Ciphers lists every supported cipher.
var Ciphers = []Cipher{AES256GCM, ChaCha20Poly1305}

// ValidCipher reports whether c names a supported cipher.
func ValidCipher(c Cipher) bool {
	for _, known := range Ciphers {
		if c == known {
			return true
		}
	}
	return false
}

// ValidCompressionLevel reports whether level is accepted by the deflate encoder.
func ValidCompressionLevel(level int) bool {
	return level >= flate.HuffmanOnly && level <= flate.BestCompression
}

// Option configures a Crypter.
type Option func(*Crypter)

func WithCipher(c Cipher) Option {
	return func(cr *Crypter) { cr.cipher = c }
}

func WithCompressionLevel(level int) Option {
	return func(cr *Crypter) { cr.level = level }
}

// Crypter turns values into opaque encrypted blobs and back. Every blob has the
// layout nonce || AEAD(deflate(msgpack(value))).
type Crypter struct {
	aead   cipher.AEAD
	cipher Cipher
	level  int
}

// New derives a key from passphrase with SHA-256 and builds the configured cipher.
// The empty passphrase is accepted.
func New(passphrase string, opts ...Option) (*Crypter, error) {
	c := &Crypter{cipher: DefaultCipher, level: DefaultCompressionLevel}
	for _, opt := range opts {
		opt(c)
	}
	if !ValidCompressionLevel(c.level) {
		return nil, fmt.Errorf("compression level %d: %w", c.level, kerrors.ErrInvalidConfig)
	}

	key := sha256.Sum256([]byte(passphrase))
	aead, err := newAEAD(c.cipher, key[:])
	if err != nil {
		return nil, err
	}
	c.aead = aead
	return c, nil
}

func newAEAD(c Cipher, key []byte) (cipher.AEAD, error) {
	switch c {
	case AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case ChaCha20Poly1305:
		return chacha20poly1305.New(key)
	default:
		return nil, fmt.Errorf("unknown cipher %q: %w", c, kerrors.ErrInvalidConfig)
	}
}

func (c *Crypter) Cipher() Cipher {
	return c.cipher
}

// Encrypt serializes, compresses and seals payload under a fresh random nonce.
func (c *Crypter) Encrypt(payload any) ([]byte, error) {
	serialized, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrSerialization, err)
	}

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, c.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}
	if _, err := w.Write(serialized); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryptFailed, err)
	}

	nonce := make([]byte, NonceSize, NonceSize+compressed.Len()+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: failed to generate nonce: %v", kerrors.ErrEncryptFailed, err)
	}

	return c.aead.Seal(nonce, nonce, compressed.Bytes(), nil), nil
}

// Decrypt reverses Encrypt into out, which must be a pointer.
//
// An authentication failure is ErrDecryptFailed, corrupt compressed data is
// ErrInflation, and a payload that does not decode into out is ErrSerialization.
func (c *Crypter) Decrypt(data []byte, out any) error {
	if len(data) < NonceSize+c.aead.Overhead() {
		return fmt.Errorf("%w: ciphertext too short", kerrors.ErrDecryptFailed)
	}

	nonce, sealed := data[:NonceSize], data[NonceSize:]
	compressed, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return kerrors.ErrDecryptFailed
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	serialized, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrInflation, err)
	}

	if err := msgpack.Unmarshal(serialized, out); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrSerialization, err)
	}
	return nil
}

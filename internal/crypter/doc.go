// Package crypter encrypts whole secret stores at rest.
//
// A Crypter is keyed by the SHA-256 digest of a passphrase. Encrypt serializes a
// value with msgpack, compresses it with deflate and seals it with an AEAD cipher
// (AES-256-GCM by default, ChaCha20-Poly1305 on request) under a random 12-byte
// nonce that is prefixed to the output:
//
//	[ 12-byte nonce ][ AEAD ciphertext + tag of deflate(msgpack(value)) ]
//
// Decrypt distinguishes its failures so the caller can tell a wrong passphrase
// (ErrDecryptFailed) from a corrupted blob (ErrInflation, ErrSerialization).
package crypter

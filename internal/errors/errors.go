package errors

import "errors"

// categorized is a sentinel that belongs to a broader category. errors.Is matches
// both the sentinel itself and its category.
type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }

func (e *categorized) Unwrap() error { return e.category }

func newError(category error, msg string) error {
	return &categorized{msg: msg, category: category}
}

// Categories. Every sentinel below unwraps to exactly one of these.
var (
	// ErrPath groups failures to resolve or mutate a secret path.
	ErrPath = errors.New("path error")

	// ErrCrypto groups failures while encrypting or decrypting a store.
	ErrCrypto = errors.New("crypto error")

	// ErrIO groups failures of the storage backends.
	ErrIO = errors.New("io error")

	// ErrConfig groups invalid user input and configuration.
	ErrConfig = errors.New("configuration error")
)

// Path errors indicate the requested path cannot be used as asked.
var (
	// ErrEmptyPath indicates a path with no segments.
	ErrEmptyPath = newError(ErrPath, "path is empty")

	// ErrNotFound indicates the path does not resolve to a secret.
	ErrNotFound = newError(ErrPath, "secret not found")

	// ErrConflict indicates a create on a path that is already occupied.
	ErrConflict = newError(ErrPath, "secret already exists")

	// ErrEmptySecret indicates an attempt to create an empty nested secret.
	ErrEmptySecret = newError(ErrPath, "secret is empty")
)

// Cryptographic errors indicate the store could not be turned into bytes or back.
var (
	// ErrSerialization indicates the store could not be encoded or decoded.
	ErrSerialization = newError(ErrCrypto, "could not serialize store")

	// ErrEncryptFailed indicates the cipher could not seal the payload.
	ErrEncryptFailed = newError(ErrCrypto, "failed to encrypt store")

	// ErrDecryptFailed indicates authentication failed: wrong passphrase or tampered data.
	ErrDecryptFailed = newError(ErrCrypto, "failed to decrypt store")

	// ErrInflation indicates the decrypted payload is not valid compressed data.
	ErrInflation = newError(ErrCrypto, "failed to inflate store")
)

// I/O errors indicate a backend could not load or persist the store.
var (
	// ErrReadFailed indicates the source could not be read.
	ErrReadFailed = newError(ErrIO, "failed to read store")

	// ErrWriteFailed indicates the destination could not be written.
	ErrWriteFailed = newError(ErrIO, "failed to write store")

	// ErrOutputExists indicates the destination exists and overwriting was not requested.
	ErrOutputExists = newError(ErrIO, "output already exists")

	// ErrNotImplemented indicates a backend that is recognized but not available.
	ErrNotImplemented = newError(ErrIO, "backend not implemented")

	// ErrNoPassphrase indicates no passphrase was supplied, so no cipher is available.
	ErrNoPassphrase = newError(ErrIO, "no passphrase available")
)

// Configuration errors indicate invalid settings or arguments.
var (
	// ErrInvalidConfig indicates a malformed or out-of-range configuration value.
	ErrInvalidConfig = newError(ErrConfig, "invalid configuration")

	// ErrInvalidSource indicates a source string that cannot be parsed.
	ErrInvalidSource = newError(ErrConfig, "invalid source")
)

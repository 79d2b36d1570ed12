// Package errors provides typed error values for the passifier application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Every sentinel belongs to one category, and errors.Is matches both levels:
//
//   - Path errors (ErrPath): ErrEmptyPath, ErrNotFound, ErrConflict, ErrEmptySecret
//   - Crypto errors (ErrCrypto): ErrSerialization, ErrEncryptFailed, ErrDecryptFailed, ErrInflation
//   - I/O errors (ErrIO): ErrReadFailed, ErrWriteFailed, ErrOutputExists, ErrNotImplemented, ErrNoPassphrase
//   - Config errors (ErrConfig): ErrInvalidConfig, ErrInvalidSource
//
// A wrong passphrase surfaces as ErrDecryptFailed while a corrupted store
// surfaces as ErrInflation or ErrSerialization, so the two can be reported
// differently.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(path) == 0 {
//	    return errors.ErrEmptyPath
//	}
//
// Handle errors in the CLI layer:
//
//	_, err := workflows.Read(ctx, opts, path)
//	if errors.Is(err, kerrors.ErrNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrReadFailed)
package errors

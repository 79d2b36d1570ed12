package crypter

import (
	kerrors "github.com/m-lima/passifier/internal/errors"
)

// PassphraseSupplier yields a passphrase on demand. A false result means the
// passphrase could not be obtained and the caller should abort.
type PassphraseSupplier func() (string, bool)

// Static always supplies passphrase.
func Static(passphrase string) PassphraseSupplier {
	return func() (string, bool) { return passphrase, true }
}

// Supplier returns a function that builds a Crypter on first use and reuses it
// afterwards. It fails with ErrNoPassphrase when supply aborts.
func Supplier(supply PassphraseSupplier, opts ...Option) func() (*Crypter, error) {
	var cached *Crypter
	return func() (*Crypter, error) {
		if cached != nil {
			return cached, nil
		}
		passphrase, ok := supply()
		if !ok {
			return nil, kerrors.ErrNoPassphrase
		}
		c, err := New(passphrase, opts...)
		if err != nil {
			return nil, err
		}
		cached = c
		return c, nil
	}
}

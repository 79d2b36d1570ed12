// Package utils provides shared utility functions for the passifier application.
//
// # Filesystem Utilities
//
//   - PathExists: reports whether a path exists
//   - IsDir: reports whether a path is a directory
//   - WriteFileAtomic: writes through a temporary file and a rename
//
// # I/O Utilities
//
//   - ReadStdin: reads all data piped to standard input
//
// # Terminal Utilities
//
//   - ReadPassphrase, ReadPassphraseFromTTY: hidden passphrase prompts
//   - LookupPassphrase: non-interactive passphrase from PASSIFIER_PASSPHRASE
//   - IsTerminal: checks if stdin is a terminal
package utils

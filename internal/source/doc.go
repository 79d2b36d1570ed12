// Package source loads and saves whole secret stores.
//
// A Source is one of a fixed set of backends:
//
//   - File: a single encrypted blob, written atomically with mode 0600
//   - Directory: an unencrypted tree of files and folders
//   - JSON: the unencrypted flattened JSON form, for export and import
//   - Object: an s3:// location, recognized but not implemented
//
// Parse picks the backend from the shape of the location. Load and Save
// dispatch on the kind; only the encrypted backends ask Options.Crypter for a
// cipher, so a passphrase is never requested when it is not needed.
package source

// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content (commands, paths, secret paths, errors) according
// to terminal capabilities. With colors available the content is colorized; when
// NO_COLOR is set or the terminal doesn't support colors, text decorations are
// used instead.
//
//	ui.Code.Sprint("passifier secrets list")  // Commands and code
//	ui.Path.Sprint("~/secrets.pass")           // Store locations
//	ui.SecretPath.Sprint("db.password")        // Dotted secret paths
//	ui.Success.Sprint("✓")                      // Success indicators
//	ui.Error.Sprint("✗")                        // Error indicators
//	ui.Muted.Sprint("optional")                // De-emphasized text
//
// RenderTree draws a whole store as an indented tree.
package ui

// Package logger provides leveled logging for passifier commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfUser()       // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logged with --debug, returned as an error
//
// Commands create a logger in their PersistentPreRun and pass it to the
// workflows:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d secrets", count)
package logger

// Package output provides styled output and exit-coded errors for the git-home CLI.
//
// # Printer
//
// The Printer writes human-readable output. Colors come from lipgloss and are
// switched on explicitly by the caller (for example when COLORTERM announces a
// true-color terminal):
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), output.SupportsColor(env.ColorTerm))
//	printer.Warning("  .vimrc")   // unstaged
//	printer.Success("  .bashrc")  // staged
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess // 0: success, or an optional action was declined
//	output.ExitAborted // 1: environment problem, or the user aborted
//	output.ExitUsage   // 64: usage error, path outside $HOME
//	output.ExitBackend // 74: store, index or commit failure
//
// # Error Types
//
// Use the constructors so every failure carries its exit code:
//
//	output.NewUsageError("git home init takes no arguments", initUsage)
//	output.NewBackendErrorWithCause("could not write index", err)
//	output.NewExitStatus(code) // relay a child process status silently
package output

// Package output provides structured output and error handling for the pulseci CLI.
//
// Every command writes through a Printer, so the same code path serves
// people at a terminal and scripts or agents reading --json:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
//	printer.Success(map[string]any{"message": "GitHub Actions workflows created successfully!"})
//	printer.Error(err)
//
// In JSON mode success output is the data object itself and errors are
// {"error": "message", "code": N}.
//
// Human output is styled with lipgloss only when writing to a terminal
// (or when --color always is given).
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, unknown workflow name
//	output.ExitSystemError // 2: filesystem or git failure
//	output.ExitConflict    // 3: workflows on disk drifted from the embedded copies
//
// Errors built with NewUserError, NewSystemError(WithCause) and
// NewConflictError carry their exit code; GetExitCode recovers it.
package output

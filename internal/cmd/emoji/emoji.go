// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by alerts and the interactive shell.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation or a command that could not run.
	Error = "✗"

	// Warning marks a non-fatal issue, such as dropped lines during a load.
	Warning = "!"

	// Info marks informational messages.
	Info = "i"

	// Prompt starts every interactive input line.
	Prompt = ">"
)

package types

import "fmt"

// RenderStatus is the status discriminant of a RenderOutcome.
// The set is closed: every render terminates in exactly one of these.
type RenderStatus string

const (
	// StatusSuccess indicates the figure exists at FigurePath, either
	// freshly rendered or served from the content-addressed cache.
	StatusSuccess RenderStatus = "success"
	// StatusChecksFailed indicates a precondition check rejected the
	// script before any process was spawned.
	StatusChecksFailed RenderStatus = "checks_failed"
	// StatusScriptError indicates the process ran, the toolkit is
	// confirmed installed, and exit status was non-zero.
	StatusScriptError RenderStatus = "script_error"
	// StatusToolkitMissing indicates the process failed and a live probe
	// confirmed the toolkit is not installed in this environment.
	StatusToolkitMissing RenderStatus = "toolkit_missing"
)

// RenderOutcome is the terminal result of one figure request. Payload fields
// are populated per status: Message for checks_failed, Command and ExitCode
// for script_error, Toolkit for toolkit_missing.
//
// Fatal environment failures (cannot write files, cannot spawn a shell) are
// NOT represented here; they surface as ordinary errors from Render.
type RenderOutcome struct {
	// Status is the outcome discriminant.
	Status RenderStatus `json:"status"`
	// Message is the accumulated check-failure text (checks_failed only).
	Message string `json:"message,omitempty"`
	// Command is the exact shell command that was executed (script_error only).
	Command string `json:"command,omitempty"`
	// ExitCode is the process exit status (script_error only).
	ExitCode int `json:"exit_code,omitempty"`
	// Toolkit is the missing engine (toolkit_missing only).
	Toolkit Toolkit `json:"toolkit,omitempty"`
}

// Success returns the success outcome.
func Success() RenderOutcome {
	return RenderOutcome{Status: StatusSuccess}
}

// ChecksFailed returns a checks_failed outcome carrying the folded message.
func ChecksFailed(message string) RenderOutcome {
	return RenderOutcome{Status: StatusChecksFailed, Message: message}
}

// ScriptError returns a script_error outcome carrying the executed command
// and its exit status for diagnosability.
func ScriptError(command string, exitCode int) RenderOutcome {
	return RenderOutcome{Status: StatusScriptError, Command: command, ExitCode: exitCode}
}

// ToolkitMissing returns a toolkit_missing outcome.
func ToolkitMissing(toolkit Toolkit) RenderOutcome {
	return RenderOutcome{Status: StatusToolkitMissing, Toolkit: toolkit}
}

// String renders a one-line human-readable description of the outcome.
func (o RenderOutcome) String() string {
	switch o.Status {
	case StatusSuccess:
		return "success"
	case StatusChecksFailed:
		return fmt.Sprintf("checks failed: %s", o.Message)
	case StatusScriptError:
		return fmt.Sprintf("script error: %q exited with code %d", o.Command, o.ExitCode)
	case StatusToolkitMissing:
		return fmt.Sprintf("toolkit %s is not installed", o.Toolkit)
	default:
		return fmt.Sprintf("unknown status %q", string(o.Status))
	}
}

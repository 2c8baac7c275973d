package runtime

import "github.com/pithecene-io/easel/types"

// Classify maps a process exit status plus toolkit availability into the
// closed outcome taxonomy.
//
// A non-zero exit alone is ambiguous: the script may be buggy, or the
// toolkit may simply not be installed. Callers must therefore pass the
// result of a LIVE availability probe taken after the failure, never a
// cached one, so a toolkit installed mid-run is detected on the next
// failing invocation.
func Classify(exitCode int, command string, tk types.Toolkit, available bool) types.RenderOutcome {
	if exitCode == 0 {
		return types.Success()
	}
	if !available {
		return types.ToolkitMissing(tk)
	}
	return types.ScriptError(command, exitCode)
}

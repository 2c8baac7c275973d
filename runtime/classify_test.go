package runtime

import (
	"testing"

	"github.com/pithecene-io/easel/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		exitCode  int
		available bool
		want      types.RenderStatus
	}{
		{"zero exit is success regardless of probe", 0, false, types.StatusSuccess},
		{"failure with toolkit available", 1, true, types.StatusScriptError},
		{"failure with toolkit missing", 1, false, types.StatusToolkitMissing},
		{"shell not-found code with toolkit missing", 127, false, types.StatusToolkitMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.exitCode, "gnuplot \"/tmp/x.gp\"", types.ToolkitGnuplot, tt.available)
			if got.Status != tt.want {
				t.Errorf("Classify(%d, available=%v) = %s, want %s",
					tt.exitCode, tt.available, got.Status, tt.want)
			}
		})
	}
}

func TestClassify_ScriptErrorPayload(t *testing.T) {
	got := Classify(2, "octave --no-gui --norc \"/tmp/x.m\"", types.ToolkitOctave, true)
	if got.Command != "octave --no-gui --norc \"/tmp/x.m\"" {
		t.Errorf("Command = %q, want the executed command", got.Command)
	}
	if got.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", got.ExitCode)
	}
}

func TestClassify_ToolkitMissingPayload(t *testing.T) {
	got := Classify(1, "dot -Tpng", types.ToolkitGraphviz, false)
	if got.Toolkit != types.ToolkitGraphviz {
		t.Errorf("Toolkit = %s, want graphviz", got.Toolkit)
	}
}

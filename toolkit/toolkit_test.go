package toolkit

import (
	"strings"
	"testing"

	"github.com/pithecene-io/easel/check"
	"github.com/pithecene-io/easel/types"
)

func outputFixture(tk types.Toolkit, script string) types.OutputSpec {
	return types.OutputSpec{
		Spec: types.FigureSpec{
			Toolkit:   tk,
			Script:    script,
			Format:    types.FormatPNG,
			Directory: "out",
		},
		ScriptPath: "/tmp/easel-0000000000000000.py",
		FigurePath: "out/0000000000000000.png",
	}
}

func TestDefaultRegistry_CoversAllToolkits(t *testing.T) {
	reg := DefaultRegistry(nil)
	for _, tk := range types.Toolkits() {
		p, err := reg.Lookup(tk)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tk, err)
		}
		if p.ScriptExtension == "" || !strings.HasPrefix(p.ScriptExtension, ".") {
			t.Errorf("%s: bad script extension %q", tk, p.ScriptExtension)
		}
		if p.Executable == "" {
			t.Errorf("%s: empty executable", tk)
		}
		if p.CaptureFragment == nil || p.CommandLine == nil {
			t.Errorf("%s: incomplete profile", tk)
		}
	}
}

func TestDefaultRegistry_UnknownToolkit(t *testing.T) {
	reg := DefaultRegistry(nil)
	if _, err := reg.Lookup(types.Toolkit("asymptote")); err == nil {
		t.Error("expected error for unregistered toolkit")
	}
}

func TestDefaultRegistry_ExecutableOverride(t *testing.T) {
	reg := DefaultRegistry(map[types.Toolkit]string{
		types.ToolkitMatplotlib: "/opt/venv/bin/python",
	})

	p, err := reg.Lookup(types.ToolkitMatplotlib)
	if err != nil {
		t.Fatal(err)
	}
	if p.Executable != "/opt/venv/bin/python" {
		t.Errorf("Executable = %q, want override", p.Executable)
	}

	out := outputFixture(types.ToolkitMatplotlib, "plt.plot([1])")
	if !strings.HasPrefix(p.Command(out), "/opt/venv/bin/python ") {
		t.Errorf("command %q should use the overridden executable", p.Command(out))
	}
}

func TestInstrumentedScript_AppendForMatplotlib(t *testing.T) {
	reg := DefaultRegistry(nil)
	p, _ := reg.Lookup(types.ToolkitMatplotlib)
	out := outputFixture(types.ToolkitMatplotlib, "plt.plot([1, 2])")

	script := p.InstrumentedScript(out)
	if !strings.HasPrefix(script, "plt.plot([1, 2])") {
		t.Errorf("instrumented script should begin with the user script, got %q", script)
	}
	if !strings.Contains(script, "savefig") || !strings.Contains(script, out.FigurePath) {
		t.Errorf("capture fragment missing from %q", script)
	}
}

func TestInstrumentedScript_PrependForGnuplot(t *testing.T) {
	reg := DefaultRegistry(nil)
	p, _ := reg.Lookup(types.ToolkitGnuplot)
	out := outputFixture(types.ToolkitGnuplot, "plot sin(x)")

	script := p.InstrumentedScript(out)
	if !strings.HasPrefix(script, "set terminal pngcairo\n") {
		t.Errorf("gnuplot capture must be prepended, got %q", script)
	}
	if !strings.HasSuffix(script, "plot sin(x)") {
		t.Errorf("user script should close the instrumented text, got %q", script)
	}
	if !strings.Contains(script, `set output "out/0000000000000000.png"`) {
		t.Errorf("output directive missing from %q", script)
	}
}

func TestMatplotlibChecks_RejectBackendSelection(t *testing.T) {
	reg := DefaultRegistry(nil)
	p, _ := reg.Lookup(types.ToolkitMatplotlib)

	res := check.Fold(p.Checks, "import matplotlib\nmatplotlib.use(\"Agg\")\nplt.plot([1])")
	if res.OK() {
		t.Fatal("matplotlib.use should be rejected")
	}
	if !strings.Contains(res.Message(), "matplotlib.use") {
		t.Errorf("message %q should name the offending call", res.Message())
	}

	if res := check.Fold(p.Checks, "plt.plot([1])"); !res.OK() {
		t.Errorf("clean script rejected: %s", res.Message())
	}
}

func TestGnuplotChecks_RejectOutputDirectives(t *testing.T) {
	reg := DefaultRegistry(nil)
	p, _ := reg.Lookup(types.ToolkitGnuplot)

	res := check.Fold(p.Checks, "set terminal png\nset output \"x.png\"\nplot sin(x)")
	if res.OK() {
		t.Fatal("user output directives should be rejected")
	}
	// Both checks fail and both messages accumulate.
	if got := strings.Count(res.Message(), "\n") + 1; got != 2 {
		t.Errorf("accumulated %d messages, want 2: %q", got, res.Message())
	}
}

func TestGraphvizCommand_NamesFigureAndScript(t *testing.T) {
	reg := DefaultRegistry(nil)
	p, _ := reg.Lookup(types.ToolkitGraphviz)
	out := outputFixture(types.ToolkitGraphviz, "digraph { a -> b }")
	out.ScriptPath = "/tmp/easel-0000000000000000.dot"

	cmd := p.Command(out)
	if !strings.Contains(cmd, "-Tpng") {
		t.Errorf("command %q should select the png renderer", cmd)
	}
	if !strings.Contains(cmd, out.FigurePath) || !strings.Contains(cmd, out.ScriptPath) {
		t.Errorf("command %q should reference both paths", cmd)
	}
	if p.CaptureFragment(out) != "" {
		t.Error("graphviz needs no capture fragment")
	}
}

package toolkit

import (
	"fmt"
	"strings"

	"github.com/pithecene-io/easel/check"
	"github.com/pithecene-io/easel/types"
)

// DefaultRegistry returns the registry of all built-in profiles with their
// default executables. overrides maps toolkits to replacement executables
// (from configuration); unknown keys are ignored.
func DefaultRegistry(overrides map[types.Toolkit]string) *Registry {
	profiles := []*Profile{
		matplotlibProfile(),
		plotlyProfile(),
		gnuplotProfile(),
		octaveProfile(),
		ggplot2Profile(),
		graphvizProfile(),
	}
	for _, p := range profiles {
		if exe, ok := overrides[p.Toolkit]; ok && exe != "" {
			p.Executable = exe
		}
	}
	return NewRegistry(profiles...)
}

func matplotlibProfile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitMatplotlib,
		ScriptExtension: ".py",
		Executable:      "python3",
		Checks: []check.Check{
			// An explicit backend selection breaks the injected savefig
			// under headless rendering.
			rejectSubstring("matplotlib.use(", "scripts must not call matplotlib.use(); the backend is managed by the renderer"),
			rejectSubstring("plt.show()", "scripts must not call plt.show(); figures are saved, not displayed"),
		},
		CaptureFragment: func(out types.OutputSpec) string {
			return fmt.Sprintf("\nimport matplotlib.pyplot\nmatplotlib.pyplot.savefig(%q)\n", out.FigurePath)
		},
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s %q", executable, out.ScriptPath)
		},
		ProbeArgs: []string{"-c", "import matplotlib"},
	}
}

func plotlyProfile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitPlotly,
		ScriptExtension: ".py",
		Executable:      "python3",
		Checks: []check.Check{
			// Static export needs the figure bound to `fig`.
			requireSubstring("fig", "plotly scripts must assign the figure to a variable named fig"),
		},
		CaptureFragment: func(out types.OutputSpec) string {
			return fmt.Sprintf("\nimport plotly.io\nplotly.io.write_image(fig, %q)\n", out.FigurePath)
		},
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s %q", executable, out.ScriptPath)
		},
		ProbeArgs: []string{"-c", "import plotly.io"},
	}
}

// gnuplotTerminals maps save formats to gnuplot terminal names.
var gnuplotTerminals = map[types.SaveFormat]string{
	types.FormatPNG: "pngcairo",
	types.FormatSVG: "svg",
	types.FormatPDF: "pdfcairo",
	types.FormatJPG: "jpeg",
	types.FormatEPS: "postscript eps",
	types.FormatGIF: "gif",
}

func gnuplotProfile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitGnuplot,
		ScriptExtension: ".gp",
		Executable:      "gnuplot",
		// gnuplot requires terminal and output to be set before any plot
		// command is issued.
		PrependCapture: true,
		Checks: []check.Check{
			rejectSubstring("set output", "scripts must not set output; the output file is managed by the renderer"),
			rejectSubstring("set terminal", "scripts must not set terminal; the terminal is derived from the save format"),
		},
		CaptureFragment: func(out types.OutputSpec) string {
			term := gnuplotTerminals[out.Spec.Format]
			if term == "" {
				term = string(out.Spec.Format)
			}
			return fmt.Sprintf("set terminal %s\nset output %q\n", term, out.FigurePath)
		},
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s %q", executable, out.ScriptPath)
		},
		ProbeArgs: []string{"--version"},
	}
}

func octaveProfile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitOctave,
		ScriptExtension: ".m",
		Executable:      "octave",
		CaptureFragment: func(out types.OutputSpec) string {
			return fmt.Sprintf("\nsaveas(gcf, %q);\n", out.FigurePath)
		},
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s --no-gui --norc %q", executable, out.ScriptPath)
		},
		ProbeArgs: []string{"--version"},
	}
}

func ggplot2Profile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitGGPlot2,
		ScriptExtension: ".r",
		Executable:      "Rscript",
		CaptureFragment: func(out types.OutputSpec) string {
			// ggsave saves the last plot when none is named.
			return fmt.Sprintf("\nggsave(%q)\n", out.FigurePath)
		},
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s %q", executable, out.ScriptPath)
		},
		ProbeArgs: []string{"-e", "library(ggplot2)"},
	}
}

func graphvizProfile() *Profile {
	return &Profile{
		Toolkit:         types.ToolkitGraphviz,
		ScriptExtension: ".dot",
		Executable:      "dot",
		// dot names the output file on the command line; nothing to inject.
		CaptureFragment: func(types.OutputSpec) string { return "" },
		CommandLine: func(out types.OutputSpec, executable string) string {
			return fmt.Sprintf("%s -T%s -o %q %q",
				executable, out.Spec.Format.Extension(), out.FigurePath, out.ScriptPath)
		},
		ProbeArgs: []string{"-V"},
	}
}

// rejectSubstring fails when the script contains needle.
func rejectSubstring(needle, message string) check.Check {
	return func(script string) check.Result {
		if strings.Contains(script, needle) {
			return check.Failed(message)
		}
		return check.Passed
	}
}

// requireSubstring fails when the script does not contain needle.
func requireSubstring(needle, message string) check.Check {
	return func(script string) check.Result {
		if !strings.Contains(script, needle) {
			return check.Failed(message)
		}
		return check.Passed
	}
}

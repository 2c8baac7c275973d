// Package types defines core domain types for the easel renderer.
//
//nolint:revive // types is a common Go package naming convention
package types

// Toolkit identifies a plotting engine. The set is closed: every toolkit
// listed here has a registered profile (extension, checks, capture fragment,
// command line, availability probe).
type Toolkit string

const (
	// ToolkitMatplotlib renders via Python matplotlib.
	ToolkitMatplotlib Toolkit = "matplotlib"
	// ToolkitPlotly renders via Python plotly (static export).
	ToolkitPlotly Toolkit = "plotly"
	// ToolkitGnuplot renders via the gnuplot interpreter.
	ToolkitGnuplot Toolkit = "gnuplot"
	// ToolkitOctave renders via GNU Octave.
	ToolkitOctave Toolkit = "octave"
	// ToolkitGGPlot2 renders via R ggplot2.
	ToolkitGGPlot2 Toolkit = "ggplot2"
	// ToolkitGraphviz renders via graphviz dot.
	ToolkitGraphviz Toolkit = "graphviz"
)

// Toolkits returns all supported toolkits in stable order.
func Toolkits() []Toolkit {
	return []Toolkit{
		ToolkitMatplotlib,
		ToolkitPlotly,
		ToolkitGnuplot,
		ToolkitOctave,
		ToolkitGGPlot2,
		ToolkitGraphviz,
	}
}

// SaveFormat is the target image format of a rendered figure.
type SaveFormat string

const (
	// FormatPNG is raster PNG output.
	FormatPNG SaveFormat = "png"
	// FormatSVG is vector SVG output.
	FormatSVG SaveFormat = "svg"
	// FormatPDF is vector PDF output.
	FormatPDF SaveFormat = "pdf"
	// FormatJPG is raster JPEG output.
	FormatJPG SaveFormat = "jpg"
	// FormatEPS is encapsulated PostScript output.
	FormatEPS SaveFormat = "eps"
	// FormatGIF is raster GIF output.
	FormatGIF SaveFormat = "gif"
)

// Extension returns the canonical file extension without the leading dot.
func (f SaveFormat) Extension() string {
	return string(f)
}

// FigureSpec is an immutable description of one figure request.
// Constructed once per request by the caller and read-only thereafter.
type FigureSpec struct {
	// Toolkit selects the plotting engine and its profile.
	Toolkit Toolkit `yaml:"toolkit" json:"toolkit"`
	// Script is the raw user script text (untrusted, opaque).
	Script string `yaml:"script" json:"script"`
	// Format is the output image format.
	Format SaveFormat `yaml:"format" json:"format"`
	// Directory is the target output directory. May not exist yet.
	Directory string `yaml:"directory" json:"directory"`
	// BlockAttrs carries presentation attributes from the source block.
	// Not consumed by the render core.
	BlockAttrs map[string]string `yaml:"block_attrs,omitempty" json:"block_attrs,omitempty"`
	// Caption is the figure caption. Not consumed by the render core.
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	// WithSource requests a link to the script transcript in the final
	// document. Read by the document layer, not by the render core.
	WithSource bool `yaml:"with_source,omitempty" json:"with_source,omitempty"`
}

// OutputSpec combines a FigureSpec with its derived on-disk paths.
// Short-lived: built per request and handed to the toolkit profile so the
// command line can reference both the script and the figure location.
type OutputSpec struct {
	// Spec is the originating figure request.
	Spec FigureSpec
	// ScriptPath is where the instrumented script is materialized.
	ScriptPath string
	// FigurePath is where the toolkit must save the rendered figure.
	FigurePath string
}

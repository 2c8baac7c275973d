package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/easel/cli/config"
	cliRender "github.com/pithecene-io/easel/cli/render"
	"github.com/pithecene-io/easel/metrics"
	"github.com/pithecene-io/easel/runtime"
	"github.com/pithecene-io/easel/toolkit"
	"github.com/pithecene-io/easel/types"
)

// Exit codes mirror the outcome taxonomy so shell callers can branch on
// result kind without parsing output.
const (
	exitSuccess        = 0
	exitChecksFailed   = 1
	exitScriptError    = 2
	exitToolkitMissing = 3
	exitFatal          = 4
)

// RenderCommand returns the render command, the only command that executes
// external toolkit processes.
func RenderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a figure script through the content-addressed cache",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "script",
				Usage:    "Path to script file, or - for stdin",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "toolkit",
				Usage:    "Plotting toolkit: matplotlib, plotly, gnuplot, octave, ggplot2, graphviz",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "save-format",
				Usage: "Figure format: png, svg, pdf, jpg, eps, gif",
				Value: "png",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Output directory for figures",
			},
			&cli.StringFlag{
				Name:  "caption",
				Usage: "Figure caption (passed through to the result)",
			},
			&cli.BoolFlag{
				Name:  "with-source",
				Usage: "Request a source link in the final document",
			},
			&cli.StringSliceFlag{
				Name:  "attr",
				Usage: "Block attribute as key=value (repeatable)",
			},
		}, OutputFlags()...),
		Action: renderAction,
	}
}

func renderAction(c *cli.Context) error {
	out, err := cliRender.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return cli.Exit(err.Error(), exitFatal)
		}
	}

	spec, err := specFromFlags(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	renderer, err := runtime.NewRenderer(runtime.RenderConfig{
		Registry:  toolkit.DefaultRegistry(cfg.ExecutableOverrides()),
		Collector: metrics.NewCollector(),
	})
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	result, err := renderer.Render(c.Context, spec)
	if err != nil {
		return cli.Exit(fmt.Sprintf("render failed: %v", err), exitFatal)
	}

	summary := map[string]any{
		"status":      string(result.Outcome.Status),
		"figure_path": result.FigurePath,
		"cached":      result.Cached,
		"duration":    result.Duration.String(),
	}
	if result.Outcome.Message != "" {
		summary["message"] = result.Outcome.Message
	}
	if result.Outcome.Status == types.StatusScriptError {
		summary["command"] = result.Outcome.Command
		summary["exit_code"] = result.Outcome.ExitCode
	}
	if renderErr := out.Table(summary,
		[]string{"STATUS", "FIGURE", "CACHED"},
		[][]string{{string(result.Outcome.Status), result.FigurePath, fmt.Sprintf("%t", result.Cached)}},
	); renderErr != nil {
		return cli.Exit(renderErr.Error(), exitFatal)
	}

	if code := exitCodeFor(result.Outcome.Status); code != exitSuccess {
		return cli.Exit("", code)
	}
	return nil
}

// specFromFlags builds the figure request, with config values as defaults
// and flags taking precedence.
func specFromFlags(c *cli.Context, cfg *config.Config) (types.FigureSpec, error) {
	script, err := readScript(c.String("script"))
	if err != nil {
		return types.FigureSpec{}, err
	}

	dir := c.String("dir")
	if dir == "" {
		dir = cfg.Directory
	}
	if dir == "" {
		dir = "figures"
	}

	format := c.String("save-format")
	if !c.IsSet("save-format") && cfg.Format != "" {
		format = cfg.Format
	}

	attrs, err := parseAttrs(c.StringSlice("attr"))
	if err != nil {
		return types.FigureSpec{}, err
	}

	return types.FigureSpec{
		Toolkit:    types.Toolkit(c.String("toolkit")),
		Script:     script,
		Format:     types.SaveFormat(format),
		Directory:  dir,
		BlockAttrs: attrs,
		Caption:    c.String("caption"),
		WithSource: c.Bool("with-source"),
	}, nil
}

func readScript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read script from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read script %q: %w", path, err)
	}
	return string(data), nil
}

func parseAttrs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q: want key=value", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}

func exitCodeFor(status types.RenderStatus) int {
	switch status {
	case types.StatusSuccess:
		return exitSuccess
	case types.StatusChecksFailed:
		return exitChecksFailed
	case types.StatusScriptError:
		return exitScriptError
	case types.StatusToolkitMissing:
		return exitToolkitMissing
	default:
		return exitFatal
	}
}

package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/easel/cli/config"
	cliRender "github.com/pithecene-io/easel/cli/render"
	"github.com/pithecene-io/easel/toolkit"
)

// ToolkitsCommand returns the toolkits command, which probes every
// registered toolkit for availability.
func ToolkitsCommand() *cli.Command {
	return &cli.Command{
		Name:   "toolkits",
		Usage:  "List supported toolkits and probe their availability",
		Flags:  OutputFlags(),
		Action: toolkitsAction,
	}
}

type toolkitStatus struct {
	Toolkit    string `json:"toolkit"`
	Executable string `json:"executable"`
	Extension  string `json:"extension"`
	Available  bool   `json:"available"`
}

func toolkitsAction(c *cli.Context) error {
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

	registry := toolkit.DefaultRegistry(cfg.ExecutableOverrides())

	var statuses []toolkitStatus
	rows := make([][]string, 0)
	for _, p := range registry.Profiles() {
		available := p.Available(c.Context)
		statuses = append(statuses, toolkitStatus{
			Toolkit:    string(p.Toolkit),
			Executable: p.Executable,
			Extension:  p.ScriptExtension,
			Available:  available,
		})
		availText := "no"
		if available {
			availText = "yes"
		}
		rows = append(rows, []string{string(p.Toolkit), p.Executable, availText})
	}

	if err := out.Table(statuses,
		[]string{"TOOLKIT", "EXECUTABLE", "AVAILABLE"},
		rows,
	); err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	return nil
}

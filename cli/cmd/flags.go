// Package cmd provides CLI commands for the easel binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags for commands that print results.
var (
	// FormatFlag selects output format: json, table.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table",
	}

	// ConfigFlag names the YAML config file.
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to easel.yaml config file",
	}
)

// OutputFlags returns the shared flags for result-printing commands.
func OutputFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		ConfigFlag,
	}
}

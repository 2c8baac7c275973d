// Package main provides the easel CLI entrypoint.
//
// Usage:
//
//	easel render --script <path> --toolkit <name> [options]
//	easel toolkits
//	easel version
//
// Exit codes for render:
//   - 0: success (rendered or served from cache)
//   - 1: checks failed (script rejected before execution)
//   - 2: script error (toolkit ran, non-zero exit)
//   - 3: toolkit not installed
//   - 4: fatal environment failure
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pithecene-io/easel/cli/cmd"
	"github.com/pithecene-io/easel/types"
)

func main() {
	app := &cli.App{
		Name:    "easel",
		Usage:   "Content-addressed figure rendering cache for plotting toolkits",
		Version: types.Version,
		Commands: []*cli.Command{
			cmd.RenderCommand(),
			cmd.ToolkitsCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

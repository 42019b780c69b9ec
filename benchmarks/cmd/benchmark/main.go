package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "benchmark",
		Usage: "load generator for single and multi-key commands",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the command benchmarks against a server",
				Flags:  runFlags(),
				Action: runAction,
			},
			{
				Name:      "compare",
				Usage:     "compare two result files",
				ArgsUsage: "<baseline.json> <candidate.json>",
				Action:    compareAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

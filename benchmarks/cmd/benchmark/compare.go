package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func compareAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("compare needs a baseline and a candidate result file", 2)
	}

	baseline, err := loadResult(c.Args().Get(0))
	if err != nil {
		return err
	}

	candidate, err := loadResult(c.Args().Get(1))
	if err != nil {
		return err
	}

	byCommand := make(map[string]CommandResult, len(baseline.Commands))
	for _, result := range baseline.Commands {
		byCommand[result.Command] = result
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "COMMAND\t%s ops/s\t%s ops/s\tRATIO\t%s p99\t%s p99\n",
		baseline.Config.ServerType, candidate.Config.ServerType, baseline.Config.ServerType, candidate.Config.ServerType)

	for _, result := range candidate.Commands {
		base, exists := byCommand[result.Command]
		if !exists {
			continue
		}

		fmt.Fprintf(writer, "%s\t%.0f\t%.0f\t%.2f\t%v\t%v\n",
			result.Command, base.OpsPerSecond, result.OpsPerSecond, ratio(result.OpsPerSecond, base.OpsPerSecond),
			base.P99Latency, result.P99Latency)
	}

	return writer.Flush()
}

func ratio(candidate, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}

	return candidate / baseline
}

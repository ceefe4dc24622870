// bomcalc - raw material requirements from a BOM and a production plan
//
// Usage:
//   bomcalc calculate --bom bom.csv --plan plan.csv [options]
//   bomcalc validate --bom bom.csv
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"bomcalc/pkg/interfaces/cli/commands"
)

func main() {
	app := &cli.App{
		Name:  "bomcalc",
		Usage: "Explode a bill of materials against a production plan",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"BOMCALC_LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			calculateCommand(),
			validateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func calculateCommand() *cli.Command {
	return &cli.Command{
		Name:  "calculate",
		Usage: "Compute raw material requirements for a production plan",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bom",
				Aliases:  []string{"b"},
				Usage:    "Path to BOM CSV file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "plan",
				Aliases:  []string{"p"},
				Usage:    "Path to production plan CSV file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "controller",
				Usage: "Path to optional material controller CSV file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (text, json, csv)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory for CSV results",
			},
			&cli.BoolFlag{
				Name:  "raw-only",
				Usage: "Restrict the requirements table to raw materials",
			},
			&cli.BoolFlag{
				Name:  "all-levels",
				Usage: "Also compute requirements at every BOM level",
			},
			&cli.BoolFlag{
				Name:  "rollup",
				Usage: "Also compute the manufacturing quantity rollup",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Human-readable development logging",
			},
		},
		Action: func(c *cli.Context) error {
			cmd := commands.NewCalculateCommand(commands.Config{
				BOMFile:        c.String("bom"),
				PlanFile:       c.String("plan"),
				ControllerFile: c.String("controller"),
				Format:         c.String("format"),
				OutputDir:      c.String("output"),
				RawOnly:        c.Bool("raw-only"),
				AllLevels:      c.Bool("all-levels"),
				Rollup:         c.Bool("rollup"),
				LogLevel:       c.String("log-level"),
				Verbose:        c.Bool("verbose"),
			})
			return cmd.Execute()
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a BOM file for structural problems",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bom",
				Aliases:  []string{"b"},
				Usage:    "Path to BOM CSV file",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return commands.NewValidateCommand(c.String("bom"), c.String("log-level")).Execute()
		},
	}
}

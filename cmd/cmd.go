// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// setupCommand initializes the database schema and optionally seeds it.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "seed",
				Usage: "Load the embedded demo dataset after migrating",
			},
		},
		Action: r.SetupDatabase,
		Commands: []*cli.Command{
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.RollbackDatabase,
			},
		},
	}
}

// reportCommand runs reports against the store.
func reportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"rep"},
		Usage:   "Compute analytical reports",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the available reports",
				Action: r.ReportList,
			},
			{
				Name:  "run",
				Usage: "Compute a single report by name",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "n",
						Usage: "Result count for top-N reports",
					},
					&cli.StringFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Genre for genre-scoped reports",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output JSON instead of text",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.ReportRun,
			},
			{
				Name:  "all",
				Usage: "Compute the full report catalog",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "n",
						Usage: "Result count for top-N reports",
					},
					&cli.StringFlag{
						Name:    "genre",
						Aliases: []string{"g"},
						Usage:   "Genre for genre-scoped reports",
					},
				},
				Action: r.ReportAll,
			},
		},
	}
}

// exportCommand writes report files to the export directory.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export reports to files",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "report",
				Usage: "Export a single report instead of the full catalog",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (text, csv, markdown, json)",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Export directory",
			},
			&cli.IntFlag{
				Name:  "n",
				Usage: "Result count for top-N reports",
			},
			&cli.StringFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre for genre-scoped reports",
			},
		},
		Action: r.ExportReports,
	}
}

// checkCommand validates the store's referential integrity and totals.
func checkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Validate referential integrity and invoice totals",
		Flags:  []cli.Flag{configFlag()},
		Action: r.CheckData,
	}
}

// tuiCommand launches the interactive report browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse reports interactively",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "n",
				Usage: "Result count for top-N reports",
			},
			&cli.StringFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre for genre-scoped reports",
			},
		},
		Action: r.TUI,
	}
}

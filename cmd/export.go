package main

import (
	"context"
	"fmt"

	"github.com/mhollis/trackledger/internal/formatter"
	"github.com/mhollis/trackledger/internal/reports"
	"github.com/urfave/cli/v3"
)

// ExportReports computes reports and writes them to files under the export
// directory. By default the full catalog is exported; --report narrows it to
// one.
func (r *Runner) ExportReports(ctx context.Context, cmd *cli.Command) error {
	config := r.resolveConfig(cmd)

	format := cmd.String("format")
	if format == "" {
		format = config.Export.Format
	}
	dir := cmd.String("dir")
	if dir == "" {
		dir = config.Export.Directory
	}

	params, err := reportParams(cmd)
	if err != nil {
		return err
	}

	engine, err := r.loadEngine(ctx, cmd)
	if err != nil {
		return err
	}

	var tables map[string]*reports.Table
	if name := cmd.String("report"); name != "" {
		table, err := engine.Run(name, params)
		if err != nil {
			return err
		}
		tables = map[string]*reports.Table{name: table}
	} else {
		if tables, err = engine.RunAll(ctx, params); err != nil {
			return err
		}
	}

	paths, err := formatter.WriteAllExports(tables, dir, format)
	if err != nil {
		return fmt.Errorf("failed to export reports: %w", err)
	}

	r.logger.Info("exported reports", "count", len(paths), "dir", dir, "format", format)
	for _, path := range paths {
		if err := r.writePlain("%s\n", path); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mhollis/trackledger/internal/formatter"
	"github.com/mhollis/trackledger/internal/reports"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/urfave/cli/v3"
)

// ReportList prints the report catalog with usage lines.
func (r *Runner) ReportList(ctx context.Context, cmd *cli.Command) error {
	width := 0
	for _, d := range reports.Catalog() {
		if len(d.Name) > width {
			width = len(d.Name)
		}
	}

	for _, d := range reports.Catalog() {
		var params []string
		if d.TakesN {
			params = append(params, "--n")
		}
		if d.TakesGenre {
			params = append(params, "--genre")
		}
		suffix := ""
		if len(params) > 0 {
			suffix = fmt.Sprintf("  (%s)", strings.Join(params, ", "))
		}
		if err := r.writePlain("%-*s  %s%s\n", width, d.Name, d.Usage, suffix); err != nil {
			return err
		}
	}
	return nil
}

// ReportRun computes a single report by name and prints it as text or JSON.
func (r *Runner) ReportRun(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: report name (see 'report list')", shared.ErrMissingArgument)
	}

	params, err := reportParams(cmd)
	if err != nil {
		return err
	}

	engine, err := r.loadEngine(ctx, cmd)
	if err != nil {
		return err
	}

	table, err := engine.Run(name, params)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if !cmd.Bool("pretty") {
			return r.writeJSON(table, false)
		}
		data, err := formatter.ExportToJSON(table)
		if err != nil {
			return err
		}
		return r.writePlain("%s\n", data)
	}

	return r.writeTable(table)
}

// ReportAll computes the whole catalog and prints every table.
func (r *Runner) ReportAll(ctx context.Context, cmd *cli.Command) error {
	params, err := reportParams(cmd)
	if err != nil {
		return err
	}

	engine, err := r.loadEngine(ctx, cmd)
	if err != nil {
		return err
	}

	tables, err := engine.RunAll(ctx, params)
	if err != nil {
		return err
	}

	for _, d := range reports.Catalog() {
		if err := r.writeTable(tables[d.Name]); err != nil {
			return err
		}
		if err := r.writePlain("\n"); err != nil {
			return err
		}
	}
	return nil
}

// CheckData loads a snapshot, which validates referential integrity, then
// verifies that every invoice total matches the sum of its lines.
func (r *Runner) CheckData(ctx context.Context, cmd *cli.Command) error {
	snap, err := r.loadSnapshot(ctx, r.resolveConfig(cmd))
	if err != nil {
		return err
	}

	mismatches := snap.CheckInvoiceTotals()
	if len(mismatches) == 0 {
		return r.writePlain("✓ %d invoices consistent with their lines\n", len(snap.Invoices()))
	}

	r.writePlain("✗ %d invoice(s) disagree with their lines:\n", len(mismatches))
	for _, m := range mismatches {
		r.writePlain("  invoice %d: declared %s, lines sum to %s\n",
			m.InvoiceID, shared.FormatCents(m.DeclaredCents), shared.FormatCents(m.ComputedCents))
	}
	return fmt.Errorf("%w: invoice totals inconsistent", shared.ErrInvalidSnapshot)
}

// writeTable renders a table as plain text to the runner's output.
func (r *Runner) writeTable(table *reports.Table) error {
	data, err := formatter.ExportToText(table)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

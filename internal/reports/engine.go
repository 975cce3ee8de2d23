package reports

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/mhollis/trackledger/internal/snapshot"
	"golang.org/x/sync/errgroup"
)

// Engine computes the analytical report catalog against one immutable
// snapshot. All methods are safe for concurrent use.
type Engine struct {
	snap   *snapshot.Snapshot
	logger *log.Logger
}

// NewEngine creates an Engine over the given snapshot. A nil logger defaults
// to the shared stderr logger.
func NewEngine(snap *snapshot.Snapshot, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{snap: snap, logger: logger}
}

// Table is the render-ready form of any report: a title, column labels, and
// stringified rows in final output order.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Run computes the named report and returns its table form. Parameterized
// reports read N and Genre from params; the rest ignore them. Unknown names
// return [shared.ErrUnknownReport].
func (e *Engine) Run(name string, params Params) (*Table, error) {
	for _, d := range Catalog() {
		if d.Name == name {
			e.logger.Debug("computing report", "report", name)
			return d.Run(e, params)
		}
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrUnknownReport, name)
}

// RunAll computes every report in the catalog concurrently and returns the
// tables keyed by report name. Reports are independent and read-only, so no
// synchronization beyond the snapshot's immutability is needed.
func (e *Engine) RunAll(ctx context.Context, params Params) (map[string]*Table, error) {
	g, ctx := errgroup.WithContext(ctx)

	e.logger.Debug("computing full report catalog", "reports", len(Catalog()))
	results := make([]*Table, len(Catalog()))
	for i, d := range Catalog() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, err := d.Run(e, params)
			if err != nil {
				return fmt.Errorf("%s: %w", d.Name, err)
			}
			results[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := make(map[string]*Table, len(results))
	for i, d := range Catalog() {
		tables[d.Name] = results[i]
	}
	return tables, nil
}

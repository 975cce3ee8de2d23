// package formatter renders report tables to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mhollis/trackledger/internal/reports"
	"github.com/mhollis/trackledger/internal/shared"
)

// ExportToCSV converts a report table to CSV with the table's columns as the
// header row.
func ExportToCSV(table *reports.Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a report table to a Markdown pipe table under a
// title heading.
func ExportToMarkdown(table *reports.Table) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", table.Title))
	buf.WriteString(fmt.Sprintf("**Rows**: %d\n\n", len(table.Rows)))

	buf.WriteString("| " + strings.Join(table.Columns, " | ") + " |\n")
	separators := make([]string, len(table.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	buf.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range table.Rows {
		buf.WriteString("| " + strings.Join(escapePipes(row), " | ") + " |\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a report table to plain text with space-aligned
// columns.
func ExportToText(table *reports.Table) ([]byte, error) {
	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString(table.Title + "\n")
	buf.WriteString(strings.Repeat("=", len(table.Title)) + "\n")

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				buf.WriteString("  ")
			}
			buf.WriteString(cell)
			if i < len(cells)-1 {
				buf.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		buf.WriteString("\n")
	}

	writeRow(table.Columns)
	for _, row := range table.Rows {
		writeRow(row)
	}

	return buf.Bytes(), nil
}

// tableJSON is the serialized form of a report table.
type tableJSON struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ExportToJSON converts a report table to indented JSON.
func ExportToJSON(table *reports.Table) ([]byte, error) {
	return shared.MarshalJSON(tableJSON{
		Title:   table.Title,
		Columns: table.Columns,
		Rows:    table.Rows,
	}, true)
}

// Render produces the table in the named format. Supported formats are
// "csv", "markdown", "json" and "text"; anything else returns
// [shared.ErrInvalidInput].
func Render(table *reports.Table, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "csv":
		return ExportToCSV(table)
	case "markdown", "md":
		return ExportToMarkdown(table)
	case "json":
		return ExportToJSON(table)
	case "text", "txt", "":
		return ExportToText(table)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidInput, format)
	}
}

// WriteExport renders the table in the given format and writes it under dir,
// creating the directory if needed. The filename is derived from the report
// name and a fresh run ID so successive exports never collide. Returns the
// path of the written file.
func WriteExport(table *reports.Table, name, dir, format string) (string, error) {
	data, err := Render(table, format)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", name, shared.GenerateID(), extension(format)))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

// WriteAllExports writes one file per table, keyed by report name, and
// returns the written paths sorted by report name.
func WriteAllExports(tables map[string]*reports.Table, dir, format string) ([]string, error) {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	// Stable export order regardless of map iteration.
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path, err := WriteExport(tables[name], name, dir, format)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extension(format string) string {
	switch strings.ToLower(format) {
	case "csv":
		return ".csv"
	case "markdown", "md":
		return ".md"
	case "json":
		return ".json"
	default:
		return ".txt"
	}
}

func escapePipes(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	return escaped
}

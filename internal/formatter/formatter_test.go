package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhollis/trackledger/internal/reports"
	"github.com/mhollis/trackledger/internal/shared"
	helpers "github.com/mhollis/trackledger/internal/testing"
)

func sampleTable() *reports.Table {
	return &reports.Table{
		Title:   "Invoices by Country",
		Columns: []string{"Country", "Invoices"},
		Rows: [][]string{
			{"Brazil", "1"},
			{"Germany", "1"},
			{"USA", "4"},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleTable())
	if err != nil {
		t.Fatalf("failed to export CSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output should be valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}
	if records[0][0] != "Country" || records[0][1] != "Invoices" {
		t.Errorf("unexpected header row %v", records[0])
	}
	if records[3][0] != "USA" || records[3][1] != "4" {
		t.Errorf("unexpected last row %v", records[3])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(sampleTable())
	if err != nil {
		t.Fatalf("failed to export Markdown: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# Invoices by Country\n") {
		t.Errorf("expected title heading, got %q", out)
	}
	if !strings.Contains(out, "| Country | Invoices |") {
		t.Errorf("expected header row, got %q", out)
	}
	if !strings.Contains(out, "| --- | --- |") {
		t.Errorf("expected separator row, got %q", out)
	}
	if !strings.Contains(out, "| Brazil | 1 |") {
		t.Errorf("expected data row, got %q", out)
	}

	t.Run("EscapesPipes", func(t *testing.T) {
		table := &reports.Table{
			Title:   "Tracks",
			Columns: []string{"Name"},
			Rows:    [][]string{{"AC|DC Live"}},
		}
		data, err := ExportToMarkdown(table)
		if err != nil {
			t.Fatalf("failed to export Markdown: %v", err)
		}
		if !strings.Contains(string(data), `AC\|DC Live`) {
			t.Errorf("expected escaped pipe, got %q", string(data))
		}
	})
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleTable())
	if err != nil {
		t.Fatalf("failed to export text: %v", err)
	}
	out := string(data)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected title, underline, header and 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Invoices by Country" {
		t.Errorf("unexpected title line %q", lines[0])
	}
	// Columns align: "Germany" is the widest first-column value.
	if !strings.HasPrefix(lines[4], "Germany  ") {
		t.Errorf("expected aligned row, got %q", lines[4])
	}
}

func TestExportToJSON(t *testing.T) {
	data, err := ExportToJSON(sampleTable())
	if err != nil {
		t.Fatalf("failed to export JSON: %v", err)
	}

	var decoded struct {
		Title   string     `json:"title"`
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output should be valid JSON: %v", err)
	}
	if decoded.Title != "Invoices by Country" || len(decoded.Rows) != 3 {
		t.Errorf("unexpected decoded table %+v", decoded)
	}
}

func TestRender(t *testing.T) {
	table := sampleTable()

	for _, format := range []string{"csv", "markdown", "md", "json", "text", "txt", ""} {
		if _, err := Render(table, format); err != nil {
			t.Errorf("format %q should render: %v", format, err)
		}
	}

	if _, err := Render(table, "xml"); !errors.Is(err, shared.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unsupported format, got %v", err)
	}
}

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := WriteExport(sampleTable(), "invoices-by-country", dir, "csv")
	if err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	helpers.AssertFileExists(t, path)

	if !strings.HasPrefix(filepath.Base(path), "invoices-by-country_") {
		t.Errorf("expected report name prefix, got %s", path)
	}
	if filepath.Ext(path) != ".csv" {
		t.Errorf("expected .csv extension, got %s", path)
	}

	content := helpers.MustReadFile(t, path)
	if !strings.Contains(content, "Country,Invoices") {
		t.Errorf("unexpected export contents %q", content)
	}

	t.Run("DistinctFilenames", func(t *testing.T) {
		second, err := WriteExport(sampleTable(), "invoices-by-country", dir, "csv")
		if err != nil {
			t.Fatalf("failed to write second export: %v", err)
		}
		if second == path {
			t.Error("expected a distinct filename per export run")
		}
	})
}

func TestWriteAllExports(t *testing.T) {
	dir := t.TempDir()
	tables := map[string]*reports.Table{
		"top-city":            sampleTable(),
		"invoices-by-country": sampleTable(),
	}

	paths, err := WriteAllExports(tables, dir, "markdown")
	if err != nil {
		t.Fatalf("failed to write exports: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %d", len(paths))
	}
	// Paths come back sorted by report name.
	if !strings.HasPrefix(filepath.Base(paths[0]), "invoices-by-country_") {
		t.Errorf("expected invoices-by-country first, got %s", paths[0])
	}
	for _, p := range paths {
		helpers.AssertFileExists(t, p)
	}
}

package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/mhollis/trackledger/internal/models"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/mhollis/trackledger/internal/snapshot"
	helpers "github.com/mhollis/trackledger/internal/testing"
)

// storeFixture returns a small but complete store covering every relation:
// three artists, a genre-less track, tied customers and cities in the USA,
// and a tied genre race (Jazz vs Rock) among USA purchases.
func storeFixture() snapshot.Data {
	return snapshot.Data{
		Artists: []models.Artist{
			{ID: 1, Name: "The Amps"},
			{ID: 2, Name: "Night Quartet"},
			{ID: 3, Name: "Volt"},
		},
		Albums: []models.Album{
			{ID: 1, Title: "Live Wire", ArtistID: 1},
			{ID: 2, Title: "After Hours", ArtistID: 2},
			{ID: 3, Title: "Overload", ArtistID: 3},
		},
		Genres: []models.Genre{
			{ID: 1, Name: "Rock"},
			{ID: 2, Name: "Jazz"},
			{ID: 3, Name: "Metal"},
		},
		MediaTypes: []models.MediaType{
			{ID: 1, Name: "MPEG audio file"},
		},
		Tracks: []models.Track{
			{ID: 1, Name: "Jolt", AlbumID: helpers.IntP(1), GenreID: helpers.IntP(1), MediaTypeID: 1, DurationMS: 210000, UnitPriceCents: 100},
			{ID: 2, Name: "Current", AlbumID: helpers.IntP(1), GenreID: helpers.IntP(1), MediaTypeID: 1, DurationMS: 200000, UnitPriceCents: 100},
			{ID: 3, Name: "Slow Burn", AlbumID: helpers.IntP(2), GenreID: helpers.IntP(2), MediaTypeID: 1, DurationMS: 300000, UnitPriceCents: 140},
			{ID: 4, Name: "Overload", AlbumID: helpers.IntP(3), GenreID: helpers.IntP(1), MediaTypeID: 1, DurationMS: 250000, UnitPriceCents: 100},
			{ID: 5, Name: "Untitled", MediaTypeID: 1, DurationMS: 180000, UnitPriceCents: 100},
		},
		Employees: []models.Employee{
			{ID: 1, FirstName: "Andrew", LastName: "Adams", Title: "General Manager", Level: models.SeniorityGeneralManager},
			{ID: 2, FirstName: "Nancy", LastName: "Edwards", Title: "Sales Manager", Level: models.SeniorityManager, ReportsTo: helpers.IntP(1)},
			{ID: 3, FirstName: "Jane", LastName: "Peacock", Title: "Sales Support Agent", Level: models.SenioritySupport, ReportsTo: helpers.IntP(2)},
			{ID: 4, FirstName: "Margaret", LastName: "Park", Title: "Sales Support Agent", Level: models.SenioritySupport, ReportsTo: helpers.IntP(2)},
		},
		Customers: []models.Customer{
			{ID: 1, FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", City: "São Paulo", Country: "Brazil", SupportRepID: helpers.IntP(3)},
			{ID: 2, FirstName: "Ben", LastName: "Hart", Email: "ben@example.com", City: "New York", Country: "USA", SupportRepID: helpers.IntP(3)},
			{ID: 3, FirstName: "Cal", LastName: "Ito", Email: "cal@example.com", City: "Boston", Country: "USA", SupportRepID: helpers.IntP(4)},
			{ID: 4, FirstName: "Dee", LastName: "Klein", Email: "dee@example.com", City: "Berlin", Country: "Germany", SupportRepID: helpers.IntP(4)},
		},
		Invoices: []models.Invoice{
			{ID: 1, CustomerID: 1, InvoiceDate: "2025-01-05", BillingCity: "São Paulo", BillingCountry: "Brazil", TotalCents: 200},
			{ID: 2, CustomerID: 2, InvoiceDate: "2025-01-09", BillingCity: "New York", BillingCountry: "USA", TotalCents: 140},
			{ID: 3, CustomerID: 3, InvoiceDate: "2025-02-01", BillingCity: "Boston", BillingCountry: "USA", TotalCents: 140},
			{ID: 4, CustomerID: 2, InvoiceDate: "2025-02-14", BillingCity: "New York", BillingCountry: "USA", TotalCents: 100},
			{ID: 5, CustomerID: 4, InvoiceDate: "2025-03-03", BillingCity: "Berlin", BillingCountry: "Germany", TotalCents: 100},
			{ID: 6, CustomerID: 3, InvoiceDate: "2025-03-21", BillingCity: "Boston", BillingCountry: "USA", TotalCents: 100},
		},
		InvoiceLines: []models.InvoiceLine{
			{ID: 1, InvoiceID: 1, TrackID: 1, UnitPriceCents: 100, Quantity: 1},
			{ID: 2, InvoiceID: 1, TrackID: 2, UnitPriceCents: 100, Quantity: 1},
			{ID: 3, InvoiceID: 2, TrackID: 3, UnitPriceCents: 140, Quantity: 1},
			{ID: 4, InvoiceID: 3, TrackID: 3, UnitPriceCents: 140, Quantity: 1},
			{ID: 5, InvoiceID: 4, TrackID: 4, UnitPriceCents: 100, Quantity: 1},
			{ID: 6, InvoiceID: 5, TrackID: 5, UnitPriceCents: 100, Quantity: 1},
			{ID: 7, InvoiceID: 6, TrackID: 1, UnitPriceCents: 100, Quantity: 1},
		},
		Playlists: []models.Playlist{
			{ID: 1, Name: "Road Trip"},
		},
		PlaylistTracks: []models.PlaylistTrack{
			{PlaylistID: 1, TrackID: 1},
			{PlaylistID: 1, TrackID: 4},
		},
	}
}

// newTestEngine builds an engine over the given data or fails the test.
func newTestEngine(t *testing.T, data snapshot.Data) *Engine {
	t.Helper()
	snap, err := snapshot.New(data)
	if err != nil {
		t.Fatalf("failed to build snapshot: %v", err)
	}
	return NewEngine(snap, nil)
}

func TestRun(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	t.Run("DispatchesByName", func(t *testing.T) {
		table, err := engine.Run("invoices-by-country", DefaultParams())
		if err != nil {
			t.Fatalf("failed to run report: %v", err)
		}
		if len(table.Rows) != 3 {
			t.Errorf("expected 3 country rows, got %d", len(table.Rows))
		}
	})

	t.Run("UnknownReport", func(t *testing.T) {
		_, err := engine.Run("no-such-report", DefaultParams())
		if !errors.Is(err, shared.ErrUnknownReport) {
			t.Errorf("expected ErrUnknownReport, got %v", err)
		}
	})
}

func TestRunAll(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	tables, err := engine.RunAll(context.Background(), DefaultParams())
	if err != nil {
		t.Fatalf("failed to run catalog: %v", err)
	}

	if len(tables) != len(Catalog()) {
		t.Fatalf("expected %d tables, got %d", len(Catalog()), len(tables))
	}
	for _, d := range Catalog() {
		table, ok := tables[d.Name]
		if !ok || table == nil {
			t.Errorf("missing table for report %s", d.Name)
			continue
		}
		if len(table.Columns) == 0 {
			t.Errorf("report %s has no columns", d.Name)
		}
	}
}

func TestRunAllDeterministic(t *testing.T) {
	// Two engines over identical data must produce identical tables.
	first := newTestEngine(t, storeFixture())
	second := newTestEngine(t, storeFixture())

	a, err := first.RunAll(context.Background(), DefaultParams())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := second.RunAll(context.Background(), DefaultParams())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for name, ta := range a {
		tb := b[name]
		if len(ta.Rows) != len(tb.Rows) {
			t.Errorf("report %s: row counts differ (%d vs %d)", name, len(ta.Rows), len(tb.Rows))
			continue
		}
		for i := range ta.Rows {
			for j := range ta.Rows[i] {
				if ta.Rows[i][j] != tb.Rows[i][j] {
					t.Errorf("report %s row %d col %d: %q vs %q", name, i, j, ta.Rows[i][j], tb.Rows[i][j])
				}
			}
		}
	}
}

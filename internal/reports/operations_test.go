package reports

import (
	"errors"
	"testing"

	"github.com/mhollis/trackledger/internal/models"
	"github.com/mhollis/trackledger/internal/shared"
	"github.com/mhollis/trackledger/internal/snapshot"
	helpers "github.com/mhollis/trackledger/internal/testing"
)

func TestSeniorMostEmployees(t *testing.T) {
	t.Run("SingleMaximum", func(t *testing.T) {
		engine := newTestEngine(t, storeFixture())

		rows, err := engine.SeniorMostEmployees()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if len(rows) != 1 || rows[0].Name != "Andrew Adams" {
			t.Errorf("expected the general manager, got %+v", rows)
		}
	})

	t.Run("TiesAllReturnedInInputOrder", func(t *testing.T) {
		engine := newTestEngine(t, snapshot.Data{
			Employees: []models.Employee{
				{ID: 1, FirstName: "Pat", LastName: "Lee", Title: "General Manager", Level: models.SeniorityGeneralManager},
				{ID: 2, FirstName: "Sam", LastName: "Roy", Title: "Sales Support Agent", Level: models.SenioritySupport},
				{ID: 3, FirstName: "Kim", LastName: "Chu", Title: "General Manager", Level: models.SeniorityGeneralManager},
			},
		})

		rows, err := engine.SeniorMostEmployees()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected both tied employees, got %d", len(rows))
		}
		if rows[0].ID != 1 || rows[1].ID != 3 {
			t.Errorf("expected input order [1 3], got [%d %d]", rows[0].ID, rows[1].ID)
		}
	})

	t.Run("EmptyRelation", func(t *testing.T) {
		engine := newTestEngine(t, snapshot.Data{})
		_, err := engine.SeniorMostEmployees()
		if !errors.Is(err, shared.ErrMissingData) {
			t.Errorf("expected ErrMissingData, got %v", err)
		}
	})
}

func TestInvoiceCountByCountry(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	rows, err := engine.InvoiceCountByCountry()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	want := []CountryCount{
		{Country: "USA", Invoices: 4},
		{Country: "Brazil", Invoices: 1},
		{Country: "Germany", Invoices: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestTopInvoiceTotals(t *testing.T) {
	t.Run("DuplicatesRetained", func(t *testing.T) {
		engine := newTestEngine(t, snapshot.Data{
			Customers: []models.Customer{{ID: 1, FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", City: "São Paulo", Country: "Brazil"}},
			Invoices: []models.Invoice{
				{ID: 1, CustomerID: 1, BillingCountry: "Brazil", TotalCents: 1000},
				{ID: 2, CustomerID: 1, BillingCountry: "Brazil", TotalCents: 1000},
				{ID: 3, CustomerID: 1, BillingCountry: "Brazil", TotalCents: 500},
				{ID: 4, CustomerID: 1, BillingCountry: "Brazil", TotalCents: 100},
			},
		})

		rows, err := engine.TopInvoiceTotals(3)
		if err != nil {
			t.Fatalf("failed: %v", err)
		}

		got := []int64{}
		for _, r := range rows {
			got = append(got, r.TotalCents)
		}
		want := []int64{1000, 1000, 500}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected %v, got %v", want, got)
				break
			}
		}
	})

	t.Run("NLargerThanRelation", func(t *testing.T) {
		engine := newTestEngine(t, storeFixture())
		rows, err := engine.TopInvoiceTotals(100)
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if len(rows) != 6 {
			t.Errorf("expected all 6 invoices, got %d", len(rows))
		}
	})

	t.Run("InvalidN", func(t *testing.T) {
		engine := newTestEngine(t, storeFixture())
		_, err := engine.TopInvoiceTotals(0)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestTopCityByRevenue(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	row, err := engine.TopCityByRevenue()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	// New York and Boston both sum to 240; New York appears first in
	// invoice order and wins.
	if row.City != "New York" || row.RevenueCents != 240 {
		t.Errorf("expected New York at 240, got %+v", row)
	}
}

func TestTopCustomerBySpend(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	row, err := engine.TopCustomerBySpend()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	// Ben and Cal both total 240; Ben's first invoice comes first.
	if row.Name != "Ben Hart" || row.SpendCents != 240 {
		t.Errorf("expected Ben Hart at 240, got %+v", row)
	}
}

func TestGenreListeners(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	t.Run("CaseInsensitiveOrderedByEmail", func(t *testing.T) {
		rows, err := engine.GenreListeners("rock")
		if err != nil {
			t.Fatalf("failed: %v", err)
		}

		emails := []string{}
		for _, r := range rows {
			emails = append(emails, r.Email)
		}
		want := []string{"ana@example.com", "ben@example.com", "cal@example.com"}
		if len(emails) != len(want) {
			t.Fatalf("expected %v, got %v", want, emails)
		}
		for i := range want {
			if emails[i] != want[i] {
				t.Errorf("expected %v, got %v", want, emails)
				break
			}
		}
	})

	t.Run("GenrelessTracksNeverMatch", func(t *testing.T) {
		// Dee only bought the genre-less "Untitled" track.
		rows, err := engine.GenreListeners("Rock")
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		for _, r := range rows {
			if r.Email == "dee@example.com" {
				t.Error("customer with only genre-less purchases should not appear")
			}
		}
	})

	t.Run("UnknownGenreIsEmpty", func(t *testing.T) {
		rows, err := engine.GenreListeners("Polka")
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no listeners, got %d", len(rows))
		}
	})

	t.Run("RockListeners", func(t *testing.T) {
		rows, err := engine.RockListeners()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		direct, err := engine.GenreListeners("Rock")
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if len(rows) != len(direct) {
			t.Fatalf("expected %d listeners, got %d", len(direct), len(rows))
		}
		for i := range rows {
			if rows[i] != direct[i] {
				t.Errorf("row %d: %+v != %+v", i, rows[i], direct[i])
			}
		}
	})
}

func TestTopArtistsByGenreTrackCount(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	rows, err := engine.TopArtistsByGenreTrackCount("Rock", 5)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	want := []ArtistTrackCount{
		{ArtistID: 1, Name: "The Amps", Tracks: 2},
		{ArtistID: 3, Name: "Volt", Tracks: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestAboveAverageDurationTracks(t *testing.T) {
	t.Run("StrictlyAboveMean", func(t *testing.T) {
		engine := newTestEngine(t, snapshot.Data{
			MediaTypes: []models.MediaType{{ID: 1, Name: "MPEG audio file"}},
			Tracks: []models.Track{
				{ID: 1, Name: "Short", MediaTypeID: 1, DurationMS: 100},
				{ID: 2, Name: "Medium", MediaTypeID: 1, DurationMS: 200},
				{ID: 3, Name: "Long", MediaTypeID: 1, DurationMS: 300},
			},
		})

		rows, err := engine.AboveAverageDurationTracks()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}

		// Mean is exactly 200; only the 300ms track strictly exceeds it.
		if len(rows) != 1 || rows[0].Name != "Long" {
			t.Errorf("expected only the longest track, got %+v", rows)
		}
	})

	t.Run("OrderedByDurationDescending", func(t *testing.T) {
		engine := newTestEngine(t, storeFixture())
		rows, err := engine.AboveAverageDurationTracks()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].DurationMS > rows[i-1].DurationMS {
				t.Errorf("rows out of order: %+v", rows)
				break
			}
		}
	})
}

func TestSpendPerCustomerOnBestSellingArtist(t *testing.T) {
	t.Run("SelectsMaxRevenueArtist", func(t *testing.T) {
		// The Amps earn 300 in line revenue, Night Quartet 280, Volt 100.
		engine := newTestEngine(t, storeFixture())

		result, err := engine.SpendPerCustomerOnBestSellingArtist()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}

		if result.ArtistName != "The Amps" || result.RevenueCents != 300 {
			t.Fatalf("expected The Amps at 300, got %s at %d", result.ArtistName, result.RevenueCents)
		}

		// Spend is restricted to the winning artist's tracks: Ana bought
		// two of them (200), Cal one (100); Ben bought none.
		want := []CustomerSpend{
			{CustomerID: 1, Name: "Ana Souza", Email: "ana@example.com", SpendCents: 200},
			{CustomerID: 3, Name: "Cal Ito", Email: "cal@example.com", SpendCents: 100},
		}
		if len(result.Customers) != len(want) {
			t.Fatalf("expected %d customers, got %d", len(want), len(result.Customers))
		}
		for i := range want {
			if result.Customers[i] != want[i] {
				t.Errorf("row %d: expected %+v, got %+v", i, want[i], result.Customers[i])
			}
		}
	})

	t.Run("TwoArtistPhaseCheck", func(t *testing.T) {
		// Revenue 100 vs 90: the engine must pick the 100-revenue artist
		// and count spend only against that artist's tracks.
		engine := newTestEngine(t, snapshot.Data{
			Artists: []models.Artist{
				{ID: 1, Name: "Winner"},
				{ID: 2, Name: "RunnerUp"},
			},
			Albums: []models.Album{
				{ID: 1, Title: "First", ArtistID: 1},
				{ID: 2, Title: "Second", ArtistID: 2},
			},
			MediaTypes: []models.MediaType{{ID: 1, Name: "MPEG audio file"}},
			Tracks: []models.Track{
				{ID: 1, Name: "A", AlbumID: helpers.IntP(1), MediaTypeID: 1, DurationMS: 1000, UnitPriceCents: 100},
				{ID: 2, Name: "B", AlbumID: helpers.IntP(2), MediaTypeID: 1, DurationMS: 1000, UnitPriceCents: 90},
			},
			Customers: []models.Customer{
				{ID: 1, FirstName: "Ana", LastName: "Souza", Email: "ana@example.com", City: "São Paulo", Country: "Brazil"},
			},
			Invoices: []models.Invoice{
				{ID: 1, CustomerID: 1, BillingCountry: "Brazil", TotalCents: 190},
			},
			InvoiceLines: []models.InvoiceLine{
				{ID: 1, InvoiceID: 1, TrackID: 1, UnitPriceCents: 100, Quantity: 1},
				{ID: 2, InvoiceID: 1, TrackID: 2, UnitPriceCents: 90, Quantity: 1},
			},
		})

		result, err := engine.SpendPerCustomerOnBestSellingArtist()
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if result.ArtistName != "Winner" {
			t.Fatalf("expected Winner, got %s", result.ArtistName)
		}
		if len(result.Customers) != 1 || result.Customers[0].SpendCents != 100 {
			t.Errorf("expected spend of 100 on Winner only, got %+v", result.Customers)
		}
	})
}

func TestTopGenrePerCountry(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	rows, err := engine.TopGenrePerCountry()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	// USA has Jazz and Rock tied at 2 purchases: both rows are kept, Jazz
	// first because its lines come first. Germany's only purchase is a
	// genre-less track, so Germany has no row at all.
	want := []CountryGenre{
		{Country: "Brazil", Genre: "Rock", Purchases: 2},
		{Country: "USA", Genre: "Jazz", Purchases: 2},
		{Country: "USA", Genre: "Rock", Purchases: 2},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestTopSpenderPerCountry(t *testing.T) {
	engine := newTestEngine(t, storeFixture())

	rows, err := engine.TopSpenderPerCountry()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}

	// Ben and Cal tie at 240 in the USA: both kept, Ben first.
	want := []CountrySpender{
		{Country: "Brazil", CustomerID: 1, Name: "Ana Souza", SpendCents: 200},
		{Country: "Germany", CustomerID: 4, Name: "Dee Klein", SpendCents: 100},
		{Country: "USA", CustomerID: 2, Name: "Ben Hart", SpendCents: 240},
		{Country: "USA", CustomerID: 3, Name: "Cal Ito", SpendCents: 240},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

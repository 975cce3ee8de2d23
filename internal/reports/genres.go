package reports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mhollis/trackledger/internal/shared"
)

// trackIDsForGenre returns the set of track ids whose genre name matches,
// case-insensitively. Tracks with no genre are excluded from genre-keyed
// aggregates.
func (e *Engine) trackIDsForGenre(genre string) map[int]bool {
	genreIDs := make(map[int]bool)
	for _, g := range e.snap.Genres() {
		if strings.EqualFold(g.Name, genre) {
			genreIDs[g.ID] = true
		}
	}

	trackIDs := make(map[int]bool)
	for _, t := range e.snap.Tracks() {
		if t.GenreID != nil && genreIDs[*t.GenreID] {
			trackIDs[t.ID] = true
		}
	}
	return trackIDs
}

// CountryGenre is one result row of [Engine.TopGenrePerCountry].
type CountryGenre struct {
	Country   string
	Genre     string
	Purchases int
}

// TopGenrePerCountry returns, for each billing country, the genre(s) with
// the maximum purchase count (sum of line quantities). Genres tied at the
// maximum are all returned. Countries are ordered ascending; tied genres
// keep line input order. Lines whose track has no genre are excluded.
func (e *Engine) TopGenrePerCountry() ([]CountryGenre, error) {
	if len(e.snap.Invoices()) == 0 {
		return nil, fmt.Errorf("%w: invoices", shared.ErrMissingData)
	}
	if len(e.snap.InvoiceLines()) == 0 {
		return nil, fmt.Errorf("%w: invoice lines", shared.ErrMissingData)
	}
	if len(e.snap.Genres()) == 0 {
		return nil, fmt.Errorf("%w: genres", shared.ErrMissingData)
	}

	var countries []string
	byCountry := make(map[string]*counter[int])
	for _, line := range e.snap.InvoiceLines() {
		track, ok := e.snap.TrackByID(line.TrackID)
		if !ok || track.GenreID == nil {
			continue
		}
		invoice, ok := e.snap.InvoiceByID(line.InvoiceID)
		if !ok {
			continue
		}

		purchases, ok := byCountry[invoice.BillingCountry]
		if !ok {
			purchases = newCounter[int]()
			byCountry[invoice.BillingCountry] = purchases
			countries = append(countries, invoice.BillingCountry)
		}
		purchases.add(*track.GenreID, int64(line.Quantity))
	}
	sort.Strings(countries)

	var rows []CountryGenre
	for _, country := range countries {
		purchases := byCountry[country]
		for _, genreID := range purchases.maxKeys() {
			genre, _ := e.snap.GenreByID(genreID)
			rows = append(rows, CountryGenre{
				Country:   country,
				Genre:     genre.Name,
				Purchases: int(purchases.totals[genreID]),
			})
		}
	}
	return rows, nil
}

func topGenrePerCountryTable(e *Engine, _ Params) (*Table, error) {
	rows, err := e.TopGenrePerCountry()
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   "Top genre per country",
		Columns: []string{"Country", "Genre", "Purchases"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Country, r.Genre, fmt.Sprintf("%d", r.Purchases)})
	}
	return table, nil
}

package reports

import (
	"fmt"
	"sort"

	"github.com/mhollis/trackledger/internal/shared"
)

// ArtistTrackCount is one result row of [Engine.TopArtistsByGenreTrackCount].
type ArtistTrackCount struct {
	ArtistID int
	Name     string
	Tracks   int
}

// TopArtistsByGenreTrackCount counts tracks per artist within the named
// genre, resolved through Track→Album→Artist, and returns the top n by
// count descending; equal counts order by artist name ascending. Tracks
// without an album cannot be attributed to an artist and are excluded, as
// are tracks without a genre.
func (e *Engine) TopArtistsByGenreTrackCount(genre string, n int) ([]ArtistTrackCount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", shared.ErrInvalidInput)
	}
	if len(e.snap.Tracks()) == 0 {
		return nil, fmt.Errorf("%w: tracks", shared.ErrMissingData)
	}
	if len(e.snap.Genres()) == 0 {
		return nil, fmt.Errorf("%w: genres", shared.ErrMissingData)
	}

	genreTracks := e.trackIDsForGenre(genre)

	counts := newCounter[int]()
	for _, track := range e.snap.Tracks() {
		if !genreTracks[track.ID] || track.AlbumID == nil {
			continue
		}
		album, ok := e.snap.AlbumByID(*track.AlbumID)
		if !ok {
			continue
		}
		counts.add(album.ArtistID, 1)
	}

	rows := make([]ArtistTrackCount, 0, counts.len())
	for _, artistID := range counts.order {
		artist, _ := e.snap.ArtistByID(artistID)
		rows = append(rows, ArtistTrackCount{
			ArtistID: artistID,
			Name:     artist.Name,
			Tracks:   int(counts.totals[artistID]),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Tracks != rows[j].Tracks {
			return rows[i].Tracks > rows[j].Tracks
		}
		return rows[i].Name < rows[j].Name
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// BestSellingArtistSpend is the result of
// [Engine.SpendPerCustomerOnBestSellingArtist].
type BestSellingArtistSpend struct {
	ArtistID     int
	ArtistName   string
	RevenueCents int64
	Customers    []CustomerSpend
}

// SpendPerCustomerOnBestSellingArtist runs the two-phase aggregation: first
// the artist with the maximum total line revenue (unit price × quantity)
// across all invoice lines, then each customer's spend restricted to that
// artist's tracks. Customers with zero spend on the artist are omitted;
// results order by spend descending, ties in invoice-line input order.
// Among artists tied on revenue the first encountered in line order wins.
func (e *Engine) SpendPerCustomerOnBestSellingArtist() (BestSellingArtistSpend, error) {
	lines := e.snap.InvoiceLines()
	if len(lines) == 0 {
		return BestSellingArtistSpend{}, fmt.Errorf("%w: invoice lines", shared.ErrMissingData)
	}
	if len(e.snap.Artists()) == 0 {
		return BestSellingArtistSpend{}, fmt.Errorf("%w: artists", shared.ErrMissingData)
	}

	// Phase 1: revenue per artist. Tracks without an album have no artist
	// and do not contribute.
	revenue := newCounter[int]()
	for _, line := range lines {
		artistID, ok := e.artistForTrack(line.TrackID)
		if !ok {
			continue
		}
		revenue.add(artistID, line.AmountCents())
	}
	if revenue.len() == 0 {
		return BestSellingArtistSpend{}, fmt.Errorf("%w: no invoice line resolves to an artist", shared.ErrMissingData)
	}

	bestArtist := revenue.maxKeys()[0]
	artist, _ := e.snap.ArtistByID(bestArtist)

	// Phase 2: per-customer spend on that artist's tracks only.
	spend := newCounter[int]()
	for _, line := range lines {
		artistID, ok := e.artistForTrack(line.TrackID)
		if !ok || artistID != bestArtist {
			continue
		}
		invoice, ok := e.snap.InvoiceByID(line.InvoiceID)
		if !ok {
			continue
		}
		spend.add(invoice.CustomerID, line.AmountCents())
	}

	result := BestSellingArtistSpend{
		ArtistID:     bestArtist,
		ArtistName:   artist.Name,
		RevenueCents: revenue.totals[bestArtist],
	}
	for _, customerID := range spend.order {
		if spend.totals[customerID] == 0 {
			continue
		}
		customer, _ := e.snap.CustomerByID(customerID)
		result.Customers = append(result.Customers, CustomerSpend{
			CustomerID: customerID,
			Name:       customer.Name(),
			Email:      customer.Email,
			SpendCents: spend.totals[customerID],
		})
	}

	sort.SliceStable(result.Customers, func(i, j int) bool {
		return result.Customers[i].SpendCents > result.Customers[j].SpendCents
	})
	return result, nil
}

// artistForTrack resolves a track to its artist through the album. Returns
// false when the track is unknown or has no album.
func (e *Engine) artistForTrack(trackID int) (int, bool) {
	track, ok := e.snap.TrackByID(trackID)
	if !ok || track.AlbumID == nil {
		return 0, false
	}
	album, ok := e.snap.AlbumByID(*track.AlbumID)
	if !ok {
		return 0, false
	}
	return album.ArtistID, true
}

func topArtistsByGenreTable(e *Engine, p Params) (*Table, error) {
	rows, err := e.TopArtistsByGenreTrackCount(p.Genre, p.N)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   fmt.Sprintf("Top %d %s artists by track count", p.N, p.Genre),
		Columns: []string{"Artist", "Tracks"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Name, fmt.Sprintf("%d", r.Tracks)})
	}
	return table, nil
}

func bestSellingArtistSpendTable(e *Engine, _ Params) (*Table, error) {
	result, err := e.SpendPerCustomerOnBestSellingArtist()
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   fmt.Sprintf("Customer spend on %s (best-selling artist)", result.ArtistName),
		Columns: []string{"Customer", "Email", "Spend"},
	}
	for _, r := range result.Customers {
		table.Rows = append(table.Rows, []string{r.Name, r.Email, shared.FormatCents(r.SpendCents)})
	}
	return table, nil
}

package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhollis/trackledger/internal/models"
)

// Load reads every relation from the database in primary-key order and
// returns a validated Snapshot. The read happens inside a single
// transaction so invoice totals stay consistent with their lines even if a
// writer is active.
func Load(ctx context.Context, db *sql.DB) (*Snapshot, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot read: %w", err)
	}
	defer tx.Rollback()

	var data Data

	if data.Artists, err = loadArtists(ctx, tx); err != nil {
		return nil, err
	}
	if data.Albums, err = loadAlbums(ctx, tx); err != nil {
		return nil, err
	}
	if data.Genres, err = loadGenres(ctx, tx); err != nil {
		return nil, err
	}
	if data.MediaTypes, err = loadMediaTypes(ctx, tx); err != nil {
		return nil, err
	}
	if data.Tracks, err = loadTracks(ctx, tx); err != nil {
		return nil, err
	}
	if data.Employees, err = loadEmployees(ctx, tx); err != nil {
		return nil, err
	}
	if data.Customers, err = loadCustomers(ctx, tx); err != nil {
		return nil, err
	}
	if data.Invoices, err = loadInvoices(ctx, tx); err != nil {
		return nil, err
	}
	if data.InvoiceLines, err = loadInvoiceLines(ctx, tx); err != nil {
		return nil, err
	}
	if data.Playlists, err = loadPlaylists(ctx, tx); err != nil {
		return nil, err
	}
	if data.PlaylistTracks, err = loadPlaylistTracks(ctx, tx); err != nil {
		return nil, err
	}

	return New(data)
}

func loadArtists(ctx context.Context, tx *sql.Tx) ([]models.Artist, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM artists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return artists, nil
}

func loadAlbums(ctx context.Context, tx *sql.Tx) ([]models.Album, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, title, artist_id FROM albums ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.ID, &a.Title, &a.ArtistID); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return albums, nil
}

func loadGenres(ctx context.Context, tx *sql.Tx) ([]models.Genre, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM genres ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return genres, nil
}

func loadMediaTypes(ctx context.Context, tx *sql.Tx) ([]models.MediaType, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM media_types ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query media types: %w", err)
	}
	defer rows.Close()

	var mediaTypes []models.MediaType
	for rows.Next() {
		var m models.MediaType
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan media type: %w", err)
		}
		mediaTypes = append(mediaTypes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return mediaTypes, nil
}

func loadTracks(ctx context.Context, tx *sql.Tx) ([]models.Track, error) {
	query := `
		SELECT id, name, album_id, genre_id, media_type_id, duration_ms, unit_price_cents
		FROM tracks ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var (
			t       models.Track
			albumID sql.NullInt64
			genreID sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.Name, &albumID, &genreID, &t.MediaTypeID, &t.DurationMS, &t.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		t.AlbumID = intPtr(albumID)
		t.GenreID = intPtr(genreID)
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return tracks, nil
}

func loadEmployees(ctx context.Context, tx *sql.Tx) ([]models.Employee, error) {
	query := `
		SELECT id, first_name, last_name, title, level, reports_to
		FROM employees ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var (
			e         models.Employee
			level     string
			reportsTo sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Title, &level, &reportsTo); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.Level = models.ParseSeniority(level, e.Title)
		e.ReportsTo = intPtr(reportsTo)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return employees, nil
}

func loadCustomers(ctx context.Context, tx *sql.Tx) ([]models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, city, country, support_rep_id
		FROM customers ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var (
			c          models.Customer
			supportRep sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.City, &c.Country, &supportRep); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		c.SupportRepID = intPtr(supportRep)
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return customers, nil
}

func loadInvoices(ctx context.Context, tx *sql.Tx) ([]models.Invoice, error) {
	query := `
		SELECT id, customer_id, invoice_date, billing_city, billing_country, total_cents
		FROM invoices ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.InvoiceDate, &inv.BillingCity, &inv.BillingCountry, &inv.TotalCents); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return invoices, nil
}

func loadInvoiceLines(ctx context.Context, tx *sql.Tx) ([]models.InvoiceLine, error) {
	query := `
		SELECT id, invoice_id, track_id, unit_price_cents, quantity
		FROM invoice_lines ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice lines: %w", err)
	}
	defer rows.Close()

	var lines []models.InvoiceLine
	for rows.Next() {
		var l models.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.TrackID, &l.UnitPriceCents, &l.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return lines, nil
}

func loadPlaylists(ctx context.Context, tx *sql.Tx) ([]models.Playlist, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM playlists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return playlists, nil
}

func loadPlaylistTracks(ctx context.Context, tx *sql.Tx) ([]models.PlaylistTrack, error) {
	query := "SELECT playlist_id, track_id FROM playlist_tracks ORDER BY playlist_id, track_id"
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist tracks: %w", err)
	}
	defer rows.Close()

	var junctions []models.PlaylistTrack
	for rows.Next() {
		var pt models.PlaylistTrack
		if err := rows.Scan(&pt.PlaylistID, &pt.TrackID); err != nil {
			return nil, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		junctions = append(junctions, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return junctions, nil
}

// intPtr converts a nullable integer column to an optional reference.
func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

package snapshot

import (
	"github.com/mhollis/trackledger/internal/models"
)

// Data holds every relation of the store schema in load order. Slices are
// ordered by primary key as read from the database; the reporting engine's
// tie policies depend on that order being stable.
type Data struct {
	Artists        []models.Artist
	Albums         []models.Album
	Genres         []models.Genre
	MediaTypes     []models.MediaType
	Tracks         []models.Track
	Employees      []models.Employee
	Customers      []models.Customer
	Invoices       []models.Invoice
	InvoiceLines   []models.InvoiceLine
	Playlists      []models.Playlist
	PlaylistTracks []models.PlaylistTrack
}

// Snapshot is a validated, read-only view of the store at one point in time.
type Snapshot struct {
	data Data

	artistsByID    map[int]int
	albumsByID     map[int]int
	genresByID     map[int]int
	mediaTypesByID map[int]int
	tracksByID     map[int]int
	employeesByID  map[int]int
	customersByID  map[int]int
	invoicesByID   map[int]int
}

// New indexes the given relations and validates referential integrity.
// Returns [shared.ErrInvalidSnapshot] (wrapped) if any reference dangles or
// the employee hierarchy contains a cycle.
func New(data Data) (*Snapshot, error) {
	s := &Snapshot{data: data}
	s.buildIndexes()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Snapshot) buildIndexes() {
	s.artistsByID = make(map[int]int, len(s.data.Artists))
	for i, a := range s.data.Artists {
		s.artistsByID[a.ID] = i
	}
	s.albumsByID = make(map[int]int, len(s.data.Albums))
	for i, a := range s.data.Albums {
		s.albumsByID[a.ID] = i
	}
	s.genresByID = make(map[int]int, len(s.data.Genres))
	for i, g := range s.data.Genres {
		s.genresByID[g.ID] = i
	}
	s.mediaTypesByID = make(map[int]int, len(s.data.MediaTypes))
	for i, m := range s.data.MediaTypes {
		s.mediaTypesByID[m.ID] = i
	}
	s.tracksByID = make(map[int]int, len(s.data.Tracks))
	for i, t := range s.data.Tracks {
		s.tracksByID[t.ID] = i
	}
	s.employeesByID = make(map[int]int, len(s.data.Employees))
	for i, e := range s.data.Employees {
		s.employeesByID[e.ID] = i
	}
	s.customersByID = make(map[int]int, len(s.data.Customers))
	for i, c := range s.data.Customers {
		s.customersByID[c.ID] = i
	}
	s.invoicesByID = make(map[int]int, len(s.data.Invoices))
	for i, inv := range s.data.Invoices {
		s.invoicesByID[inv.ID] = i
	}
}

// Artists returns all artists in load order.
func (s *Snapshot) Artists() []models.Artist { return s.data.Artists }

// Albums returns all albums in load order.
func (s *Snapshot) Albums() []models.Album { return s.data.Albums }

// Genres returns all genres in load order.
func (s *Snapshot) Genres() []models.Genre { return s.data.Genres }

// MediaTypes returns all media types in load order.
func (s *Snapshot) MediaTypes() []models.MediaType { return s.data.MediaTypes }

// Tracks returns all tracks in load order.
func (s *Snapshot) Tracks() []models.Track { return s.data.Tracks }

// Employees returns all employees in load order.
func (s *Snapshot) Employees() []models.Employee { return s.data.Employees }

// Customers returns all customers in load order.
func (s *Snapshot) Customers() []models.Customer { return s.data.Customers }

// Invoices returns all invoices in load order.
func (s *Snapshot) Invoices() []models.Invoice { return s.data.Invoices }

// InvoiceLines returns all invoice lines in load order.
func (s *Snapshot) InvoiceLines() []models.InvoiceLine { return s.data.InvoiceLines }

// Playlists returns all playlists in load order.
func (s *Snapshot) Playlists() []models.Playlist { return s.data.Playlists }

// PlaylistTracks returns all playlist↔track junction rows in load order.
func (s *Snapshot) PlaylistTracks() []models.PlaylistTrack { return s.data.PlaylistTracks }

// ArtistByID looks up an artist by primary key.
func (s *Snapshot) ArtistByID(id int) (models.Artist, bool) {
	i, ok := s.artistsByID[id]
	if !ok {
		return models.Artist{}, false
	}
	return s.data.Artists[i], true
}

// AlbumByID looks up an album by primary key.
func (s *Snapshot) AlbumByID(id int) (models.Album, bool) {
	i, ok := s.albumsByID[id]
	if !ok {
		return models.Album{}, false
	}
	return s.data.Albums[i], true
}

// GenreByID looks up a genre by primary key.
func (s *Snapshot) GenreByID(id int) (models.Genre, bool) {
	i, ok := s.genresByID[id]
	if !ok {
		return models.Genre{}, false
	}
	return s.data.Genres[i], true
}

// TrackByID looks up a track by primary key.
func (s *Snapshot) TrackByID(id int) (models.Track, bool) {
	i, ok := s.tracksByID[id]
	if !ok {
		return models.Track{}, false
	}
	return s.data.Tracks[i], true
}

// EmployeeByID looks up an employee by primary key.
func (s *Snapshot) EmployeeByID(id int) (models.Employee, bool) {
	i, ok := s.employeesByID[id]
	if !ok {
		return models.Employee{}, false
	}
	return s.data.Employees[i], true
}

// CustomerByID looks up a customer by primary key.
func (s *Snapshot) CustomerByID(id int) (models.Customer, bool) {
	i, ok := s.customersByID[id]
	if !ok {
		return models.Customer{}, false
	}
	return s.data.Customers[i], true
}

// InvoiceByID looks up an invoice by primary key.
func (s *Snapshot) InvoiceByID(id int) (models.Invoice, bool) {
	i, ok := s.invoicesByID[id]
	if !ok {
		return models.Invoice{}, false
	}
	return s.data.Invoices[i], true
}

// TotalMismatch reports an invoice whose denormalized total disagrees with
// the sum of its lines.
type TotalMismatch struct {
	InvoiceID     int
	DeclaredCents int64
	ComputedCents int64
}

// CheckInvoiceTotals verifies that every invoice's total equals the sum of
// its lines' amounts. The invariant is checked, not enforced: mismatches are
// returned for the caller to report, ordered by invoice load order.
func (s *Snapshot) CheckInvoiceTotals() []TotalMismatch {
	computed := make(map[int]int64, len(s.data.Invoices))
	for _, line := range s.data.InvoiceLines {
		computed[line.InvoiceID] += line.AmountCents()
	}

	var mismatches []TotalMismatch
	for _, inv := range s.data.Invoices {
		if got := computed[inv.ID]; got != inv.TotalCents {
			mismatches = append(mismatches, TotalMismatch{
				InvoiceID:     inv.ID,
				DeclaredCents: inv.TotalCents,
				ComputedCents: got,
			})
		}
	}
	return mismatches
}

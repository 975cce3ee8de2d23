package models

// Artist is a recording artist. Albums reference artists by id.
type Artist struct {
	ID   int
	Name string
}

// Album belongs to exactly one artist.
type Album struct {
	ID       int
	Title    string
	ArtistID int
}

// Genre is a lookup value for tracks. Tracks may have no genre.
type Genre struct {
	ID   int
	Name string
}

// MediaType is a lookup value for tracks (e.g. "MPEG audio file").
type MediaType struct {
	ID   int
	Name string
}

// Track is a sellable song. AlbumID and GenreID are optional references;
// a nil pointer means the source row had no value.
type Track struct {
	ID             int
	Name           string
	AlbumID        *int
	GenreID        *int
	MediaTypeID    int
	DurationMS     int
	UnitPriceCents int64
}

// Customer is a store customer. SupportRepID optionally references an
// employee.
type Customer struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	City         string
	Country      string
	SupportRepID *int
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}

// Invoice is a completed purchase. TotalCents is denormalized and must equal
// the sum of the invoice's line amounts; the snapshot verifies this but does
// not enforce it.
type Invoice struct {
	ID             int
	CustomerID     int
	InvoiceDate    string
	BillingCity    string
	BillingCountry string
	TotalCents     int64
}

// InvoiceLine is a single purchased track on an invoice.
type InvoiceLine struct {
	ID             int
	InvoiceID      int
	TrackID        int
	UnitPriceCents int64
	Quantity       int
}

// AmountCents returns the line total (unit price × quantity).
func (l InvoiceLine) AmountCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Employee is a store employee. ReportsTo optionally references the
// employee's manager; the hierarchy must be acyclic.
type Employee struct {
	ID        int
	FirstName string
	LastName  string
	Title     string
	Level     Seniority
	ReportsTo *int
}

// Name returns the employee's display name.
func (e Employee) Name() string {
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// Playlist is a named collection of tracks. Unused by the analytical
// reports but part of the loaded schema.
type Playlist struct {
	ID   int
	Name string
}

// PlaylistTrack is the playlist↔track junction row.
type PlaylistTrack struct {
	PlaylistID int
	TrackID    int
}

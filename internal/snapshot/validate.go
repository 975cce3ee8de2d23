package snapshot

import (
	"fmt"

	"github.com/mhollis/trackledger/internal/shared"
)

// validate checks every foreign key in the snapshot. The loader assumes a
// typed, parseable input (that is the external loader's contract); what can
// still go wrong is a dangling reference or a cyclic employee hierarchy, and
// both fail fast here.
func (s *Snapshot) validate() error {
	for _, album := range s.data.Albums {
		if _, ok := s.artistsByID[album.ArtistID]; !ok {
			return fmt.Errorf("%w: album %d references missing artist %d", shared.ErrInvalidSnapshot, album.ID, album.ArtistID)
		}
	}

	for _, track := range s.data.Tracks {
		if track.AlbumID != nil {
			if _, ok := s.albumsByID[*track.AlbumID]; !ok {
				return fmt.Errorf("%w: track %d references missing album %d", shared.ErrInvalidSnapshot, track.ID, *track.AlbumID)
			}
		}
		if track.GenreID != nil {
			if _, ok := s.genresByID[*track.GenreID]; !ok {
				return fmt.Errorf("%w: track %d references missing genre %d", shared.ErrInvalidSnapshot, track.ID, *track.GenreID)
			}
		}
		if _, ok := s.mediaTypesByID[track.MediaTypeID]; !ok {
			return fmt.Errorf("%w: track %d references missing media type %d", shared.ErrInvalidSnapshot, track.ID, track.MediaTypeID)
		}
	}

	for _, employee := range s.data.Employees {
		if employee.ReportsTo != nil {
			if _, ok := s.employeesByID[*employee.ReportsTo]; !ok {
				return fmt.Errorf("%w: employee %d reports to missing employee %d", shared.ErrInvalidSnapshot, employee.ID, *employee.ReportsTo)
			}
		}
	}
	if err := s.checkHierarchy(); err != nil {
		return err
	}

	for _, customer := range s.data.Customers {
		if customer.SupportRepID != nil {
			if _, ok := s.employeesByID[*customer.SupportRepID]; !ok {
				return fmt.Errorf("%w: customer %d references missing employee %d", shared.ErrInvalidSnapshot, customer.ID, *customer.SupportRepID)
			}
		}
	}

	for _, invoice := range s.data.Invoices {
		if _, ok := s.customersByID[invoice.CustomerID]; !ok {
			return fmt.Errorf("%w: invoice %d references missing customer %d", shared.ErrInvalidSnapshot, invoice.ID, invoice.CustomerID)
		}
	}

	for _, line := range s.data.InvoiceLines {
		if _, ok := s.invoicesByID[line.InvoiceID]; !ok {
			return fmt.Errorf("%w: invoice line %d references missing invoice %d", shared.ErrInvalidSnapshot, line.ID, line.InvoiceID)
		}
		if _, ok := s.tracksByID[line.TrackID]; !ok {
			return fmt.Errorf("%w: invoice line %d references missing track %d", shared.ErrInvalidSnapshot, line.ID, line.TrackID)
		}
	}

	for _, pt := range s.data.PlaylistTracks {
		if _, ok := s.tracksByID[pt.TrackID]; !ok {
			return fmt.Errorf("%w: playlist %d references missing track %d", shared.ErrInvalidSnapshot, pt.PlaylistID, pt.TrackID)
		}
	}

	return nil
}

// checkHierarchy rejects cycles in the employee reports-to chain.
func (s *Snapshot) checkHierarchy() error {
	for _, employee := range s.data.Employees {
		seen := map[int]bool{employee.ID: true}
		current := employee
		for current.ReportsTo != nil {
			next, ok := s.EmployeeByID(*current.ReportsTo)
			if !ok {
				break // dangling reference, reported by validate
			}
			if seen[next.ID] {
				return fmt.Errorf("%w: employee hierarchy cycle involving employee %d", shared.ErrInvalidSnapshot, next.ID)
			}
			seen[next.ID] = true
			current = next
		}
	}
	return nil
}

// Package models defines the entities of the music store schema consumed by
// the reporting engine.
//
// All entities are plain value types loaded once from the database by the
// snapshot loader and never mutated afterwards:
//   - [Artist] → [Album] → [Track], with [Genre] and [MediaType] lookups
//   - [Customer] → [Invoice] → [InvoiceLine] for the sales side
//   - [Employee] with a self-referential reports-to hierarchy and an ordered
//     [Seniority] level
//   - [Playlist] / [PlaylistTrack], loaded for completeness but unused by the
//     analytical reports
//
// Optional foreign keys (a track's album or genre, an employee's manager, a
// customer's support rep) are pointer-typed and must be nil-checked; the
// reporting operations document whether rows with missing references are
// included or excluded.
//
// All monetary amounts are integer cents so that aggregate comparisons and
// the invoice-total consistency check are exact.
package models

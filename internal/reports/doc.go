// Package reports implements the analytical report catalog over a store
// snapshot.
//
// Every operation is a pure, deterministic function of the [snapshot.Snapshot]
// passed to [NewEngine]: same snapshot, same output, no side effects. Ordered
// results use explicit tie policies (documented per operation) rather than
// relying on map iteration or database collation. Operations return
// [shared.ErrMissingData] when a relation they require is empty; an empty
// aggregation result is an empty slice, never an error.
package reports

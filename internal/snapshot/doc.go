// Package snapshot loads the music store schema from SQLite into an
// immutable in-memory view consumed by the reporting engine.
//
// A [Snapshot] is constructed once by [Load] (or [New] from already-typed
// rows), validated for referential integrity, and never mutated afterwards.
// All reporting operations read from it concurrently without locking.
package snapshot

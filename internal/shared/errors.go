package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Snapshot errors
	ErrMissingData     = fmt.Errorf("required relation is empty")
	ErrInvalidSnapshot = fmt.Errorf("snapshot failed referential integrity check")

	// Report errors
	ErrUnknownReport = fmt.Errorf("unknown report")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

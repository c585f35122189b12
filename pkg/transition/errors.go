package transition

import "errors"

var (
	// ErrUnknownTier is returned when the target tier is not in the catalog.
	ErrUnknownTier = errors.New("unknown package tier")
)

package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a config type's initial parse
	// failed and a later call finds nothing cached.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

package catalog

import "errors"

var (
	ErrFailedToLoadPackages        = errors.New("failed to load package catalog")
	ErrFailedToParseYAML           = errors.New("failed to parse package catalog YAML")
	ErrInvalidPackageConfiguration = errors.New("invalid package catalog configuration")
)

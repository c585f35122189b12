package catalog

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Source defines how packages are loaded into a Catalog.
type Source interface {
	Load(ctx context.Context) (map[Tier]Package, error)
}

// Catalog is an immutable lookup table over the package tiers.
// Historical sessions snapshot their grants at creation time, so editing
// the catalog never changes what an existing session was granted.
type Catalog struct {
	packages map[Tier]Package
}

// New loads packages from the given source and validates them.
func New(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("catalog: Source is required")
	}

	packages, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPackages, err)
	}

	if err := validatePackages(packages); err != nil {
		return nil, err
	}

	return &Catalog{packages: packages}, nil
}

// Default returns a catalog backed by the built-in package table.
func Default() *Catalog {
	return &Catalog{packages: maps.Clone(defaultPackages)}
}

// Package returns the full package definition for a tier.
// Unknown tiers resolve to a zero-value package rather than an error;
// the tier set is closed and callers validate tiers at their boundary.
func (c *Catalog) Package(tier Tier) Package {
	return c.packages[tier]
}

// Limits returns the resource limits for a tier.
func (c *Catalog) Limits(tier Tier) Limits {
	return c.packages[tier].Limits
}

// Features returns the feature flags enabled for a tier.
func (c *Catalog) Features(tier Tier) []Feature {
	return slices.Clone(c.packages[tier].Features)
}

// Price returns the package price for a tier in integer currency units.
func (c *Catalog) Price(tier Tier) int64 {
	return c.packages[tier].Price
}

// HasFeature reports whether a tier enables a feature flag.
func (c *Catalog) HasFeature(tier Tier, feature Feature) bool {
	return slices.Contains(c.packages[tier].Features, feature)
}

// IsUnlimited reports whether a tier places no cap on a resource.
func (c *Catalog) IsUnlimited(tier Tier, res Resource) bool {
	return c.packages[tier].Limits.IsUnlimited(res)
}

// validatePackages ensures the catalog is internally consistent.
// Catches configuration mistakes at load time instead of at quote time.
func validatePackages(packages map[Tier]Package) error {
	if len(packages) == 0 {
		return errors.Join(ErrInvalidPackageConfiguration, errors.New("no packages defined"))
	}

	for tier, pkg := range packages {
		if pkg.Tier != tier {
			return errors.Join(ErrInvalidPackageConfiguration,
				fmt.Errorf("tier mismatch: map key %s != package tier %s", tier, pkg.Tier))
		}
		if !tier.Valid() {
			return errors.Join(ErrInvalidPackageConfiguration,
				fmt.Errorf("unknown tier %q", tier))
		}
		if pkg.Price < 0 {
			return errors.Join(ErrInvalidPackageConfiguration,
				fmt.Errorf("tier %s has negative price %d", tier, pkg.Price))
		}
		for _, res := range Resources {
			if v := pkg.Limits.Of(res); v < Unlimited {
				return errors.Join(ErrInvalidPackageConfiguration,
					fmt.Errorf("tier %s has invalid %s limit %d", tier, res, v))
			}
		}
	}
	return nil
}

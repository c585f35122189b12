package catalog

import "slices"

// LimitChange represents a change in one resource limit between two tiers.
type LimitChange struct {
	Resource Resource `json:"resource"`
	From     int64    `json:"from"`
	To       int64    `json:"to"`
}

// Comparison contains the differences between two tiers. It feeds the
// upgrade/downgrade display on the package selection screens and plays no
// part in pricing.
type Comparison struct {
	NewFeatures     []Feature     `json:"new_features"`
	LostFeatures    []Feature     `json:"lost_features"`
	IncreasedLimits []LimitChange `json:"increased_limits"`
	DecreasedLimits []LimitChange `json:"decreased_limits"`
}

// IsUpgrade reports whether the comparison contains any gained capacity.
func (c *Comparison) IsUpgrade() bool {
	return len(c.IncreasedLimits) > 0 || len(c.NewFeatures) > 0
}

// IsDowngrade reports whether the comparison contains any lost capacity.
func (c *Comparison) IsDowngrade() bool {
	return len(c.DecreasedLimits) > 0 || len(c.LostFeatures) > 0
}

// Compare returns the differences between two tiers of this catalog.
// A limit strictly increasing, or going from bounded to unlimited, is an
// upgrade; strictly decreasing, or unlimited to bounded, is a downgrade.
func (c *Catalog) Compare(current, target Tier) *Comparison {
	currentPkg := c.Package(current)
	targetPkg := c.Package(target)

	comparison := &Comparison{
		NewFeatures:     make([]Feature, 0),
		LostFeatures:    make([]Feature, 0),
		IncreasedLimits: make([]LimitChange, 0),
		DecreasedLimits: make([]LimitChange, 0),
	}

	for _, feature := range targetPkg.Features {
		if !slices.Contains(currentPkg.Features, feature) {
			comparison.NewFeatures = append(comparison.NewFeatures, feature)
		}
	}
	for _, feature := range currentPkg.Features {
		if !slices.Contains(targetPkg.Features, feature) {
			comparison.LostFeatures = append(comparison.LostFeatures, feature)
		}
	}

	for _, res := range Resources {
		from := currentPkg.Limits.Of(res)
		to := targetPkg.Limits.Of(res)
		if from == to {
			continue
		}

		change := LimitChange{Resource: res, From: from, To: to}

		// Unlimited never compares numerically: leaving it is always a
		// downgrade, reaching it is always an upgrade.
		switch {
		case from == Unlimited:
			comparison.DecreasedLimits = append(comparison.DecreasedLimits, change)
		case to == Unlimited:
			comparison.IncreasedLimits = append(comparison.IncreasedLimits, change)
		case to > from:
			comparison.IncreasedLimits = append(comparison.IncreasedLimits, change)
		default:
			comparison.DecreasedLimits = append(comparison.DecreasedLimits, change)
		}
	}

	return comparison
}

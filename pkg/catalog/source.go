package catalog

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// defaultPackages is the built-in catalog. Prices are integer currency
// units per 30-day billing cycle.
var defaultPackages = map[Tier]Package{
	TierStarter: {
		Tier:        TierStarter,
		Name:        "Starter",
		Description: "For small agencies getting started with forms and ARCHA",
		Price:       35000,
		Limits: Limits{
			MaxForms:           10,
			MaxDashboards:      5,
			MaxUsers:           3,
			MonthlyTokens:      60000,
			AdditionalUserCost: 7000,
		},
		Features: []Feature{
			FeaturePDFExport,
			FeatureCSVExport,
			FeatureArchaBasic,
			FeatureEmailSupport,
			FeatureFormTemplates,
			FeatureNotifications,
		},
	},
	TierStandard: {
		Tier:        TierStandard,
		Name:        "Standard",
		Description: "Unlimited forms and advanced dashboards for growing teams",
		Price:       85000,
		Limits: Limits{
			MaxForms:           Unlimited,
			MaxDashboards:      15,
			MaxUsers:           7,
			MonthlyTokens:      150000,
			AdditionalUserCost: 7000,
		},
		Features: []Feature{
			FeaturePDFExport,
			FeatureCSVExport,
			FeatureExcelExport,
			FeatureArchaAdvanced,
			FeatureEmailSupport,
			FeaturePrioritySupport,
			FeatureFormTemplates,
			FeatureAdvancedDashboards,
			FeatureDataImport,
			FeatureNotifications,
			FeatureTeamRoles,
		},
	},
	TierPremium: {
		Tier:        TierPremium,
		Name:        "Premium",
		Description: "Full dashboard capacity, branding and priority ARCHA access",
		Price:       150000,
		Limits: Limits{
			MaxForms:           Unlimited,
			MaxDashboards:      Unlimited,
			MaxUsers:           20,
			MonthlyTokens:      400000,
			AdditionalUserCost: 5000,
		},
		Features: []Feature{
			FeaturePDFExport,
			FeatureCSVExport,
			FeatureExcelExport,
			FeatureWordExport,
			FeatureArchaPriority,
			FeatureCustomBranding,
			FeatureEmailSupport,
			FeaturePrioritySupport,
			FeaturePhoneSupport,
			FeatureFormTemplates,
			FeatureAdvancedDashboards,
			FeatureDataImport,
			FeatureAPIAccess,
			FeatureAuditLog,
			FeatureNotifications,
			FeatureTeamRoles,
		},
	},
	TierCustom: {
		Tier:        TierCustom,
		Name:        "Custom",
		Description: "Negotiated capacity with white-label branding and dedicated support",
		Price:       280000,
		Limits: Limits{
			MaxForms:           Unlimited,
			MaxDashboards:      Unlimited,
			MaxUsers:           Unlimited,
			MonthlyTokens:      1000000,
			AdditionalUserCost: 0,
		},
		Features: []Feature{
			FeaturePDFExport,
			FeatureCSVExport,
			FeatureExcelExport,
			FeatureWordExport,
			FeatureArchaPriority,
			FeatureCustomBranding,
			FeatureWhiteLabel,
			FeatureEmailSupport,
			FeaturePrioritySupport,
			FeaturePhoneSupport,
			FeatureDedicatedSupport,
			FeatureFormTemplates,
			FeatureAdvancedDashboards,
			FeatureDataImport,
			FeatureAPIAccess,
			FeatureAuditLog,
			FeatureNotifications,
			FeatureTeamRoles,
		},
	},
}

type inMemSource struct {
	mu       sync.RWMutex
	packages map[Tier]Package
}

// NewInMemSource returns an in-memory Source holding a deep copy of the
// given packages. Panics if no packages are provided so a misconfigured
// catalog fails at startup instead of at quote time.
func NewInMemSource(packages ...Package) Source {
	if len(packages) == 0 {
		panic("catalog: at least one package is required")
	}

	packagesCopy := make(map[Tier]Package, len(packages))
	for _, pkg := range packages {
		pkg.Features = slices.Clone(pkg.Features)
		packagesCopy[pkg.Tier] = pkg
	}

	return &inMemSource{packages: packagesCopy}
}

// Load returns a copy of the packages so callers cannot mutate source state.
func (s *inMemSource) Load(ctx context.Context) (map[Tier]Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	packagesCopy := make(map[Tier]Package, len(s.packages))
	for tier, pkg := range s.packages {
		pkg.Features = slices.Clone(pkg.Features)
		packagesCopy[tier] = pkg
	}
	return packagesCopy, nil
}

// DefaultSource returns a Source backed by the built-in package table.
func DefaultSource() Source {
	return &inMemSource{packages: maps.Clone(defaultPackages)}
}

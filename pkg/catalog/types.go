package catalog

// Tier identifies one of the package levels offered to agencies.
type Tier string

const (
	TierStarter  Tier = "starter"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierCustom   Tier = "custom"
)

// Tiers lists all known tiers in ascending price order.
var Tiers = []Tier{TierStarter, TierStandard, TierPremium, TierCustom}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierStarter, TierStandard, TierPremium, TierCustom:
		return true
	}
	return false
}

// Resource represents a countable resource granted by a package.
type Resource string

const (
	ResourceForms      Resource = "forms"
	ResourceDashboards Resource = "dashboards"
	ResourceUsers      Resource = "users"
	ResourceTokens     Resource = "tokens"
)

// Resources lists every resource a package grants.
var Resources = []Resource{ResourceForms, ResourceDashboards, ResourceUsers, ResourceTokens}

const (
	// Unlimited indicates no limit for a resource (-1 is kept for storage compatibility).
	Unlimited int64 = -1
)

// Limits holds the per-tier resource caps. A value of Unlimited means
// the tier places no cap on that resource.
type Limits struct {
	MaxForms           int64 `json:"max_forms" yaml:"max_forms"`
	MaxDashboards      int64 `json:"max_dashboards" yaml:"max_dashboards"`
	MaxUsers           int64 `json:"max_users" yaml:"max_users"`
	MonthlyTokens      int64 `json:"monthly_tokens" yaml:"monthly_tokens"`
	AdditionalUserCost int64 `json:"additional_user_cost" yaml:"additional_user_cost"`
}

// Of returns the limit value for a single resource.
func (l Limits) Of(res Resource) int64 {
	switch res {
	case ResourceForms:
		return l.MaxForms
	case ResourceDashboards:
		return l.MaxDashboards
	case ResourceUsers:
		return l.MaxUsers
	case ResourceTokens:
		return l.MonthlyTokens
	}
	return 0
}

// IsUnlimited reports whether the tier places no cap on the resource.
func (l Limits) IsUnlimited(res Resource) bool {
	return l.Of(res) == Unlimited
}

// Feature represents a package-specific capability flag.
type Feature string

const (
	FeaturePDFExport          Feature = "pdf_export"
	FeatureExcelExport        Feature = "excel_export"
	FeatureCSVExport          Feature = "csv_export"
	FeatureWordExport         Feature = "word_export"
	FeatureArchaBasic         Feature = "archa_basic"
	FeatureArchaAdvanced      Feature = "archa_advanced"
	FeatureArchaPriority      Feature = "archa_priority"
	FeatureCustomBranding     Feature = "custom_branding"
	FeatureWhiteLabel         Feature = "white_label"
	FeatureEmailSupport       Feature = "email_support"
	FeaturePrioritySupport    Feature = "priority_support"
	FeaturePhoneSupport       Feature = "phone_support"
	FeatureDedicatedSupport   Feature = "dedicated_support"
	FeatureFormTemplates      Feature = "form_templates"
	FeatureAdvancedDashboards Feature = "advanced_dashboards"
	FeatureDataImport         Feature = "data_import"
	FeatureAPIAccess          Feature = "api_access"
	FeatureAuditLog           Feature = "audit_log"
	FeatureNotifications      Feature = "notifications"
	FeatureTeamRoles          Feature = "team_roles"
)

// Package describes one tier of the catalog: display data, price,
// resource limits and enabled feature flags.
type Package struct {
	Tier        Tier      `json:"tier" yaml:"tier"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Price       int64     `json:"price" yaml:"price"` // integer currency units per 30-day cycle
	Limits      Limits    `json:"limits" yaml:"limits"`
	Features    []Feature `json:"features" yaml:"features"`
}

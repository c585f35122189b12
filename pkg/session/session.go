package session

import (
	"math"
	"time"

	"github.com/uboraplatform/ubora/pkg/catalog"
)

// Type classifies how a session came to exist.
type Type string

const (
	TypeSubscription Type = "subscription"
	TypePayAsYouGo   Type = "pay_as_you_go"
	TypeUpgrade      Type = "upgrade"
	TypeDowngrade    Type = "downgrade"
	TypeRenewal      Type = "renewal"
)

// Valid reports whether t is one of the known session types.
func (t Type) Valid() bool {
	switch t {
	case TypeSubscription, TypePayAsYouGo, TypeUpgrade, TypeDowngrade, TypeRenewal:
		return true
	}
	return false
}

// PackageResources holds the grants snapshotted from the catalog when the
// session was created. They are never re-derived, so catalog edits do not
// retroactively change what a historical session was granted.
type PackageResources struct {
	TokensIncluded     int64 `json:"tokens_included" bson:"tokens_included"`
	FormsIncluded      int64 `json:"forms_included" bson:"forms_included"`
	DashboardsIncluded int64 `json:"dashboards_included" bson:"dashboards_included"`
	UsersIncluded      int64 `json:"users_included" bson:"users_included"`
}

// Purchase is one pay-as-you-go buy event recorded against a session.
type Purchase struct {
	ID           string           `json:"id" bson:"id"`
	ItemType     catalog.Resource `json:"item_type" bson:"item_type"`
	Quantity     int64            `json:"quantity" bson:"quantity"`
	AmountPaid   int64            `json:"amount_paid" bson:"amount_paid"`
	PurchaseDate time.Time        `json:"purchase_date" bson:"purchase_date"`
}

// PayAsYouGoResources is the extra capacity bought during a session's
// lifetime. Counters are additive only; Purchases is an append-only log.
type PayAsYouGoResources struct {
	Tokens     int64      `json:"tokens" bson:"tokens"`
	Forms      int64      `json:"forms" bson:"forms"`
	Dashboards int64      `json:"dashboards" bson:"dashboards"`
	Users      int64      `json:"users" bson:"users"`
	Purchases  []Purchase `json:"purchases" bson:"purchases"`
}

// Of returns the purchased extra capacity for a single resource.
func (p PayAsYouGoResources) Of(res catalog.Resource) int64 {
	switch res {
	case catalog.ResourceTokens:
		return p.Tokens
	case catalog.ResourceForms:
		return p.Forms
	case catalog.ResourceDashboards:
		return p.Dashboards
	case catalog.ResourceUsers:
		return p.Users
	}
	return 0
}

// Usage holds the monotonically increasing consumption counters of a
// session, with a last-touched timestamp per resource.
type Usage struct {
	TokensUsed        int64 `json:"tokens_used" bson:"tokens_used"`
	FormsCreated      int64 `json:"forms_created" bson:"forms_created"`
	DashboardsCreated int64 `json:"dashboards_created" bson:"dashboards_created"`
	UsersAdded        int64 `json:"users_added" bson:"users_added"`

	TokensUsedAt        *time.Time `json:"tokens_used_at,omitempty" bson:"tokens_used_at,omitempty"`
	FormsCreatedAt      *time.Time `json:"forms_created_at,omitempty" bson:"forms_created_at,omitempty"`
	DashboardsCreatedAt *time.Time `json:"dashboards_created_at,omitempty" bson:"dashboards_created_at,omitempty"`
	UsersAddedAt        *time.Time `json:"users_added_at,omitempty" bson:"users_added_at,omitempty"`
}

// Of returns the consumed amount for a single resource.
func (u Usage) Of(res catalog.Resource) int64 {
	switch res {
	case catalog.ResourceTokens:
		return u.TokensUsed
	case catalog.ResourceForms:
		return u.FormsCreated
	case catalog.ResourceDashboards:
		return u.DashboardsCreated
	case catalog.ResourceUsers:
		return u.UsersAdded
	}
	return 0
}

// Session is one time-bounded record of a package activation: its grants,
// pay-as-you-go add-ons and usage counters. Sessions are appended to the
// owning user record and never deleted; they form a permanent history.
// At most one session per user carries IsActive = true.
type Session struct {
	ID            string       `json:"id" bson:"id"`
	PackageType   catalog.Tier `json:"package_type" bson:"package_type"`
	SessionType   Type         `json:"session_type" bson:"session_type"`
	StartDate     time.Time    `json:"start_date" bson:"start_date"`
	EndDate       time.Time    `json:"end_date" bson:"end_date"`
	DurationDays  int          `json:"duration_days" bson:"duration_days"`
	AmountPaid    int64        `json:"amount_paid" bson:"amount_paid"`
	PaymentMethod string       `json:"payment_method" bson:"payment_method"`
	IsActive      bool         `json:"is_active" bson:"is_active"`

	PackageResources PackageResources    `json:"package_resources" bson:"package_resources"`
	PayAsYouGo       PayAsYouGoResources `json:"pay_as_you_go_resources" bson:"pay_as_you_go_resources"`
	Usage            Usage               `json:"usage" bson:"usage"`

	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Granted returns the package grant snapshot for a single resource.
func (s *Session) Granted(res catalog.Resource) int64 {
	switch res {
	case catalog.ResourceTokens:
		return s.PackageResources.TokensIncluded
	case catalog.ResourceForms:
		return s.PackageResources.FormsIncluded
	case catalog.ResourceDashboards:
		return s.PackageResources.DashboardsIncluded
	case catalog.ResourceUsers:
		return s.PackageResources.UsersIncluded
	}
	return 0
}

// DaysRemainingAt returns the whole days left in the billing cycle at a
// given time, rounding partial days up and flooring at zero.
// Taking the reference time explicitly keeps the arithmetic testable.
func (s *Session) DaysRemainingAt(now time.Time) int {
	remaining := s.EndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// IsExpiredAt reports whether the session's cycle has ended at the given time.
func (s *Session) IsExpiredAt(now time.Time) bool {
	return s.DaysRemainingAt(now) == 0
}

// UnusedPackageTokens returns the unconsumed part of the package's own token
// allotment, floored at zero. These tokens are forfeited on a package
// transition; callers surface the value as a warning before committing.
func (s *Session) UnusedPackageTokens() int64 {
	return max(0, s.PackageResources.TokensIncluded-s.Usage.TokensUsed)
}

// UnusedTokens returns all unconsumed tokens of this session, package grant
// and purchased extras combined, floored at zero. For pay_as_you_go sessions
// this is the amount eligible for carry-over on a transition.
func (s *Session) UnusedTokens() int64 {
	return max(0, s.PackageResources.TokensIncluded+s.PayAsYouGo.Tokens-s.Usage.TokensUsed)
}

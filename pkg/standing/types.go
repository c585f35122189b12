package standing

import (
	"time"

	"github.com/uboraplatform/ubora/pkg/catalog"
	"github.com/uboraplatform/ubora/pkg/session"
)

// Status is the subscription state shown to the UI.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// ResourceTotals is the flattened accounting for one resource: the total
// capacity (package grant plus pay-as-you-go), the consumed amount and
// what remains. A Total or Remaining of catalog.Unlimited means unbounded;
// unbounded absorbs pay-as-you-go additions and never runs out.
type ResourceTotals struct {
	Total     int64 `json:"total"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

// Limits is the flattened limit view used by creation gates.
type Limits struct {
	MaxForms      int64 `json:"max_forms"`
	MaxDashboards int64 `json:"max_dashboards"`
	MaxUsers      int64 `json:"max_users"`
	MaxTokens     int64 `json:"max_tokens"`
}

// PackageInfo is the UI-ready view of a director's current package
// standing, derived entirely from the current session's snapshotted fields.
type PackageInfo struct {
	Tier          catalog.Tier      `json:"tier"`
	SessionType   session.Type      `json:"session_type"`
	Status        Status            `json:"status"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	DaysRemaining int               `json:"days_remaining"`
	Tokens        ResourceTotals    `json:"tokens"`
	Forms         ResourceTotals    `json:"forms"`
	Dashboards    ResourceTotals    `json:"dashboards"`
	Users         ResourceTotals    `json:"users"`
	Features      []catalog.Feature `json:"features"`
}

// Standing distinguishes "zero usage" from "the concept does not apply".
// Non-director roles and users without a current session are NotApplicable;
// their Info carries the canonical empty projection (no tier, all totals
// zero, status expired) so UI callers can render it directly.
type Standing struct {
	Applicable bool        `json:"applicable"`
	Info       PackageInfo `json:"info"`
}

// NotApplicable is the canonical empty standing.
func NotApplicable() Standing {
	return Standing{Applicable: false, Info: PackageInfo{
		Status:   StatusExpired,
		Features: []catalog.Feature{},
	}}
}

// Action names an operation gated by package limits.
type Action string

const (
	ActionCreateForm      Action = "create_form"
	ActionCreateDashboard Action = "create_dashboard"
	ActionAddUser         Action = "add_user"
	ActionUseTokens       Action = "use_tokens"
)

// Resource maps the action to the resource whose limit gates it.
func (a Action) Resource() (catalog.Resource, bool) {
	switch a {
	case ActionCreateForm:
		return catalog.ResourceForms, true
	case ActionCreateDashboard:
		return catalog.ResourceDashboards, true
	case ActionAddUser:
		return catalog.ResourceUsers, true
	case ActionUseTokens:
		return catalog.ResourceTokens, true
	}
	return "", false
}

package transition

import (
	"github.com/uboraplatform/ubora/pkg/catalog"
	"github.com/uboraplatform/ubora/pkg/session"
)

// UserNeeds states the capacity a director expects to need after the
// transition. Nil fields mean "no stated need". Tokens are listed for
// completeness but never priced here; token handling follows the
// carry-over rule instead.
type UserNeeds struct {
	Forms      *int64 `json:"forms,omitempty"`
	Dashboards *int64 `json:"dashboards,omitempty"`
	Users      *int64 `json:"users,omitempty"`
	Tokens     *int64 `json:"tokens,omitempty"`
}

// Need wraps a capacity value for use in UserNeeds fields.
func Need(v int64) *int64 { return &v }

// Of returns the stated need for a resource, or nil.
func (n UserNeeds) Of(res catalog.Resource) *int64 {
	switch res {
	case catalog.ResourceForms:
		return n.Forms
	case catalog.ResourceDashboards:
		return n.Dashboards
	case catalog.ResourceUsers:
		return n.Users
	case catalog.ResourceTokens:
		return n.Tokens
	}
	return nil
}

// Options tune a transition quote.
type Options struct {
	Needs UserNeeds `json:"needs"`

	// PreserveUnusedPayAsYouGo controls the token carry-over. Unused
	// tokens in active pay-as-you-go sessions are preserved by default;
	// set to a false pointer to forfeit them as well.
	PreserveUnusedPayAsYouGo *bool `json:"preserve_unused_pay_as_you_go,omitempty"`
}

func (o Options) preservePayAsYouGo() bool {
	return o.PreserveUnusedPayAsYouGo == nil || *o.PreserveUnusedPayAsYouGo
}

// PayAsYouGoItem is one priced shortfall between a stated need and the
// target tier's limit, retained itemized for display.
type PayAsYouGoItem struct {
	Feature         catalog.Resource `json:"feature"`
	CurrentLimit    int64            `json:"current_limit"` // the target tier's limit
	RequestedAmount int64            `json:"requested_amount"`
	CostPerUnit     int64            `json:"cost_per_unit"`
	TotalCost       int64            `json:"total_cost"`
}

// Quote is a full transition price breakdown. It is pure data: computing a
// quote has no side effects, committing it is ExecuteTransition's job.
type Quote struct {
	CurrentTier catalog.Tier `json:"current_tier"`
	TargetTier  catalog.Tier `json:"target_tier"`
	SessionType session.Type `json:"session_type"` // upgrade or downgrade

	DaysRemaining                int   `json:"days_remaining"`
	CurrentPackageRemainingValue int64 `json:"current_package_remaining_value"`
	NewPackagePrice              int64 `json:"new_package_price"`

	PayAsYouGoItems     []PayAsYouGoItem `json:"pay_as_you_go_items"`
	PayAsYouGoTotalCost int64            `json:"pay_as_you_go_total_cost"`

	// FinalAmountToPay never goes negative: a large proration credit can
	// zero the charge but never produces a cash refund.
	FinalAmountToPay int64 `json:"final_amount_to_pay"`
	Savings          int64 `json:"savings"`

	// UnusedPackageTokens is forfeited and surfaced for a UI warning.
	// PreservedPayAsYouGoTokens is added to the new session's grant.
	UnusedPackageTokens       int64 `json:"unused_package_tokens"`
	PreservedPayAsYouGoTokens int64 `json:"preserved_pay_as_you_go_tokens"`
	NewSessionTokens          int64 `json:"new_session_tokens"`

	Comparison *catalog.Comparison `json:"comparison"`
}

// Preview pairs a quote with a human-readable summary for confirmation
// screens.
type Preview struct {
	Quote   *Quote `json:"quote"`
	Summary string `json:"summary"`
}

// Result is the outcome of a committed transition.
type Result struct {
	Quote   *Quote           `json:"quote"`
	Session *session.Session `json:"session"`
}

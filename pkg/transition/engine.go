package transition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/uboraplatform/ubora/pkg/catalog"
	"github.com/uboraplatform/ubora/pkg/session"
)

// nominalCycleDays is the proration denominator. The formula divides by a
// fixed 30 regardless of the calendar month's actual length.
const nominalCycleDays = 30

// Engine prices and commits package transitions. Quotes are pure; only
// ExecuteTransition writes.
type Engine struct {
	catalog  *catalog.Catalog
	rates    catalog.PayAsYouGoRates
	sessions *session.Service
	now      func() time.Time
	log      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRates overrides the pay-as-you-go price list.
func WithRates(rates catalog.PayAsYouGoRates) EngineOption {
	return func(e *Engine) { e.rates = rates }
}

// WithClock sets the time source used for proration.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the structured logger. Logging is discarded by default.
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates a transition Engine. Panics if catalog or session
// service are nil to fail fast during initialization.
func NewEngine(cat *catalog.Catalog, sessions *session.Service, opts ...EngineOption) *Engine {
	if cat == nil {
		panic("transition: catalog is required")
	}
	if sessions == nil {
		panic("transition: session service is required")
	}

	e := &Engine{
		catalog:  cat,
		rates:    catalog.DefaultPayAsYouGoRates,
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate quotes a transition to the target tier with no stated needs.
func (e *Engine) Calculate(user *session.UserRecord, target catalog.Tier) (*Quote, error) {
	return e.CalculateEnhanced(user, target, Options{})
}

// CalculateEnhanced quotes a transition, pricing any stated needs that
// exceed the target tier's limits as pay-as-you-go surcharges.
//
// The quote does not special-case target == current tier; rejecting a
// same-tier transition is the caller's concern.
func (e *Engine) CalculateEnhanced(user *session.UserRecord, target catalog.Tier, opts Options) (*Quote, error) {
	if !target.Valid() {
		return nil, ErrUnknownTier
	}

	current := currentSessionOf(user)
	if current == nil {
		return nil, session.ErrNoActiveSession
	}

	now := e.now()
	daysRemaining := current.DaysRemainingAt(now)

	// Linear daily-rate proration over the nominal cycle, rounded half-up
	// at the point the value is derived. Zero days remaining means zero
	// credit and the full new price is charged.
	remainingValue := roundHalfUpDiv(e.catalog.Price(current.PackageType)*int64(daysRemaining), nominalCycleDays)

	newPrice := e.catalog.Price(target)
	items, paygoTotal := e.priceNeeds(target, opts.Needs)

	final := max(0, newPrice-remainingValue+paygoTotal)
	savings := max(0, remainingValue-paygoTotal)

	preserved := int64(0)
	if opts.preservePayAsYouGo() {
		for _, paygo := range user.ActivePayAsYouGoSessions() {
			if paygo.ID == current.ID {
				continue
			}
			preserved += paygo.UnusedTokens()
		}
	}

	sessionType := session.TypeDowngrade
	if newPrice >= e.catalog.Price(current.PackageType) {
		sessionType = session.TypeUpgrade
	}

	return &Quote{
		CurrentTier:                  current.PackageType,
		TargetTier:                   target,
		SessionType:                  sessionType,
		DaysRemaining:                daysRemaining,
		CurrentPackageRemainingValue: remainingValue,
		NewPackagePrice:              newPrice,
		PayAsYouGoItems:              items,
		PayAsYouGoTotalCost:          paygoTotal,
		FinalAmountToPay:             final,
		Savings:                      savings,
		UnusedPackageTokens:          current.UnusedPackageTokens(),
		PreservedPayAsYouGoTokens:    preserved,
		NewSessionTokens:             e.catalog.Limits(target).MonthlyTokens + preserved,
		Comparison:                   e.catalog.Compare(current.PackageType, target),
	}, nil
}

// priceNeeds prices the shortfall between stated needs and the target
// tier's limits for forms, dashboards and users. Tokens are excluded from
// this pass; the carry-over rule handles them. Unlimited target limits
// absorb any stated need.
func (e *Engine) priceNeeds(target catalog.Tier, needs UserNeeds) ([]PayAsYouGoItem, int64) {
	limits := e.catalog.Limits(target)

	items := make([]PayAsYouGoItem, 0)
	var total int64
	for _, res := range []catalog.Resource{catalog.ResourceForms, catalog.ResourceDashboards, catalog.ResourceUsers} {
		need := needs.Of(res)
		if need == nil {
			continue
		}
		limit := limits.Of(res)
		if limit == catalog.Unlimited || *need <= limit {
			continue
		}

		shortfall := *need - limit
		costPerUnit := e.rates.UnitPrice(res)
		item := PayAsYouGoItem{
			Feature:         res,
			CurrentLimit:    limit,
			RequestedAmount: *need,
			CostPerUnit:     costPerUnit,
			TotalCost:       shortfall * costPerUnit,
		}
		items = append(items, item)
		total += item.TotalCost
	}
	return items, total
}

// GetTransitionPreview quotes a transition and renders a confirmation
// summary, with no stated needs.
func (e *Engine) GetTransitionPreview(user *session.UserRecord, target catalog.Tier) (*Preview, error) {
	return e.GetEnhancedTransitionPreview(user, target, Options{})
}

// GetEnhancedTransitionPreview quotes a transition with options and renders
// a confirmation summary.
func (e *Engine) GetEnhancedTransitionPreview(user *session.UserRecord, target catalog.Tier, opts Options) (*Preview, error) {
	quote, err := e.CalculateEnhanced(user, target, opts)
	if err != nil {
		return nil, err
	}
	return &Preview{Quote: quote, Summary: summarize(quote)}, nil
}

// ExecuteTransition quotes the transition and commits it: the resulting
// session is created with the original cycle's start and end dates (the
// billing anchor does not reset, only the grants do), a fresh token
// allotment plus any preserved pay-as-you-go tokens, and zeroed usage.
// Payment is simulated; FinalAmountToPay is recorded as paid.
//
// The commit is a second read-modify-write on the user record. If it fails
// after the quote, nothing was written; there is no multi-write sequence
// to leave half-done.
func (e *Engine) ExecuteTransition(ctx context.Context, userID string, target catalog.Tier, opts Options, paymentMethod string) (*Result, error) {
	user, err := e.sessions.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := currentSessionOf(user)
	if current == nil {
		return nil, session.ErrNoActiveSession
	}

	quote, err := e.CalculateEnhanced(user, target, opts)
	if err != nil {
		return nil, err
	}

	limits := e.catalog.Limits(target)
	grants := session.PackageResources{
		TokensIncluded:     quote.NewSessionTokens,
		FormsIncluded:      limits.MaxForms,
		DashboardsIncluded: limits.MaxDashboards,
		UsersIncluded:      limits.MaxUsers,
	}

	created, err := e.sessions.CreateSession(ctx, userID, session.Draft{
		PackageType:   target,
		SessionType:   quote.SessionType,
		StartDate:     current.StartDate,
		EndDate:       current.EndDate,
		DurationDays:  current.DurationDays,
		AmountPaid:    quote.FinalAmountToPay,
		PaymentMethod: paymentMethod,
		Notes:         transitionNote(quote),
		GrantOverride: &grants,
	})
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "package transition executed",
		slog.String("user_id", userID),
		slog.String("from", string(quote.CurrentTier)),
		slog.String("to", string(quote.TargetTier)),
		slog.Int64("amount_paid", quote.FinalAmountToPay),
		slog.Int64("preserved_tokens", quote.PreservedPayAsYouGoTokens),
	)
	return &Result{Quote: quote, Session: created}, nil
}

func currentSessionOf(user *session.UserRecord) *session.Session {
	if user == nil {
		return nil
	}
	return user.CurrentSession()
}

func summarize(q *Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transition from %s to %s (%s)\n", q.CurrentTier, q.TargetTier, q.SessionType)
	fmt.Fprintf(&b, "Days remaining in current cycle: %d\n", q.DaysRemaining)
	fmt.Fprintf(&b, "Credit for unused days: %d\n", q.CurrentPackageRemainingValue)
	fmt.Fprintf(&b, "New package price: %d\n", q.NewPackagePrice)
	for _, item := range q.PayAsYouGoItems {
		fmt.Fprintf(&b, "Extra %s: %d requested over limit %d, %d x %d = %d\n",
			item.Feature, item.RequestedAmount, item.CurrentLimit,
			(item.RequestedAmount - item.CurrentLimit), item.CostPerUnit, item.TotalCost)
	}
	if q.PayAsYouGoTotalCost > 0 {
		fmt.Fprintf(&b, "Pay-as-you-go surcharges: %d\n", q.PayAsYouGoTotalCost)
	}
	if q.UnusedPackageTokens > 0 {
		fmt.Fprintf(&b, "Unused package tokens forfeited: %d\n", q.UnusedPackageTokens)
	}
	if q.PreservedPayAsYouGoTokens > 0 {
		fmt.Fprintf(&b, "Pay-as-you-go tokens carried over: %d\n", q.PreservedPayAsYouGoTokens)
	}
	fmt.Fprintf(&b, "Amount payable: %d", q.FinalAmountToPay)
	return b.String()
}

func transitionNote(q *Quote) string {
	return fmt.Sprintf("transition %s -> %s: credit %d, surcharges %d, paid %d, tokens carried %d, tokens forfeited %d",
		q.CurrentTier, q.TargetTier, q.CurrentPackageRemainingValue, q.PayAsYouGoTotalCost,
		q.FinalAmountToPay, q.PreservedPayAsYouGoTokens, q.UnusedPackageTokens)
}

// roundHalfUpDiv divides num by den rounding half up.
// Both arguments must be non-negative; den must be positive.
func roundHalfUpDiv(num, den int64) int64 {
	return (num + den/2) / den
}

package standing

import (
	"slices"
	"time"

	"github.com/uboraplatform/ubora/pkg/catalog"
	"github.com/uboraplatform/ubora/pkg/session"
)

// Resolver derives UI-ready package standing from user records. It is a
// pure read-side projection: no storage access, no mutation. Callers load
// the user record once and pass it in.
type Resolver struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithClock sets the time source used for day arithmetic.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResolver creates a Resolver. Panics on a nil catalog.
func NewResolver(cat *catalog.Catalog, opts ...ResolverOption) *Resolver {
	if cat == nil {
		panic("standing: catalog is required")
	}
	r := &Resolver{
		catalog: cat,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PackageInfo computes the current package standing for a user. Never
// errors: non-directors and users without a current session resolve to the
// canonical NotApplicable standing.
func (r *Resolver) PackageInfo(user *session.UserRecord) Standing {
	current := r.currentSession(user)
	if current == nil {
		return NotApplicable()
	}

	now := r.now()
	daysRemaining := current.DaysRemainingAt(now)
	status := StatusExpired
	if current.IsActive && daysRemaining > 0 {
		status = StatusActive
	}

	return Standing{
		Applicable: true,
		Info: PackageInfo{
			Tier:          current.PackageType,
			SessionType:   current.SessionType,
			Status:        status,
			StartDate:     current.StartDate,
			EndDate:       current.EndDate,
			DaysRemaining: daysRemaining,
			Tokens:        resourceTotals(current, catalog.ResourceTokens),
			Forms:         resourceTotals(current, catalog.ResourceForms),
			Dashboards:    resourceTotals(current, catalog.ResourceDashboards),
			Users:         resourceTotals(current, catalog.ResourceUsers),
			Features:      r.catalog.Features(current.PackageType),
		},
	}
}

// Limits returns the flattened limit view: package grant plus pay-as-you-go
// per resource, with unlimited absorbing any addition. All-zero for
// non-directors and users without a current session.
func (r *Resolver) Limits(user *session.UserRecord) Limits {
	current := r.currentSession(user)
	if current == nil {
		return Limits{}
	}
	return Limits{
		MaxForms:      totalOf(current, catalog.ResourceForms),
		MaxDashboards: totalOf(current, catalog.ResourceDashboards),
		MaxUsers:      totalOf(current, catalog.ResourceUsers),
		MaxTokens:     totalOf(current, catalog.ResourceTokens),
	}
}

// HasFeature reports whether the user's current tier enables a feature.
// Fails closed: no current session means no features.
func (r *Resolver) HasFeature(user *session.UserRecord, feature catalog.Feature) bool {
	current := r.currentSession(user)
	if current == nil {
		return false
	}
	return r.catalog.HasFeature(current.PackageType, feature)
}

// CanPerformAction is the single gate consulted before creating forms,
// dashboards or users, or consuming tokens. currentCount is the caller's
// count of already-existing resources. Unlimited capacity always allows;
// no current session never does.
func (r *Resolver) CanPerformAction(user *session.UserRecord, action Action, currentCount int64) bool {
	current := r.currentSession(user)
	if current == nil {
		return false
	}

	res, ok := action.Resource()
	if !ok {
		return false
	}

	limit := totalOf(current, res)
	if limit == catalog.Unlimited {
		return true
	}
	return currentCount < limit
}

// TotalAvailableTokens returns the tokens a director can still spend: the
// current session's remaining balance plus unused tokens of any active
// pay-as-you-go sessions riding alongside it.
func (r *Resolver) TotalAvailableTokens(user *session.UserRecord) int64 {
	current := r.currentSession(user)
	if current == nil {
		return 0
	}

	total := remainingOf(current, catalog.ResourceTokens)
	for _, paygo := range user.ActivePayAsYouGoSessions() {
		if paygo.ID == current.ID {
			continue
		}
		total += paygo.UnusedTokens()
	}
	return total
}

// SubscriptionHistory returns the user's sessions newest first. Empty for
// non-directors.
func (r *Resolver) SubscriptionHistory(user *session.UserRecord) []session.Session {
	if user == nil || !user.IsDirector() {
		return nil
	}

	history := slices.Clone(user.Sessions)
	slices.SortStableFunc(history, func(a, b session.Session) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return history
}

// NeedsPackageSelection reports whether a director must pick a package:
// true when there is no current session or the current cycle has ended.
// Always false for other roles, which never select packages.
func (r *Resolver) NeedsPackageSelection(user *session.UserRecord) bool {
	if user == nil || !user.IsDirector() {
		return false
	}
	current := user.CurrentSession()
	return current == nil || current.IsExpiredAt(r.now())
}

// currentSession applies the role policy: only directors carry sessions.
func (r *Resolver) currentSession(user *session.UserRecord) *session.Session {
	if user == nil || !user.IsDirector() {
		return nil
	}
	return user.CurrentSession()
}

// totalOf combines the package snapshot with pay-as-you-go additions.
// An unlimited grant absorbs any addition and stays unlimited.
func totalOf(sess *session.Session, res catalog.Resource) int64 {
	granted := sess.Granted(res)
	if granted == catalog.Unlimited {
		return catalog.Unlimited
	}
	return granted + sess.PayAsYouGo.Of(res)
}

// remainingOf floors at zero; unlimited capacity never runs out.
func remainingOf(sess *session.Session, res catalog.Resource) int64 {
	total := totalOf(sess, res)
	if total == catalog.Unlimited {
		return catalog.Unlimited
	}
	return max(0, total-sess.Usage.Of(res))
}

func resourceTotals(sess *session.Session, res catalog.Resource) ResourceTotals {
	return ResourceTotals{
		Total:     totalOf(sess, res),
		Used:      sess.Usage.Of(res),
		Remaining: remainingOf(sess, res),
	}
}

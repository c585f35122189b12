// Package transition prices and executes moves between subscription
// packages. A transition credits the unused portion of the current package,
// charges the target package's full price, adds pay-as-you-go surcharges
// for any stated needs the target tier cannot cover, and carries unused
// pay-as-you-go token balances into the new session.
//
// Pricing rules:
//
//   - Proration is linear over a fixed 30-day cycle. The credit is
//     currentPrice * daysRemaining / 30, rounded half up, regardless of
//     the calendar month's length.
//   - The payable amount is floored at zero. Credit in excess of the new
//     price plus surcharges is reported as Savings, not refunded.
//   - Unused tokens from the current package grant are forfeited. Unused
//     tokens on separate active pay-as-you-go sessions are preserved and
//     added to the new session's grant (opt-out via Options).
//   - Stated needs for forms, dashboards and users above a bounded target
//     limit are priced per unit from the pay-as-you-go rate card. Needs
//     within the limit, or against an unlimited limit, cost nothing.
//
// Quoting is read-only. ExecuteTransition commits: it creates a new
// session via the session service, keeping the original cycle's start and
// end dates so the billing anchor does not reset mid-cycle.
//
// Usage:
//
//	engine := transition.NewEngine(cat, sessions)
//
//	preview, err := engine.GetEnhancedTransitionPreview(user, catalog.TierStandard, transition.Options{
//		Needs: transition.UserNeeds{Users: transition.Need(10)},
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(preview.Summary)
//
//	result, err := engine.ExecuteTransition(ctx, userID, catalog.TierStandard, transition.Options{}, "card")
package transition

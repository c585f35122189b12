// Package catalog defines the static package tiers of the Ubora platform:
// per-tier resource limits, feature flags and monthly prices, plus the flat
// pay-as-you-go price list for capacity bought outside a package.
//
// The catalog is a pure lookup table. Sessions snapshot their grants from it
// at creation time, so later catalog edits never alter historical sessions.
//
// # Quick Start
//
//	cat := catalog.Default()
//
//	limits := cat.Limits(catalog.TierStandard)
//	if limits.IsUnlimited(catalog.ResourceForms) {
//		// no form cap on this tier
//	}
//
//	price := cat.Price(catalog.TierPremium)
//	hasAPI := cat.HasFeature(catalog.TierPremium, catalog.FeatureAPIAccess)
//
// Custom catalogs can be loaded from any Source:
//
//	cat, err := catalog.New(ctx, catalog.NewYAMLSource("packages.yaml"))
//
// A limit value of -1 (Unlimited) means the tier places no cap on that
// resource. Unlimited absorbs any pay-as-you-go addition: unbounded plus N
// stays unbounded everywhere downstream.
package catalog

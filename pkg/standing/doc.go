// Package standing is the read side of the subscription core: it projects
// a user record into the flattened "current package standing" the UI
// renders, and answers the limit checks performed before any form,
// dashboard, user or token consumption.
//
// The projection is pure arithmetic over the current session's snapshotted
// grants: total = grant + pay-as-you-go, remaining = total - used floored
// at zero, with unlimited (-1) absorbing any addition. It never touches
// storage and never errors; roles that do not carry subscription state
// resolve to the tagged NotApplicable standing so callers can tell "zero
// usage" apart from "does not apply".
//
//	resolver := standing.NewResolver(catalog.Default())
//
//	s := resolver.PackageInfo(user)
//	if !s.Applicable {
//		// prompt package selection
//	}
//
//	if !resolver.CanPerformAction(user, standing.ActionCreateForm, formCount) {
//		// reject with an upgrade prompt
//	}
package standing

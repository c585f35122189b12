// Package session models a director's subscription history as a list of
// time-bounded sessions inside one user record, and provides the service
// that mutates it: session creation, pay-as-you-go purchases, usage
// counters and lookups.
//
// # Model
//
// A Session records one package activation: the resource grants snapshotted
// from the catalog at creation time, the pay-as-you-go capacity bought
// during its lifetime, and monotonically increasing usage counters.
// Sessions are never deleted. At most one session per user is the "current"
// one: CurrentSessionID points at it and its IsActive flag is set; when
// pointer and flag disagree, lookups fail closed.
//
// Pay-as-you-go-only purchases are the exception to the single-active rule:
// CreatePayAsYouGoSession appends a coexisting session whose active flag
// means its purchased balance is still live, not that it is the current
// session. Transition carry-over scans those sessions for unused tokens.
//
// # Persistence
//
// The UserStore contract is a whole-document read and replace: the service
// loads the full record, mutates it in memory and writes it back, sessions
// array included. There is deliberately no optimistic concurrency control;
// two concurrent writers on the same user can lose an update. The stores in
// the mongostore and redisstore subpackages implement the contract against
// real document databases, NewMemoryStore against process memory.
//
// # Usage
//
//	store := session.NewMemoryStore()
//	svc := session.NewService(store, catalog.Default())
//
//	sess, err := svc.CreateSession(ctx, userID, session.Draft{
//		PackageType:   catalog.TierStarter,
//		SessionType:   session.TypeSubscription,
//		AmountPaid:    35000,
//		PaymentMethod: "card",
//	})
//
//	err = svc.UpdateUsage(ctx, userID, catalog.ResourceTokens, 1200)
//
// Clock and id generation are injectable through options for deterministic
// tests:
//
//	svc := session.NewService(store, cat,
//		session.WithClock(func() time.Time { return fixed }),
//		session.WithIDGenerator(func() string { return nextID() }),
//	)
package session

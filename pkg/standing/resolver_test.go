package standing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uboraplatform/ubora/pkg/catalog"
	"github.com/uboraplatform/ubora/pkg/session"
	"github.com/uboraplatform/ubora/pkg/standing"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestResolver(t *testing.T) *standing.Resolver {
	t.Helper()
	return standing.NewResolver(catalog.Default(),
		standing.WithClock(func() time.Time { return testNow }))
}

// directorWith returns a director record whose current session carries the
// given grants and usage.
func directorWith(sess session.Session) *session.UserRecord {
	sess.ID = "s1"
	sess.IsActive = true
	return &session.UserRecord{
		ID:               "u1",
		Role:             session.RoleDirector,
		Sessions:         []session.Session{sess},
		CurrentSessionID: "s1",
	}
}

func starterSession() session.Session {
	return session.Session{
		PackageType: catalog.TierStarter,
		SessionType: session.TypeSubscription,
		StartDate:   testNow.AddDate(0, 0, -10),
		EndDate:     testNow.AddDate(0, 0, 20),
		PackageResources: session.PackageResources{
			TokensIncluded:     60000,
			FormsIncluded:      10,
			DashboardsIncluded: 5,
			UsersIncluded:      3,
		},
	}
}

func TestPackageInfo_Active(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	sess := starterSession()
	sess.Usage = session.Usage{TokensUsed: 15000, FormsCreated: 4}
	user := directorWith(sess)

	got := r.PackageInfo(user)
	require.True(t, got.Applicable)
	assert.Equal(t, catalog.TierStarter, got.Info.Tier)
	assert.Equal(t, standing.StatusActive, got.Info.Status)
	assert.Equal(t, 20, got.Info.DaysRemaining)

	assert.Equal(t, standing.ResourceTotals{Total: 60000, Used: 15000, Remaining: 45000}, got.Info.Tokens)
	assert.Equal(t, standing.ResourceTotals{Total: 10, Used: 4, Remaining: 6}, got.Info.Forms)
	assert.NotEmpty(t, got.Info.Features)
}

func TestPackageInfo_NotApplicable(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	t.Run("nil user", func(t *testing.T) {
		t.Parallel()
		got := r.PackageInfo(nil)
		assert.False(t, got.Applicable)
		assert.Equal(t, standing.StatusExpired, got.Info.Status)
		assert.Empty(t, got.Info.Tier)
	})

	t.Run("non-director with sessions", func(t *testing.T) {
		t.Parallel()
		user := directorWith(starterSession())
		user.Role = session.RoleManager
		assert.False(t, r.PackageInfo(user).Applicable)
	})

	t.Run("director without current session", func(t *testing.T) {
		t.Parallel()
		user := &session.UserRecord{ID: "u1", Role: session.RoleDirector}
		assert.False(t, r.PackageInfo(user).Applicable)
	})
}

func TestPackageInfo_ExpiredCycle(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	sess := starterSession()
	sess.EndDate = testNow.AddDate(0, 0, -1)
	user := directorWith(sess)

	got := r.PackageInfo(user)
	require.True(t, got.Applicable)
	assert.Equal(t, standing.StatusExpired, got.Info.Status)
	assert.Zero(t, got.Info.DaysRemaining)
}

func TestPackageInfo_UnlimitedAbsorbsPayAsYouGo(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	sess := session.Session{
		PackageType: catalog.TierStandard,
		SessionType: session.TypeSubscription,
		EndDate:     testNow.AddDate(0, 0, 20),
		PackageResources: session.PackageResources{
			TokensIncluded: 150000,
			FormsIncluded:  catalog.Unlimited,
			UsersIncluded:  7,
		},
		PayAsYouGo: session.PayAsYouGoResources{Forms: 5, Users: 3},
		Usage:      session.Usage{FormsCreated: 500},
	}
	user := directorWith(sess)

	got := r.PackageInfo(user)
	require.True(t, got.Applicable)

	// Unlimited plus purchases stays unlimited and never runs out.
	assert.Equal(t, catalog.Unlimited, got.Info.Forms.Total)
	assert.Equal(t, catalog.Unlimited, got.Info.Forms.Remaining)
	assert.Equal(t, int64(500), got.Info.Forms.Used)

	// Bounded limits add purchases.
	assert.Equal(t, int64(10), got.Info.Users.Total)
}

func TestPackageInfo_Idempotent(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	user := directorWith(starterSession())

	first := r.PackageInfo(user)
	second := r.PackageInfo(user)
	assert.Equal(t, first, second)
}

func TestLimits(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	t.Run("flattened view", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.PayAsYouGo = session.PayAsYouGoResources{Users: 2, Tokens: 10000}
		user := directorWith(sess)

		got := r.Limits(user)
		assert.Equal(t, standing.Limits{
			MaxForms:      10,
			MaxDashboards: 5,
			MaxUsers:      5,
			MaxTokens:     70000,
		}, got)
	})

	t.Run("zero for non-directors", func(t *testing.T) {
		t.Parallel()
		user := directorWith(starterSession())
		user.Role = session.RoleEmployee
		assert.Equal(t, standing.Limits{}, r.Limits(user))
	})
}

func TestHasFeature(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)
	user := directorWith(starterSession())

	assert.True(t, r.HasFeature(user, catalog.FeaturePDFExport))
	assert.False(t, r.HasFeature(user, catalog.FeatureTeamRoles))
	assert.False(t, r.HasFeature(nil, catalog.FeaturePDFExport))
}

func TestCanPerformAction(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	t.Run("bounded limit gates on count", func(t *testing.T) {
		t.Parallel()
		user := directorWith(starterSession())

		assert.True(t, r.CanPerformAction(user, standing.ActionAddUser, 2))
		assert.False(t, r.CanPerformAction(user, standing.ActionAddUser, 3))
		assert.False(t, r.CanPerformAction(user, standing.ActionAddUser, 10))
	})

	t.Run("purchases extend the gate", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.PayAsYouGo = session.PayAsYouGoResources{Users: 2}
		user := directorWith(sess)

		assert.True(t, r.CanPerformAction(user, standing.ActionAddUser, 4))
		assert.False(t, r.CanPerformAction(user, standing.ActionAddUser, 5))
	})

	t.Run("unlimited always allows", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.PackageResources.FormsIncluded = catalog.Unlimited
		user := directorWith(sess)

		assert.True(t, r.CanPerformAction(user, standing.ActionCreateForm, 1_000_000))
	})

	t.Run("fails closed", func(t *testing.T) {
		t.Parallel()
		assert.False(t, r.CanPerformAction(nil, standing.ActionCreateForm, 0))

		user := directorWith(starterSession())
		assert.False(t, r.CanPerformAction(user, standing.Action("unknown"), 0))

		noSession := &session.UserRecord{ID: "u1", Role: session.RoleDirector}
		assert.False(t, r.CanPerformAction(noSession, standing.ActionCreateForm, 0))
	})
}

func TestTotalAvailableTokens(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	t.Run("current session only", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.Usage = session.Usage{TokensUsed: 20000}
		user := directorWith(sess)

		assert.Equal(t, int64(40000), r.TotalAvailableTokens(user))
	})

	t.Run("includes active paygo sessions", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.Usage = session.Usage{TokensUsed: 20000}
		user := directorWith(sess)
		user.Sessions = append(user.Sessions,
			session.Session{
				ID:          "paygo1",
				SessionType: session.TypePayAsYouGo,
				IsActive:    true,
				PayAsYouGo:  session.PayAsYouGoResources{Tokens: 50000},
				Usage:       session.Usage{TokensUsed: 10000},
			},
			session.Session{
				ID:          "paygo2",
				SessionType: session.TypePayAsYouGo,
				IsActive:    false,
				PayAsYouGo:  session.PayAsYouGoResources{Tokens: 30000},
			},
		)

		// 40000 remaining on the current session plus 40000 unused in the
		// one active paygo session; the inactive one is excluded.
		assert.Equal(t, int64(80000), r.TotalAvailableTokens(user))
	})

	t.Run("zero without a current session", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, r.TotalAvailableTokens(nil))
	})
}

func TestSubscriptionHistory(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	user := &session.UserRecord{
		ID:   "u1",
		Role: session.RoleDirector,
		Sessions: []session.Session{
			{ID: "old", CreatedAt: testNow.AddDate(0, -2, 0)},
			{ID: "newest", CreatedAt: testNow},
			{ID: "middle", CreatedAt: testNow.AddDate(0, -1, 0)},
		},
	}

	history := r.SubscriptionHistory(user)
	require.Len(t, history, 3)
	assert.Equal(t, "newest", history[0].ID)
	assert.Equal(t, "middle", history[1].ID)
	assert.Equal(t, "old", history[2].ID)

	// The clone keeps callers from reordering the record itself.
	history[0].ID = "mutated"
	assert.Equal(t, "old", user.Sessions[0].ID)

	user.Role = session.RoleManager
	assert.Nil(t, r.SubscriptionHistory(user))
}

func TestNeedsPackageSelection(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t)

	t.Run("director without session", func(t *testing.T) {
		t.Parallel()
		user := &session.UserRecord{ID: "u1", Role: session.RoleDirector}
		assert.True(t, r.NeedsPackageSelection(user))
	})

	t.Run("director with active session", func(t *testing.T) {
		t.Parallel()
		user := directorWith(starterSession())
		assert.False(t, r.NeedsPackageSelection(user))
	})

	t.Run("director with expired cycle", func(t *testing.T) {
		t.Parallel()
		sess := starterSession()
		sess.EndDate = testNow.AddDate(0, 0, -1)
		user := directorWith(sess)
		assert.True(t, r.NeedsPackageSelection(user))
	})

	t.Run("never for other roles", func(t *testing.T) {
		t.Parallel()
		user := &session.UserRecord{ID: "u1", Role: session.RoleEmployee}
		assert.False(t, r.NeedsPackageSelection(user))
		assert.False(t, r.NeedsPackageSelection(nil))
	})
}

func TestNewResolver_PanicsOnNilCatalog(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { standing.NewResolver(nil) })
}

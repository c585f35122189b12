package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uboraplatform/ubora/pkg/session"
)

func TestUserRecord_CurrentSession(t *testing.T) {
	t.Parallel()

	t.Run("resolves pointer to active session", func(t *testing.T) {
		t.Parallel()

		user := session.UserRecord{
			Sessions: []session.Session{
				{ID: "a", IsActive: false},
				{ID: "b", IsActive: true},
			},
			CurrentSessionID: "b",
		}
		current := user.CurrentSession()
		require.NotNil(t, current)
		assert.Equal(t, "b", current.ID)
	})

	t.Run("empty pointer", func(t *testing.T) {
		t.Parallel()

		user := session.UserRecord{Sessions: []session.Session{{ID: "a", IsActive: true}}}
		assert.Nil(t, user.CurrentSession())
	})

	t.Run("pointer at inactive session fails closed", func(t *testing.T) {
		t.Parallel()

		user := session.UserRecord{
			Sessions:         []session.Session{{ID: "a", IsActive: false}},
			CurrentSessionID: "a",
		}
		assert.Nil(t, user.CurrentSession())
	})

	t.Run("dangling pointer", func(t *testing.T) {
		t.Parallel()

		user := session.UserRecord{
			Sessions:         []session.Session{{ID: "a", IsActive: true}},
			CurrentSessionID: "gone",
		}
		assert.Nil(t, user.CurrentSession())
	})

	t.Run("returned pointer aliases the record", func(t *testing.T) {
		t.Parallel()

		user := session.UserRecord{
			Sessions:         []session.Session{{ID: "a", IsActive: true}},
			CurrentSessionID: "a",
		}
		user.CurrentSession().Usage.TokensUsed = 42
		assert.Equal(t, int64(42), user.Sessions[0].Usage.TokensUsed)
	})
}

func TestUserRecord_ActivePayAsYouGoSessions(t *testing.T) {
	t.Parallel()

	user := session.UserRecord{
		Sessions: []session.Session{
			{ID: "sub", SessionType: session.TypeSubscription, IsActive: true},
			{ID: "paygo1", SessionType: session.TypePayAsYouGo, IsActive: true},
			{ID: "paygo2", SessionType: session.TypePayAsYouGo, IsActive: false},
			{ID: "paygo3", SessionType: session.TypePayAsYouGo, IsActive: true},
		},
	}

	active := user.ActivePayAsYouGoSessions()
	require.Len(t, active, 2)
	assert.Equal(t, "paygo1", active[0].ID)
	assert.Equal(t, "paygo3", active[1].ID)
}

func TestUserRecord_IsDirector(t *testing.T) {
	t.Parallel()

	assert.True(t, (&session.UserRecord{Role: session.RoleDirector}).IsDirector())
	assert.False(t, (&session.UserRecord{Role: session.RoleManager}).IsDirector())
	assert.False(t, (&session.UserRecord{Role: session.RoleEmployee}).IsDirector())
}

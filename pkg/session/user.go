package session

// Role identifies what a user does inside an agency. Only directors carry
// subscription state; every other role resolves to "no package" by policy.
type Role string

const (
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// UserRecord is the owning aggregate for a user's subscription history.
// The whole record is read and written as one document; the sessions slice
// is always persisted in full, never as a delta.
type UserRecord struct {
	ID               string    `json:"id" bson:"_id"`
	Role             Role      `json:"role" bson:"role"`
	Sessions         []Session `json:"subscription_sessions" bson:"subscription_sessions"`
	CurrentSessionID string    `json:"current_session_id,omitempty" bson:"current_session_id,omitempty"`
}

// IsDirector reports whether this user carries subscription state.
func (u *UserRecord) IsDirector() bool {
	return u.Role == RoleDirector
}

// CurrentSession returns the session referenced by CurrentSessionID, but
// only when that session is also flagged active. When the pointer and the
// flag disagree the record is inconsistent and the lookup fails closed,
// returning nil rather than a stale session.
func (u *UserRecord) CurrentSession() *Session {
	if u.CurrentSessionID == "" {
		return nil
	}
	for i := range u.Sessions {
		if u.Sessions[i].ID == u.CurrentSessionID {
			if !u.Sessions[i].IsActive {
				return nil
			}
			return &u.Sessions[i]
		}
	}
	return nil
}

// SessionByID returns the session with the given id, or nil.
func (u *UserRecord) SessionByID(id string) *Session {
	for i := range u.Sessions {
		if u.Sessions[i].ID == id {
			return &u.Sessions[i]
		}
	}
	return nil
}

// ActivePayAsYouGoSessions returns every session of type pay_as_you_go that
// is still flagged active. Such sessions may coexist with the current
// subscription session; the active flag is distinct from whether their
// purchased tokens are spent, which is why the transition engine scans them
// for carry-over.
func (u *UserRecord) ActivePayAsYouGoSessions() []*Session {
	var out []*Session
	for i := range u.Sessions {
		if u.Sessions[i].SessionType == TypePayAsYouGo && u.Sessions[i].IsActive {
			out = append(out, &u.Sessions[i])
		}
	}
	return out
}

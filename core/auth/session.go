package auth

import (
	"errors"

	"github.com/trezcool/shule/core/user"
)

var ErrForbidden = errors.New("permission denied")

// Session identifies the authenticated caller of a core operation. It is
// built by the API layer (from verified token claims) and passed explicitly
// into every call; there is no ambient current-user state, so any number of
// sessions can be live at once.
type Session struct {
	Username string
	Role     user.Role
}

func NewSession(usr user.User) Session {
	return Session{Username: usr.Username, Role: usr.Role}
}

// IsAnonymous reports whether no user is logged in.
func (s Session) IsAnonymous() bool { return s == Session{} }

// Require fails with ErrForbidden unless the session's role is exactly `role`.
func (s Session) Require(role user.Role) error {
	if s.Role != role {
		return ErrForbidden
	}
	return nil
}

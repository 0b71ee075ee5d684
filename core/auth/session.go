package auth

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/user"
)

var ErrNotAuthenticated = errors.New("user not authenticated")

// Session holds the single authenticated identity for the process lifetime.
// It replaces ambient "current user" state: callers read it explicitly and
// hand the identity to the policy checks before any privileged store call.
type Session struct {
	usr *user.User
}

func NewSession() *Session {
	return &Session{}
}

// Login records usr as the authenticated identity, replacing any previous one.
func (s *Session) Login(usr user.User) {
	s.usr = &usr
}

func (s *Session) Logout() {
	s.usr = nil
}

func (s *Session) IsAuthenticated() bool {
	return s.usr != nil
}

func (s *Session) Current() (user.User, error) {
	if s.usr == nil {
		return user.User{}, ErrNotAuthenticated
	}
	return *s.usr, nil
}

// Refresh updates the stored identity in place, e.g. after a role change.
// No-op when usr is not the authenticated identity.
func (s *Session) Refresh(usr user.User) {
	if s.usr != nil && s.usr.ID == usr.ID {
		s.usr = &usr
	}
}

package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func authStatus(st *State) *Status { return &st.Auth.Status }

// Login authenticates and installs the resulting session in both the
// state and the shared token holder. A session whose token cannot be
// parsed (or names an unknown role) is rejected as a login failure.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	return run(ctx, s, "auth/login", authStatus,
		func(ctx context.Context) (*models.StaffSession, error) {
			sess, err := s.api.Staff.Login(ctx, creds)
			if err != nil {
				return nil, err
			}
			if err := s.tokens.Set(sess); err != nil {
				return nil, err
			}
			return sess, nil
		},
		func(st *State, sess *models.StaffSession) {
			st.Auth.Session = sess
		})
}

// RegisterStaff creates a staff account. The session of the acting
// admin stays in place; the created account logs in on its own.
func (s *Store) RegisterStaff(ctx context.Context, in api.StaffInput) error {
	return run(ctx, s, "auth/register", authStatus,
		func(ctx context.Context) (*models.StaffSession, error) {
			return s.api.Staff.Register(ctx, in)
		},
		func(st *State, _ *models.StaffSession) {})
}

// CheckEmail is the pre-submit uniqueness probe for staff forms. No
// state is touched; the form renders the result inline.
func (s *Store) CheckEmail(ctx context.Context, email string) (bool, error) {
	return s.api.Staff.CheckEmail(ctx, email)
}

// Logout synchronously clears the session from the state and the token
// holder. Durable cleanup and the shell reload are driven by the
// application layer, which also owns the persistence gate.
func (s *Store) Logout() {
	s.tokens.Clear()
	s.dispatch(func(st *State) {
		st.Auth = AuthStatus{}
	})
}

// Session returns the current session, or nil.
func (s *Store) Session() *models.StaffSession {
	return s.Snapshot().Auth.Session
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
	"github.com/dserbyn/regconsole/internal/registry/session"
)

type staffStub struct {
	api.Staff
	loginFn func(ctx context.Context, creds api.Credentials) (*models.StaffSession, error)
}

func (s *staffStub) Login(ctx context.Context, creds api.Credentials) (*models.StaffSession, error) {
	return s.loginFn(ctx, creds)
}

func signedToken(t *testing.T, role models.Role) string {
	t.Helper()
	claims := jwt.MapClaims{
		"staffId": float64(7),
		"role":    string(role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func testSession(t *testing.T, role models.Role) *models.StaffSession {
	t.Helper()
	return &models.StaffSession{
		ID:       7,
		Nickname: "inspector",
		Email:    "inspector@registry.local",
		Role:     role,
		Token:    signedToken(t, role),
	}
}

func TestLogin_InstallsSessionAndToken(t *testing.T) {
	sess := testSession(t, models.RoleModerator)
	client := &api.Client{Staff: &staffStub{
		loginFn: func(ctx context.Context, creds api.Credentials) (*models.StaffSession, error) {
			return sess, nil
		},
	}}
	holder := session.NewHolder()
	s := New(client, holder, logging.Discard())

	err := s.Login(context.Background(), api.Credentials{Email: sess.Email, Password: "pw"})
	require.NoError(t, err)

	st := s.Snapshot()
	require.NotNil(t, st.Auth.Session)
	assert.Equal(t, models.RoleModerator, st.Auth.Session.Role)
	assert.Equal(t, sess.Token, holder.Token())
}

func TestLogin_MalformedTokenRejected(t *testing.T) {
	sess := testSession(t, models.RoleModerator)
	sess.Token = "garbage"
	client := &api.Client{Staff: &staffStub{
		loginFn: func(ctx context.Context, creds api.Credentials) (*models.StaffSession, error) {
			return sess, nil
		},
	}}
	holder := session.NewHolder()
	s := New(client, holder, logging.Discard())

	err := s.Login(context.Background(), api.Credentials{Email: sess.Email, Password: "pw"})
	require.Error(t, err)

	st := s.Snapshot()
	assert.Nil(t, st.Auth.Session)
	assert.NotEmpty(t, st.Auth.Err)
	assert.Empty(t, holder.Token())
}

func TestLogout_ClearsSessionAndToken(t *testing.T) {
	sess := testSession(t, models.RoleAdmin)
	holder := session.NewHolder()
	s := New(&api.Client{}, holder, logging.Discard(), WithSession(sess))
	require.NotEmpty(t, holder.Token(), "rehydrated session seeds the holder")

	s.Logout()

	assert.Nil(t, s.Snapshot().Auth.Session)
	assert.Empty(t, holder.Token())
}

func TestNew_UnparsableRehydratedSessionDropped(t *testing.T) {
	sess := testSession(t, models.RoleAdmin)
	sess.Token = "not-a-jwt"
	holder := session.NewHolder()
	s := New(&api.Client{}, holder, logging.Discard(), WithSession(sess))

	assert.Nil(t, s.Snapshot().Auth.Session)
	assert.Empty(t, holder.Token())
}

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := makeToken(t, jwt.MapClaims{
		"staffId": float64(42),
		"role":    "admin",
		"exp":     exp.Unix(),
	})

	c, err := ParseClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.StaffID)
	assert.Equal(t, models.RoleAdmin, c.Role)
	assert.Equal(t, exp.Unix(), c.ExpiresAt.Unix())
	assert.False(t, c.Expired(time.Now()))
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_UnknownRole(t *testing.T) {
	tok := makeToken(t, jwt.MapClaims{"staffId": float64(1), "role": "owner"})
	_, err := ParseClaims(tok)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestParseClaims_NoExpiryNeverExpires(t *testing.T) {
	tok := makeToken(t, jwt.MapClaims{"staffId": float64(1), "role": "visitor"})
	c, err := ParseClaims(tok)
	require.NoError(t, err)
	assert.False(t, c.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func sessionWithToken(tok string) *models.StaffSession {
	return &models.StaffSession{ID: 1, Nickname: "n", Email: "n@registry.local", Role: models.RoleVisitor, Token: tok}
}

func TestHolder_SetGetClear(t *testing.T) {
	tok := makeToken(t, jwt.MapClaims{"staffId": float64(1), "role": "visitor"})
	h := NewHolder()

	require.NoError(t, h.Set(sessionWithToken(tok)))
	require.NotNil(t, h.Get())
	assert.Equal(t, tok, h.Token())

	h.Clear()
	assert.Nil(t, h.Get())
	assert.Empty(t, h.Token())
}

func TestHolder_RejectsMalformedToken(t *testing.T) {
	h := NewHolder()
	err := h.Set(sessionWithToken("garbage"))
	assert.Error(t, err)
	assert.Nil(t, h.Get())
}

func TestHolder_ExpiredTokenNotSent(t *testing.T) {
	tok := makeToken(t, jwt.MapClaims{
		"staffId": float64(1),
		"role":    "visitor",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	h := NewHolder()
	require.NoError(t, h.Set(sessionWithToken(tok)))

	assert.Empty(t, h.Token(), "an expired credential is withheld, not sent to be rejected")
	assert.True(t, h.Expired())
}

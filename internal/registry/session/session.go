// Package session holds the bearer credential shared between the
// store (which sets it on login) and the HTTP transport (which reads
// it on every request). Claims are parsed client-side for display and
// expiry checks only; signature verification stays on the server.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownRole  = errors.New("unknown role")
)

// Claims are the token fields the console cares about.
type Claims struct {
	StaffID   int64
	Role      models.Role
	ExpiresAt time.Time
}

// Expired reports whether the token lifetime has passed. A token
// without an exp claim never expires client-side; the server is still
// free to reject it.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// ParseClaims decodes a bearer token without verifying its signature
// and extracts the staff id, role, and expiry.
func ParseClaims(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	c := &Claims{}
	if v, ok := mc["staffId"].(float64); ok {
		c.StaffID = int64(v)
	}
	if v, ok := mc["role"].(string); ok {
		c.Role = models.Role(v)
	}
	if !c.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, c.Role)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Holder is the concurrency-safe credential cell. It satisfies the
// transport's TokenSource.
type Holder struct {
	mu     sync.RWMutex
	sess   *models.StaffSession
	claims *Claims
	now    func() time.Time
}

// NewHolder returns an empty Holder.
func NewHolder() *Holder {
	return &Holder{now: time.Now}
}

// Set installs a session after parsing its token claims. A session
// with a malformed token or unknown role is rejected.
func (h *Holder) Set(sess *models.StaffSession) error {
	claims, err := ParseClaims(sess.Token)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.sess = sess
	h.claims = claims
	h.mu.Unlock()
	return nil
}

// Get returns the current session, or nil when logged out.
func (h *Holder) Get() *models.StaffSession {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sess
}

// Clear drops the session. Used on logout and on 401 responses.
func (h *Holder) Clear() {
	h.mu.Lock()
	h.sess = nil
	h.claims = nil
	h.mu.Unlock()
}

// Token returns the bearer credential for the next request, or ""
// when there is no session or the token has already expired. An
// expired token is not sent at all, so the failure surfaces as a
// client-side authorization error instead of a wasted round-trip.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.sess == nil || h.claims == nil {
		return ""
	}
	if h.claims.Expired(h.now()) {
		return ""
	}
	return h.sess.Token
}

// Expired reports whether a session exists but its token lifetime has
// passed.
func (h *Holder) Expired() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sess != nil && h.claims != nil && h.claims.Expired(h.now())
}

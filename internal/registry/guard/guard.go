// Package guard decides whether a navigation target may render for
// the current session. The authentication check strictly precedes the
// role check, so an anonymous visitor never learns which role a route
// requires.
package guard

import (
	"github.com/dserbyn/regconsole/internal/registry/models"
)

// Outcome is the guard's verdict for one navigation attempt.
type Outcome int

const (
	// Render allows the view to mount.
	Render Outcome = iota
	// RedirectLogin means the session is missing or expired.
	RedirectLogin
	// RedirectForbidden means the session's role is insufficient.
	RedirectForbidden
	// NotFound means no route matches the path.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	default:
		return "not-found"
	}
}

// Resolve checks path against the static route table.
func Resolve(sess *models.StaffSession, path string) Outcome {
	route, ok := Match(path)
	if !ok {
		return NotFound
	}
	return resolveRoute(sess, route)
}

func resolveRoute(sess *models.StaffSession, route Route) Outcome {
	if route.Public() {
		return Render
	}
	if sess == nil {
		return RedirectLogin
	}
	if sess.Role.Rank() < route.MinRole.Rank() {
		return RedirectForbidden
	}
	return Render
}

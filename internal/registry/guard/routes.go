package guard

import (
	"strings"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

// Route is one protected (or public) navigation target. MinRole
// expresses the requirement against the total role order; an empty
// MinRole marks the route public. Patterns use :name segments for
// path parameters.
type Route struct {
	Name    string
	Pattern string
	MinRole models.Role
}

// Public reports whether the route needs no session at all.
func (r Route) Public() bool {
	return r.MinRole == ""
}

// Routes is the static navigation surface of the console. Moderators
// and above may edit registry data; plain visitors only read; staff
// registration is admin-only.
var Routes = []Route{
	{Name: "login", Pattern: "/login"},
	{Name: "forbidden", Pattern: "/forbidden"},

	{Name: "people", Pattern: "/people", MinRole: models.RoleVisitor},
	{Name: "person", Pattern: "/people/:id", MinRole: models.RoleVisitor},
	{Name: "person-new", Pattern: "/people/new", MinRole: models.RoleModerator},
	{Name: "person-edit", Pattern: "/people/:id/edit", MinRole: models.RoleModerator},
	{Name: "person-delete", Pattern: "/people/:id/delete", MinRole: models.RoleModerator},

	{Name: "cars", Pattern: "/cars", MinRole: models.RoleVisitor},
	{Name: "person-cars", Pattern: "/people/:id/cars", MinRole: models.RoleVisitor},
	{Name: "car-new", Pattern: "/people/:id/cars/new", MinRole: models.RoleModerator},
	{Name: "car-edit", Pattern: "/people/:id/cars/:carId/edit", MinRole: models.RoleModerator},
	{Name: "car-delete", Pattern: "/people/:id/cars/:carId/delete", MinRole: models.RoleModerator},

	{Name: "person-addresses", Pattern: "/people/:id/addresses", MinRole: models.RoleVisitor},
	{Name: "residents", Pattern: "/addresses/:id/residents", MinRole: models.RoleVisitor},
	{Name: "address-new", Pattern: "/people/:id/addresses/new", MinRole: models.RoleModerator},
	{Name: "address-edit", Pattern: "/people/:id/addresses/:addressId/edit", MinRole: models.RoleModerator},
	{Name: "address-delete", Pattern: "/people/:id/addresses/:addressId/delete", MinRole: models.RoleModerator},

	{Name: "person-crimes", Pattern: "/people/:id/crimes", MinRole: models.RoleVisitor},
	{Name: "crime-new", Pattern: "/people/:id/crimes/new", MinRole: models.RoleModerator},
	{Name: "crime-edit", Pattern: "/people/:id/crimes/:crimeId/edit", MinRole: models.RoleModerator},
	{Name: "crime-delete", Pattern: "/people/:id/crimes/:crimeId/delete", MinRole: models.RoleModerator},

	{Name: "person-phones", Pattern: "/people/:id/phones", MinRole: models.RoleVisitor},
	{Name: "phone-new", Pattern: "/people/:id/phones/new", MinRole: models.RoleModerator},
	{Name: "phone-edit", Pattern: "/people/:id/phones/:phoneId/edit", MinRole: models.RoleModerator},
	{Name: "phone-delete", Pattern: "/people/:id/phones/:phoneId/delete", MinRole: models.RoleModerator},

	{Name: "person-photos", Pattern: "/people/:id/photos", MinRole: models.RoleVisitor},
	{Name: "photo-new", Pattern: "/people/:id/photos/new", MinRole: models.RoleModerator},
	{Name: "photo-delete", Pattern: "/people/:id/photos/:photoId/delete", MinRole: models.RoleModerator},

	{Name: "history", Pattern: "/history", MinRole: models.RoleModerator},
	{Name: "staff-new", Pattern: "/staff/new", MinRole: models.RoleAdmin},
}

// Match finds the route covering path. Literal segments are preferred
// over parameter segments, so /people/new resolves to person-new and
// not to person with id "new".
func Match(path string) (Route, bool) {
	segs := split(path)

	best, found := Route{}, false
	bestLiterals := -1
	for _, route := range Routes {
		literals, ok := matchPattern(split(route.Pattern), segs)
		if ok && literals > bestLiterals {
			best, found, bestLiterals = route, true, literals
		}
	}
	return best, found
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// matchPattern reports whether the pattern covers the path segments,
// returning the number of literal matches for specificity ranking.
func matchPattern(pattern, segs []string) (literals int, ok bool) {
	if len(pattern) != len(segs) {
		return 0, false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			continue
		}
		if p != segs[i] {
			return 0, false
		}
		literals++
	}
	return literals, true
}

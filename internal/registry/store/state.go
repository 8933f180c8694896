// Package store holds the console's client-side state: one collection
// per registry entity, each mutated only through three-phase operation
// lifecycles (started, succeeded, failed). Views subscribe to the
// store and render snapshots; they never own entity data themselves.
package store

import (
	"github.com/dserbyn/regconsole/internal/registry/models"
)

// Status is the request-lifecycle state every collection carries.
// Exactly one of {Loading=true} or {Loading=false, Err set-or-empty}
// is meaningful at a time: starting an operation always clears Err.
type Status struct {
	Loading bool
	Err     string
}

// Collection is a mirrored entity set plus its lifecycle status.
type Collection[T any] struct {
	Items []T
	Status
}

// AuthStatus is the session slice: at most one authenticated identity.
type AuthStatus struct {
	Session *models.StaffSession
	Status
}

// State is the full console state. Reducers treat the previous State
// as immutable input: collections are replaced, never edited in place,
// so a snapshot handed to a subscriber is never observed mid-change.
type State struct {
	People      Collection[models.Person]
	PeopleTotal int64
	PersonIDs   []int64

	Cars      Collection[models.Car]
	CarsTotal int64

	Addresses Collection[models.Address]
	Residents Collection[models.Residency]

	Crimes  Collection[models.CriminalRecord]
	Prisons Collection[models.Prison]

	Phones Collection[models.Phone]
	Photos Collection[models.Photo]

	History Collection[models.SearchHistoryEntry]

	// Selected is the bookmarked-people list: client-side only, never
	// persisted, no lifecycle status because it involves no requests.
	Selected []models.Person

	Auth      AuthStatus
	DarkTheme bool
}

// replaceAll is the wholesale merge policy used by fetches. A nil
// payload (a call that settled successfully but produced nothing)
// collapses the collection to empty rather than keeping stale rows.
func replaceAll[T any](c *Collection[T], items []T) {
	if items == nil {
		items = []T{}
	}
	c.Items = items
}

// upsertByID replaces the matching element or appends, returning a new
// slice so prior snapshots stay intact.
func upsertByID[T any](items []T, v T, id func(T) int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if id(out[i]) == id(v) {
			out[i] = v
			return out
		}
	}
	return append(out, v)
}

// removeByID filters out the element with the given id, returning a
// new slice. Removing an absent id is a no-op.
func removeByID[T any](items []T, target int64, id func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return out
}

// PageCount derives the page total from an entity count. Page numbers
// start at 1; requesting a page past the end yields an empty listing,
// not an error.
func PageCount(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

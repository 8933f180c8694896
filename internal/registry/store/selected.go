package store

import (
	"github.com/dserbyn/regconsole/internal/registry/models"
)

// SelectPerson bookmarks a person. Duplicate ids are rejected here,
// not just hidden by the view, so selecting twice is indistinguishable
// from selecting once.
func (s *Store) SelectPerson(p models.Person) {
	s.dispatch(func(st *State) {
		for _, existing := range st.Selected {
			if existing.ID == p.ID {
				return
			}
		}
		out := make([]models.Person, len(st.Selected), len(st.Selected)+1)
		copy(out, st.Selected)
		st.Selected = append(out, p)
	})
}

// UnselectPerson removes a bookmark by id; an absent id is a no-op.
func (s *Store) UnselectPerson(id int64) {
	s.dispatch(func(st *State) {
		st.Selected = removeByID(st.Selected, id, personID)
	})
}

// ClearSelected drops every bookmark.
func (s *Store) ClearSelected() {
	s.dispatch(func(st *State) {
		st.Selected = nil
	})
}

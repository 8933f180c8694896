package store

import (
	"context"
	"encoding/json"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func personID(p models.Person) int64 { return p.ID }

func peopleStatus(st *State) *Status { return &st.People.Status }

// FetchPeople replaces the person collection with one page of the
// listing. The total count is fetched separately (CountPeople); the
// two can race and the shell tolerates a transiently stale count.
func (s *Store) FetchPeople(ctx context.Context, page api.PageRequest) error {
	return run(ctx, s, "people/list", peopleStatus,
		func(ctx context.Context) ([]models.Person, error) {
			return s.api.People.List(ctx, page)
		},
		func(st *State, people []models.Person) {
			replaceAll(&st.People, people)
		})
}

// FetchPerson re-fetches a single person and upserts it in place, so a
// fresh detail view does not discard the rest of the listed page.
func (s *Store) FetchPerson(ctx context.Context, id int64) error {
	return run(ctx, s, "people/get", peopleStatus,
		func(ctx context.Context) (*models.Person, error) {
			return s.api.People.Get(ctx, id)
		},
		func(st *State, p *models.Person) {
			if p != nil {
				st.People.Items = upsertByID(st.People.Items, *p, personID)
			}
		})
}

// SearchPeople replaces the collection with the search result and
// appends the action to the staff member's server-side search history.
// An all-nil filter set is sent as no filters at all, making it
// equivalent to an unfiltered listing.
func (s *Store) SearchPeople(ctx context.Context, q api.PersonQuery) error {
	err := run(ctx, s, "people/search", peopleStatus,
		func(ctx context.Context) ([]models.Person, error) {
			return s.api.People.Search(ctx, q)
		},
		func(st *State, people []models.Person) {
			replaceAll(&st.People, people)
		})
	if err == nil {
		s.recordSearch(ctx, q)
	}
	return err
}

// CountPeople refreshes the total used for page-count computation.
func (s *Store) CountPeople(ctx context.Context) error {
	return run(ctx, s, "people/count", peopleStatus,
		func(ctx context.Context) (int64, error) {
			return s.api.People.Count(ctx)
		},
		func(st *State, n int64) {
			st.PeopleTotal = n
		})
}

// FetchPersonIDs loads the id enumeration backing next/previous
// navigation in the detail view.
func (s *Store) FetchPersonIDs(ctx context.Context) error {
	return run(ctx, s, "people/ids", peopleStatus,
		func(ctx context.Context) ([]int64, error) {
			return s.api.People.IDs(ctx)
		},
		func(st *State, ids []int64) {
			if ids == nil {
				ids = []int64{}
			}
			st.PersonIDs = ids
		})
}

// CreatePerson submits a new person and, on success, appends the
// server-assigned record to the collection. This optimistic append is
// the only way a person enters the store without a fetch.
func (s *Store) CreatePerson(ctx context.Context, in api.PersonInput) error {
	return run(ctx, s, "people/create", peopleStatus,
		func(ctx context.Context) (*models.Person, error) {
			return s.api.People.Create(ctx, in)
		},
		func(st *State, p *models.Person) {
			if p != nil {
				st.People.Items = upsertByID(st.People.Items, *p, personID)
			}
		})
}

// UpdatePerson submits changed fields and upserts the result.
func (s *Store) UpdatePerson(ctx context.Context, id int64, in api.PersonInput) error {
	return run(ctx, s, "people/update", peopleStatus,
		func(ctx context.Context) (*models.Person, error) {
			return s.api.People.Update(ctx, id, in)
		},
		func(st *State, p *models.Person) {
			if p != nil {
				st.People.Items = upsertByID(st.People.Items, *p, personID)
			}
		})
}

// DeletePerson removes the person server-side, then filters the
// collection (and the bookmark list) by id.
func (s *Store) DeletePerson(ctx context.Context, id int64) error {
	return run(ctx, s, "people/delete", peopleStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.People.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.People.Items = removeByID(st.People.Items, id, personID)
			st.Selected = removeByID(st.Selected, id, personID)
		})
}

// recordSearch appends the query to the server-side history. Failures
// are logged and swallowed: history is bookkeeping, not a reason to
// fail a search the user already got results for.
func (s *Store) recordSearch(ctx context.Context, q api.PersonQuery) {
	filters, err := json.Marshal(q)
	if err != nil {
		filters = []byte("{}")
	}
	in := api.HistoryInput{Query: q.Query, Filters: string(filters), EntityType: "person"}
	if err := s.api.History.Record(ctx, in); err != nil {
		s.log.Warn(ctx, "recording search history failed", "err", err)
	}
}

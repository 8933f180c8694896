package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func crimeID(c models.CriminalRecord) int64 { return c.ID }

func crimesStatus(st *State) *Status  { return &st.Crimes.Status }
func prisonsStatus(st *State) *Status { return &st.Prisons.Status }

// FetchCrimes replaces the criminal-record collection with one
// person's records.
func (s *Store) FetchCrimes(ctx context.Context, personID int64) error {
	return run(ctx, s, "crimes/list", crimesStatus,
		func(ctx context.Context) ([]models.CriminalRecord, error) {
			return s.api.Crimes.ListByPerson(ctx, personID)
		},
		func(st *State, crimes []models.CriminalRecord) {
			replaceAll(&st.Crimes, crimes)
		})
}

// FetchPrisons loads the facility reference list the record form
// offers.
func (s *Store) FetchPrisons(ctx context.Context) error {
	return run(ctx, s, "prisons/list", prisonsStatus,
		func(ctx context.Context) ([]models.Prison, error) {
			return s.api.Crimes.Prisons(ctx)
		},
		func(st *State, ps []models.Prison) {
			replaceAll(&st.Prisons, ps)
		})
}

func (s *Store) CreateCrime(ctx context.Context, in api.CrimeInput) error {
	return run(ctx, s, "crimes/create", crimesStatus,
		func(ctx context.Context) (*models.CriminalRecord, error) {
			return s.api.Crimes.Create(ctx, in)
		},
		func(st *State, c *models.CriminalRecord) {
			if c != nil {
				st.Crimes.Items = upsertByID(st.Crimes.Items, *c, crimeID)
			}
		})
}

func (s *Store) UpdateCrime(ctx context.Context, id int64, in api.CrimeInput) error {
	return run(ctx, s, "crimes/update", crimesStatus,
		func(ctx context.Context) (*models.CriminalRecord, error) {
			return s.api.Crimes.Update(ctx, id, in)
		},
		func(st *State, c *models.CriminalRecord) {
			if c != nil {
				st.Crimes.Items = upsertByID(st.Crimes.Items, *c, crimeID)
			}
		})
}

func (s *Store) DeleteCrime(ctx context.Context, id int64) error {
	return run(ctx, s, "crimes/delete", crimesStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Crimes.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.Crimes.Items = removeByID(st.Crimes.Items, id, crimeID)
		})
}

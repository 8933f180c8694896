package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func addressID(a models.Address) int64 { return a.ID }

func addressesStatus(st *State) *Status { return &st.Addresses.Status }
func residentsStatus(st *State) *Status { return &st.Residents.Status }

// FetchAddresses replaces the address collection with one person's
// addresses.
func (s *Store) FetchAddresses(ctx context.Context, personID int64) error {
	return run(ctx, s, "addresses/list", addressesStatus,
		func(ctx context.Context) ([]models.Address, error) {
			return s.api.Addresses.ListByPerson(ctx, personID)
		},
		func(st *State, addrs []models.Address) {
			replaceAll(&st.Addresses, addrs)
		})
}

// FetchResidents loads the residency history of one address into its
// own collection, independently of the address fetch.
func (s *Store) FetchResidents(ctx context.Context, addrID int64) error {
	return run(ctx, s, "residents/list", residentsStatus,
		func(ctx context.Context) ([]models.Residency, error) {
			return s.api.Addresses.Residents(ctx, addrID)
		},
		func(st *State, rs []models.Residency) {
			replaceAll(&st.Residents, rs)
		})
}

func (s *Store) CreateAddress(ctx context.Context, in api.AddressInput) error {
	return run(ctx, s, "addresses/create", addressesStatus,
		func(ctx context.Context) (*models.Address, error) {
			return s.api.Addresses.Create(ctx, in)
		},
		func(st *State, a *models.Address) {
			if a != nil {
				st.Addresses.Items = upsertByID(st.Addresses.Items, *a, addressID)
			}
		})
}

func (s *Store) UpdateAddress(ctx context.Context, id int64, in api.AddressInput) error {
	return run(ctx, s, "addresses/update", addressesStatus,
		func(ctx context.Context) (*models.Address, error) {
			return s.api.Addresses.Update(ctx, id, in)
		},
		func(st *State, a *models.Address) {
			if a != nil {
				st.Addresses.Items = upsertByID(st.Addresses.Items, *a, addressID)
			}
		})
}

func (s *Store) DeleteAddress(ctx context.Context, id int64) error {
	return run(ctx, s, "addresses/delete", addressesStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Addresses.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.Addresses.Items = removeByID(st.Addresses.Items, id, addressID)
		})
}

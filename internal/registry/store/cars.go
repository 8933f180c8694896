package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func carID(c models.Car) int64 { return c.ID }

func carsStatus(st *State) *Status { return &st.Cars.Status }

// FetchCars replaces the vehicle collection with one page of the
// all-vehicles listing.
func (s *Store) FetchCars(ctx context.Context, page api.PageRequest) error {
	return run(ctx, s, "cars/list", carsStatus,
		func(ctx context.Context) ([]models.Car, error) {
			return s.api.Cars.List(ctx, page)
		},
		func(st *State, cars []models.Car) {
			replaceAll(&st.Cars, cars)
		})
}

// FetchCarsOfPerson replaces the collection with one person's
// vehicles. The different scoping is a different operation, not a
// filter over previously fetched rows.
func (s *Store) FetchCarsOfPerson(ctx context.Context, personID int64) error {
	return run(ctx, s, "cars/list", carsStatus,
		func(ctx context.Context) ([]models.Car, error) {
			return s.api.Cars.ListByPerson(ctx, personID)
		},
		func(st *State, cars []models.Car) {
			replaceAll(&st.Cars, cars)
		})
}

// FetchCar upserts a single vehicle in place.
func (s *Store) FetchCar(ctx context.Context, id int64) error {
	return run(ctx, s, "cars/get", carsStatus,
		func(ctx context.Context) (*models.Car, error) {
			return s.api.Cars.Get(ctx, id)
		},
		func(st *State, c *models.Car) {
			if c != nil {
				st.Cars.Items = upsertByID(st.Cars.Items, *c, carID)
			}
		})
}

// CountCars refreshes the vehicle total for pagination.
func (s *Store) CountCars(ctx context.Context) error {
	return run(ctx, s, "cars/count", carsStatus,
		func(ctx context.Context) (int64, error) {
			return s.api.Cars.Count(ctx)
		},
		func(st *State, n int64) {
			st.CarsTotal = n
		})
}

// CheckPlate is the pre-submit uniqueness probe for the create form.
// It touches no state; the form renders the result inline.
func (s *Store) CheckPlate(ctx context.Context, plate string) (bool, error) {
	return s.api.Cars.CheckPlate(ctx, plate)
}

func (s *Store) CreateCar(ctx context.Context, in api.CarInput) error {
	return run(ctx, s, "cars/create", carsStatus,
		func(ctx context.Context) (*models.Car, error) {
			return s.api.Cars.Create(ctx, in)
		},
		func(st *State, c *models.Car) {
			if c != nil {
				st.Cars.Items = upsertByID(st.Cars.Items, *c, carID)
			}
		})
}

func (s *Store) UpdateCar(ctx context.Context, id int64, in api.CarInput) error {
	return run(ctx, s, "cars/update", carsStatus,
		func(ctx context.Context) (*models.Car, error) {
			return s.api.Cars.Update(ctx, id, in)
		},
		func(st *State, c *models.Car) {
			if c != nil {
				st.Cars.Items = upsertByID(st.Cars.Items, *c, carID)
			}
		})
}

func (s *Store) DeleteCar(ctx context.Context, id int64) error {
	return run(ctx, s, "cars/delete", carsStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Cars.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.Cars.Items = removeByID(st.Cars.Items, id, carID)
		})
}

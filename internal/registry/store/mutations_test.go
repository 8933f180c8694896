package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

type carsStub struct {
	api.Cars
	listByPersonFn func(ctx context.Context, personID int64) ([]models.Car, error)
	getFn          func(ctx context.Context, id int64) (*models.Car, error)
	updateFn       func(ctx context.Context, id int64, in api.CarInput) (*models.Car, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *carsStub) ListByPerson(ctx context.Context, personID int64) ([]models.Car, error) {
	return s.listByPersonFn(ctx, personID)
}

func (s *carsStub) Get(ctx context.Context, id int64) (*models.Car, error) {
	return s.getFn(ctx, id)
}

func (s *carsStub) Update(ctx context.Context, id int64, in api.CarInput) (*models.Car, error) {
	return s.updateFn(ctx, id, in)
}

func (s *carsStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type addressesStub struct {
	api.Addresses
	createFn func(ctx context.Context, in api.AddressInput) (*models.Address, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *addressesStub) Create(ctx context.Context, in api.AddressInput) (*models.Address, error) {
	return s.createFn(ctx, in)
}

func (s *addressesStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type crimesStub struct {
	api.Crimes
	listByPersonFn func(ctx context.Context, personID int64) ([]models.CriminalRecord, error)
	updateFn       func(ctx context.Context, id int64, in api.CrimeInput) (*models.CriminalRecord, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *crimesStub) ListByPerson(ctx context.Context, personID int64) ([]models.CriminalRecord, error) {
	return s.listByPersonFn(ctx, personID)
}

func (s *crimesStub) Update(ctx context.Context, id int64, in api.CrimeInput) (*models.CriminalRecord, error) {
	return s.updateFn(ctx, id, in)
}

func (s *crimesStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type phonesStub struct {
	api.Phones
	createFn func(ctx context.Context, in api.PhoneInput) (*models.Phone, error)
	updateFn func(ctx context.Context, id int64, in api.PhoneInput) (*models.Phone, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *phonesStub) Create(ctx context.Context, in api.PhoneInput) (*models.Phone, error) {
	return s.createFn(ctx, in)
}

func (s *phonesStub) Update(ctx context.Context, id int64, in api.PhoneInput) (*models.Phone, error) {
	return s.updateFn(ctx, id, in)
}

func (s *phonesStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type photosStub struct {
	api.Photos
	createFn func(ctx context.Context, in api.PhotoInput) (*models.Photo, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *photosStub) Create(ctx context.Context, in api.PhotoInput) (*models.Photo, error) {
	return s.createFn(ctx, in)
}

func (s *photosStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestUpdateCar_UpsertsInPlace(t *testing.T) {
	stub := &carsStub{
		listByPersonFn: func(ctx context.Context, personID int64) ([]models.Car, error) {
			return []models.Car{{ID: 1, Brand: "Lada"}, {ID: 2, Brand: "Opel"}}, nil
		},
		updateFn: func(ctx context.Context, id int64, in api.CarInput) (*models.Car, error) {
			return &models.Car{ID: id, Brand: in.Brand}, nil
		},
	}
	s := newTestStore(t, &api.Client{Cars: stub})
	require.NoError(t, s.FetchCarsOfPerson(context.Background(), 7))

	require.NoError(t, s.UpdateCar(context.Background(), 2, api.CarInput{PersonID: 7, Brand: "Skoda"}))

	st := s.Snapshot()
	assert.Equal(t, []models.Car{{ID: 1, Brand: "Lada"}, {ID: 2, Brand: "Skoda"}}, st.Cars.Items,
		"the updated row replaces the old one, its position is kept")
	assert.False(t, st.Cars.Loading)
	assert.Empty(t, st.Cars.Err)
}

func TestDeleteCar_RemovesRow(t *testing.T) {
	stub := &carsStub{
		listByPersonFn: func(ctx context.Context, personID int64) ([]models.Car, error) {
			return []models.Car{{ID: 1}, {ID: 2}}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := newTestStore(t, &api.Client{Cars: stub})
	require.NoError(t, s.FetchCarsOfPerson(context.Background(), 7))

	require.NoError(t, s.DeleteCar(context.Background(), 1))
	assert.Equal(t, []models.Car{{ID: 2}}, s.Snapshot().Cars.Items)
}

func TestDeleteCar_FailureKeepsRow(t *testing.T) {
	stub := &carsStub{
		listByPersonFn: func(ctx context.Context, personID int64) ([]models.Car, error) {
			return []models.Car{{ID: 1}}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return errors.New("boom") },
	}
	s := newTestStore(t, &api.Client{Cars: stub})
	require.NoError(t, s.FetchCarsOfPerson(context.Background(), 7))

	require.Error(t, s.DeleteCar(context.Background(), 1))
	st := s.Snapshot()
	assert.Equal(t, []models.Car{{ID: 1}}, st.Cars.Items, "a failed delete must not drop the row")
	assert.NotEmpty(t, st.Cars.Err)
}

func TestCreateAddress_AppendsServerRecord(t *testing.T) {
	stub := &addressesStub{
		createFn: func(ctx context.Context, in api.AddressInput) (*models.Address, error) {
			return &models.Address{ID: 5, City: in.City}, nil
		},
	}
	s := newTestStore(t, &api.Client{Addresses: stub})

	require.NoError(t, s.CreateAddress(context.Background(), api.AddressInput{PersonID: 7, City: "Kyiv"}))

	st := s.Snapshot()
	assert.Equal(t, []models.Address{{ID: 5, City: "Kyiv"}}, st.Addresses.Items,
		"the server-assigned record enters the collection without a refetch")
	assert.False(t, st.Addresses.Loading)
	assert.Empty(t, st.Addresses.Err)
}

func TestDeleteAddress_RemovesRow(t *testing.T) {
	stub := &addressesStub{
		createFn: func(ctx context.Context, in api.AddressInput) (*models.Address, error) {
			return &models.Address{ID: 5, City: in.City}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := newTestStore(t, &api.Client{Addresses: stub})
	require.NoError(t, s.CreateAddress(context.Background(), api.AddressInput{PersonID: 7, City: "Kyiv"}))

	require.NoError(t, s.DeleteAddress(context.Background(), 5))
	assert.Empty(t, s.Snapshot().Addresses.Items)
}

func TestUpdateCrime_UpsertsInPlace(t *testing.T) {
	stub := &crimesStub{
		listByPersonFn: func(ctx context.Context, personID int64) ([]models.CriminalRecord, error) {
			return []models.CriminalRecord{{ID: 3, Article: "185"}}, nil
		},
		updateFn: func(ctx context.Context, id int64, in api.CrimeInput) (*models.CriminalRecord, error) {
			return &models.CriminalRecord{ID: id, Article: in.Article}, nil
		},
	}
	s := newTestStore(t, &api.Client{Crimes: stub})
	require.NoError(t, s.FetchCrimes(context.Background(), 7))

	require.NoError(t, s.UpdateCrime(context.Background(), 3, api.CrimeInput{PersonID: 7, Article: "186"}))
	assert.Equal(t, []models.CriminalRecord{{ID: 3, Article: "186"}}, s.Snapshot().Crimes.Items)
}

func TestDeleteCrime_RemovesRow(t *testing.T) {
	stub := &crimesStub{
		listByPersonFn: func(ctx context.Context, personID int64) ([]models.CriminalRecord, error) {
			return []models.CriminalRecord{{ID: 3}, {ID: 4}}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := newTestStore(t, &api.Client{Crimes: stub})
	require.NoError(t, s.FetchCrimes(context.Background(), 7))

	require.NoError(t, s.DeleteCrime(context.Background(), 3))
	assert.Equal(t, []models.CriminalRecord{{ID: 4}}, s.Snapshot().Crimes.Items)
}

func TestPhoneMutations_CreateUpdateDelete(t *testing.T) {
	stub := &phonesStub{
		createFn: func(ctx context.Context, in api.PhoneInput) (*models.Phone, error) {
			return &models.Phone{ID: 9, Number: in.Number}, nil
		},
		updateFn: func(ctx context.Context, id int64, in api.PhoneInput) (*models.Phone, error) {
			return &models.Phone{ID: id, Number: in.Number, Note: in.Note}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := newTestStore(t, &api.Client{Phones: stub})
	ctx := context.Background()

	require.NoError(t, s.CreatePhone(ctx, api.PhoneInput{PersonID: 7, Number: "+380501112233"}))
	assert.Equal(t, []models.Phone{{ID: 9, Number: "+380501112233"}}, s.Snapshot().Phones.Items)

	require.NoError(t, s.UpdatePhone(ctx, 9, api.PhoneInput{PersonID: 7, Number: "+380501112233", Note: "work"}))
	assert.Equal(t, "work", s.Snapshot().Phones.Items[0].Note)

	require.NoError(t, s.DeletePhone(ctx, 9))
	assert.Empty(t, s.Snapshot().Phones.Items)
}

func TestPhotoMutations_CreateDelete(t *testing.T) {
	stub := &photosStub{
		createFn: func(ctx context.Context, in api.PhotoInput) (*models.Photo, error) {
			return &models.Photo{ID: 4, URL: in.URL}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	s := newTestStore(t, &api.Client{Photos: stub})
	ctx := context.Background()

	require.NoError(t, s.CreatePhoto(ctx, api.PhotoInput{PersonID: 7, URL: "https://cdn.registry.local/p/4.jpg"}))
	assert.Equal(t, []models.Photo{{ID: 4, URL: "https://cdn.registry.local/p/4.jpg"}}, s.Snapshot().Photos.Items)

	require.NoError(t, s.DeletePhoto(ctx, 4))
	assert.Empty(t, s.Snapshot().Photos.Items)
}

func TestFetchCar_UpsertsSingleRow(t *testing.T) {
	stub := &carsStub{
		getFn: func(ctx context.Context, id int64) (*models.Car, error) {
			return &models.Car{ID: id, Brand: "Lada"}, nil
		},
	}
	s := newTestStore(t, &api.Client{Cars: stub})

	require.NoError(t, s.FetchCar(context.Background(), 8))
	assert.Equal(t, []models.Car{{ID: 8, Brand: "Lada"}}, s.Snapshot().Cars.Items)
}

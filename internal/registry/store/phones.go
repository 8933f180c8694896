package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func phoneID(p models.Phone) int64 { return p.ID }
func photoID(p models.Photo) int64 { return p.ID }

func phonesStatus(st *State) *Status { return &st.Phones.Status }
func photosStatus(st *State) *Status { return &st.Photos.Status }

// FetchPhones replaces the phone collection with one person's numbers.
func (s *Store) FetchPhones(ctx context.Context, personID int64) error {
	return run(ctx, s, "phones/list", phonesStatus,
		func(ctx context.Context) ([]models.Phone, error) {
			return s.api.Phones.ListByPerson(ctx, personID)
		},
		func(st *State, phones []models.Phone) {
			replaceAll(&st.Phones, phones)
		})
}

func (s *Store) CreatePhone(ctx context.Context, in api.PhoneInput) error {
	return run(ctx, s, "phones/create", phonesStatus,
		func(ctx context.Context) (*models.Phone, error) {
			return s.api.Phones.Create(ctx, in)
		},
		func(st *State, p *models.Phone) {
			if p != nil {
				st.Phones.Items = upsertByID(st.Phones.Items, *p, phoneID)
			}
		})
}

func (s *Store) UpdatePhone(ctx context.Context, id int64, in api.PhoneInput) error {
	return run(ctx, s, "phones/update", phonesStatus,
		func(ctx context.Context) (*models.Phone, error) {
			return s.api.Phones.Update(ctx, id, in)
		},
		func(st *State, p *models.Phone) {
			if p != nil {
				st.Phones.Items = upsertByID(st.Phones.Items, *p, phoneID)
			}
		})
}

func (s *Store) DeletePhone(ctx context.Context, id int64) error {
	return run(ctx, s, "phones/delete", phonesStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Phones.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.Phones.Items = removeByID(st.Phones.Items, id, phoneID)
		})
}

// FetchPhotos replaces the photo collection with one person's photos.
func (s *Store) FetchPhotos(ctx context.Context, personID int64) error {
	return run(ctx, s, "photos/list", photosStatus,
		func(ctx context.Context) ([]models.Photo, error) {
			return s.api.Photos.ListByPerson(ctx, personID)
		},
		func(st *State, photos []models.Photo) {
			replaceAll(&st.Photos, photos)
		})
}

func (s *Store) CreatePhoto(ctx context.Context, in api.PhotoInput) error {
	return run(ctx, s, "photos/create", photosStatus,
		func(ctx context.Context) (*models.Photo, error) {
			return s.api.Photos.Create(ctx, in)
		},
		func(st *State, p *models.Photo) {
			if p != nil {
				st.Photos.Items = upsertByID(st.Photos.Items, *p, photoID)
			}
		})
}

func (s *Store) DeletePhoto(ctx context.Context, id int64) error {
	return run(ctx, s, "photos/delete", photosStatus,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Photos.Delete(ctx, id)
		},
		func(st *State, _ struct{}) {
			st.Photos.Items = removeByID(st.Photos.Items, id, photoID)
		})
}

package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type photosClient struct {
	t *Transport
}

func (c *photosClient) ListByPerson(ctx context.Context, personID int64) ([]models.Photo, error) {
	var out []models.Photo
	if err := c.t.get(ctx, fmt.Sprintf("/Photo/personId/%d", personID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Photo{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *photosClient) Create(ctx context.Context, in PhotoInput) (*models.Photo, error) {
	var out models.Photo
	if err := c.t.post(ctx, "/Photo", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *photosClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("Photo", id))
}

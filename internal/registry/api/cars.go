package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type carsClient struct {
	t *Transport
}

func (c *carsClient) List(ctx context.Context, page PageRequest) ([]models.Car, error) {
	var out []models.Car
	if err := c.t.get(ctx, "/Car", page.query(), &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Car{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carsClient) ListByPerson(ctx context.Context, personID int64) ([]models.Car, error) {
	var out []models.Car
	if err := c.t.get(ctx, fmt.Sprintf("/Car/personId/%d", personID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Car{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carsClient) Get(ctx context.Context, id int64) (*models.Car, error) {
	var out models.Car
	if err := c.t.get(ctx, idPath("Car", id), nil, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *carsClient) Count(ctx context.Context) (int64, error) {
	var out countResponse
	if err := c.t.get(ctx, "/Car/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// CheckPlate asks the backend whether a license plate is already
// registered, so the create form can surface the conflict before
// submitting.
func (c *carsClient) CheckPlate(ctx context.Context, plate string) (bool, error) {
	q := url.Values{}
	q.Set("licensePlate", plate)
	var out checkResponse
	if err := c.t.get(ctx, "/Car/checkLicensePlate", q, &out); err != nil {
		return false, err
	}
	return out.Taken, nil
}

func (c *carsClient) Create(ctx context.Context, in CarInput) (*models.Car, error) {
	var out models.Car
	if err := c.t.post(ctx, "/Car", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *carsClient) Update(ctx context.Context, id int64, in CarInput) (*models.Car, error) {
	var out models.Car
	if err := c.t.put(ctx, idPath("Car", id), in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *carsClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("Car", id))
}

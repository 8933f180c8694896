package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type phonesClient struct {
	t *Transport
}

func (c *phonesClient) ListByPerson(ctx context.Context, personID int64) ([]models.Phone, error) {
	var out []models.Phone
	if err := c.t.get(ctx, fmt.Sprintf("/Phone/personId/%d", personID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Phone{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *phonesClient) Create(ctx context.Context, in PhoneInput) (*models.Phone, error) {
	var out models.Phone
	if err := c.t.post(ctx, "/Phone", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *phonesClient) Update(ctx context.Context, id int64, in PhoneInput) (*models.Phone, error) {
	var out models.Phone
	if err := c.t.put(ctx, idPath("Phone", id), in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *phonesClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("Phone", id))
}

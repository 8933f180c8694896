package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type addressesClient struct {
	t *Transport
}

func (c *addressesClient) ListByPerson(ctx context.Context, personID int64) ([]models.Address, error) {
	var out []models.Address
	if err := c.t.get(ctx, fmt.Sprintf("/Address/personId/%d", personID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Address{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *addressesClient) Get(ctx context.Context, id int64) (*models.Address, error) {
	var out models.Address
	if err := c.t.get(ctx, idPath("Address", id), nil, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Residents lists the move-in/move-out history of an address. It is a
// separate fetch so the address form stays usable while the history
// loads.
func (c *addressesClient) Residents(ctx context.Context, addressID int64) ([]models.Residency, error) {
	var out []models.Residency
	if err := c.t.get(ctx, fmt.Sprintf("/Address/%d/residents", addressID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Residency{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *addressesClient) Create(ctx context.Context, in AddressInput) (*models.Address, error) {
	var out models.Address
	if err := c.t.post(ctx, "/Address", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *addressesClient) Update(ctx context.Context, id int64, in AddressInput) (*models.Address, error) {
	var out models.Address
	if err := c.t.put(ctx, idPath("Address", id), in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *addressesClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("Address", id))
}

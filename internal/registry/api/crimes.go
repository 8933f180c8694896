package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type crimesClient struct {
	t *Transport
}

func (c *crimesClient) ListByPerson(ctx context.Context, personID int64) ([]models.CriminalRecord, error) {
	var out []models.CriminalRecord
	if err := c.t.get(ctx, fmt.Sprintf("/CriminalRecord/personId/%d", personID), nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.CriminalRecord{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *crimesClient) Get(ctx context.Context, id int64) (*models.CriminalRecord, error) {
	var out models.CriminalRecord
	if err := c.t.get(ctx, idPath("CriminalRecord", id), nil, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Prisons returns the reference list the criminal-record form offers
// when picking the serving facility.
func (c *crimesClient) Prisons(ctx context.Context) ([]models.Prison, error) {
	var out []models.Prison
	if err := c.t.get(ctx, "/Prison", nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Prison{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *crimesClient) Create(ctx context.Context, in CrimeInput) (*models.CriminalRecord, error) {
	var out models.CriminalRecord
	if err := c.t.post(ctx, "/CriminalRecord", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *crimesClient) Update(ctx context.Context, id int64, in CrimeInput) (*models.CriminalRecord, error) {
	var out models.CriminalRecord
	if err := c.t.put(ctx, idPath("CriminalRecord", id), in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *crimesClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("CriminalRecord", id))
}

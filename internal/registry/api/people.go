package api

import (
	"context"
	"errors"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type peopleClient struct {
	t *Transport
}

func (c *peopleClient) List(ctx context.Context, page PageRequest) ([]models.Person, error) {
	var out []models.Person
	if err := c.t.get(ctx, "/User", page.query(), &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Person{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *peopleClient) Get(ctx context.Context, id int64) (*models.Person, error) {
	var out models.Person
	if err := c.t.get(ctx, idPath("User", id), nil, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *peopleClient) Search(ctx context.Context, q PersonQuery) ([]models.Person, error) {
	var out []models.Person
	if err := c.t.get(ctx, "/User/search", q.query(), &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Person{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *peopleClient) Count(ctx context.Context) (int64, error) {
	var out countResponse
	if err := c.t.get(ctx, "/User/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *peopleClient) IDs(ctx context.Context) ([]int64, error) {
	var out []int64
	if err := c.t.get(ctx, "/User/ids", nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []int64{}, nil
		}
		return nil, err
	}
	return out, nil
}

func (c *peopleClient) Create(ctx context.Context, in PersonInput) (*models.Person, error) {
	var out models.Person
	if err := c.t.post(ctx, "/User", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *peopleClient) Update(ctx context.Context, id int64, in PersonInput) (*models.Person, error) {
	var out models.Person
	if err := c.t.put(ctx, idPath("User", id), in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *peopleClient) Delete(ctx context.Context, id int64) error {
	return c.t.delete(ctx, idPath("User", id))
}

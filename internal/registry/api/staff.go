package api

import (
	"context"
	"errors"
	"net/url"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

type staffClient struct {
	t *Transport
}

// Login exchanges credentials for a staff session carrying the bearer
// token used on every subsequent request.
func (c *staffClient) Login(ctx context.Context, creds Credentials) (*models.StaffSession, error) {
	var out models.StaffSession
	if err := c.t.post(ctx, "/Staff/login", creds, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new staff account. Only admins may call it; the
// backend enforces that, the guard merely hides the view.
func (c *staffClient) Register(ctx context.Context, in StaffInput) (*models.StaffSession, error) {
	var out models.StaffSession
	if err := c.t.post(ctx, "/Staff", in, &out); err != nil {
		return nil, err
	}
	if err := models.Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEmail asks whether an email is already registered, so the form
// can flag the conflict before submitting.
func (c *staffClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	q := url.Values{}
	q.Set("email", email)
	var out checkResponse
	if err := c.t.get(ctx, "/Staff/checkEmail", q, &out); err != nil {
		return false, err
	}
	return out.Taken, nil
}

type historyClient struct {
	t *Transport
}

func (c *historyClient) List(ctx context.Context) ([]models.SearchHistoryEntry, error) {
	var out []models.SearchHistoryEntry
	if err := c.t.get(ctx, "/StaffSearchHistory", nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.SearchHistoryEntry{}, nil
		}
		return nil, err
	}
	if err := models.ValidateSlice(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Record appends a search action to the staff member's history. The
// console never edits or deletes entries.
func (c *historyClient) Record(ctx context.Context, in HistoryInput) error {
	return c.t.post(ctx, "/StaffSearchHistory", in, nil)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tr := NewTransport(srv.URL, 2*time.Second, staticToken(token), logging.Discard())
	return New(tr)
}

func TestTransport_BearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode(countResponse{Count: 1})
	}), "tok123")

	_, err := c.People.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestTransport_NoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(countResponse{})
	}), "")

	_, err := c.People.Count(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestTransport_StatusNormalization(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"401 maps to unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"403 maps to forbidden", http.StatusForbidden, ErrForbidden},
		{"404 on a single entity maps to not found", http.StatusNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}), "tok")

			_, err := c.People.Get(context.Background(), 7)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransport_ConnectionFailureIsUnavailable(t *testing.T) {
	tr := NewTransport("http://127.0.0.1:1", 200*time.Millisecond, nil, logging.Discard())
	c := New(tr)

	_, err := c.People.Count(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPeopleList_NotFoundIsEmptyNotError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), "tok")

	people, err := c.People.List(context.Background(), PageRequest{Page: 1, Size: 15})
	require.NoError(t, err)
	assert.Empty(t, people)
	assert.NotNil(t, people)
}

func TestCarsCreate_ConflictCarriesField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ConflictError{Field: "carNumber", Message: "already registered"})
	}), "tok")

	_, err := c.Cars.Create(context.Background(), CarInput{PersonID: 1, Brand: "Lanos", LicensePlate: "AA1234BB"})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "carNumber", ce.Field)
	assert.Equal(t, "already registered", ce.Message)
}

func TestPeopleGet_MalformedPayloadRejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Structurally valid JSON that fails the entity schema (no id,
		// no names).
		json.NewEncoder(w).Encode(map[string]any{"id": 0})
	}), "tok")

	_, err := c.People.Get(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payload")
}

func TestPeopleList_DecodesAndValidates(t *testing.T) {
	want := []models.Person{{
		ID: 1, FirstName: "Olena", LastName: "Kovalenko",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(want)
	}), "tok")

	people, err := c.People.List(context.Background(), PageRequest{Page: 2, Size: 15, SortCol: "lastName", SortDir: "desc"})
	require.NoError(t, err)
	assert.Equal(t, want, people)
	assert.Contains(t, gotQuery, "pageNumber=2")
	assert.Contains(t, gotQuery, "pageSize=15")
	assert.Contains(t, gotQuery, "sortColumn=lastName")
	assert.Contains(t, gotQuery, "sortDirection=desc")
}

func TestCheckPlate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AA1234BB", r.URL.Query().Get("licensePlate"))
		json.NewEncoder(w).Encode(checkResponse{Taken: true})
	}), "tok")

	taken, err := c.Cars.CheckPlate(context.Background(), "AA1234BB")
	require.NoError(t, err)
	assert.True(t, taken)
}

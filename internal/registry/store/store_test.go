package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
	"github.com/dserbyn/regconsole/internal/registry/session"
)

type peopleStub struct {
	api.People
	listFn   func(ctx context.Context, page api.PageRequest) ([]models.Person, error)
	searchFn func(ctx context.Context, q api.PersonQuery) ([]models.Person, error)
	deleteFn func(ctx context.Context, id int64) error
	idsFn    func(ctx context.Context) ([]int64, error)
}

func (s *peopleStub) List(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
	return s.listFn(ctx, page)
}

func (s *peopleStub) Search(ctx context.Context, q api.PersonQuery) ([]models.Person, error) {
	return s.searchFn(ctx, q)
}

func (s *peopleStub) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *peopleStub) IDs(ctx context.Context) ([]int64, error) {
	return s.idsFn(ctx)
}

type historyStub struct {
	api.History
	records atomic.Int64
}

func (s *historyStub) Record(ctx context.Context, in api.HistoryInput) error {
	s.records.Add(1)
	return nil
}

func newTestStore(t *testing.T, client *api.Client, opts ...Option) *Store {
	t.Helper()
	return New(client, session.NewHolder(), logging.Discard(), opts...)
}

func TestFetchPeople_LifecycleSignals(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	want := []models.Person{{ID: 1, FirstName: "Olena", LastName: "Kovalenko"}}
	client := &api.Client{People: &peopleStub{
		listFn: func(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
			close(started)
			<-release
			return want, nil
		},
	}}
	s := newTestStore(t, client)

	done := make(chan error, 1)
	go func() {
		done <- s.FetchPeople(context.Background(), api.PageRequest{Page: 1, Size: 15})
	}()

	// Between started and the terminal signal: loading, no stale error.
	<-started
	st := s.Snapshot()
	assert.True(t, st.People.Loading)
	assert.Empty(t, st.People.Err)

	close(release)
	require.NoError(t, <-done)

	st = s.Snapshot()
	assert.False(t, st.People.Loading)
	assert.Empty(t, st.People.Err)
	assert.Equal(t, want, st.People.Items)
}

func TestFetchPeople_FailureKeepsCollection(t *testing.T) {
	seed := []models.Person{{ID: 1, FirstName: "Olena", LastName: "Kovalenko"}}
	client := &api.Client{People: &peopleStub{
		listFn: func(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
			return nil, errors.New("boom")
		},
	}}
	s := newTestStore(t, client, WithPeople(seed))

	err := s.FetchPeople(context.Background(), api.PageRequest{Page: 1, Size: 15})
	require.Error(t, err)

	st := s.Snapshot()
	assert.False(t, st.People.Loading)
	assert.NotEmpty(t, st.People.Err)
	assert.Equal(t, seed, st.People.Items, "a failed fetch must not touch the collection")
}

func TestFetchPeople_NilPayloadCollapsesToEmpty(t *testing.T) {
	seed := []models.Person{{ID: 1, FirstName: "Olena", LastName: "Kovalenko"}}
	client := &api.Client{People: &peopleStub{
		listFn: func(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
			return nil, nil
		},
	}}
	s := newTestStore(t, client, WithPeople(seed))

	require.NoError(t, s.FetchPeople(context.Background(), api.PageRequest{Page: 1, Size: 15}))

	st := s.Snapshot()
	require.NotNil(t, st.People.Items)
	assert.Empty(t, st.People.Items, "an empty success replaces stale rows, it does not keep them")
	assert.Empty(t, st.People.Err)
}

func TestFetchPeople_OutOfRangePageIsEmptyNotError(t *testing.T) {
	client := &api.Client{People: &peopleStub{
		listFn: func(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
			// Backend behavior for a page past the end.
			return []models.Person{}, nil
		},
	}}
	s := newTestStore(t, client)

	require.NoError(t, s.FetchPeople(context.Background(), api.PageRequest{Page: 4, Size: 15}))
	st := s.Snapshot()
	assert.Empty(t, st.People.Items)
	assert.Empty(t, st.People.Err)
}

func TestSearchPeople_StaleResponseDropped(t *testing.T) {
	firstStarted := make(chan struct{})
	secondStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})

	first := []models.Person{{ID: 1, FirstName: "Old", LastName: "Result"}}
	second := []models.Person{{ID: 2, FirstName: "New", LastName: "Result"}}

	var calls atomic.Int64
	client := &api.Client{
		People: &peopleStub{
			searchFn: func(ctx context.Context, q api.PersonQuery) ([]models.Person, error) {
				if calls.Add(1) == 1 {
					close(firstStarted)
					<-releaseFirst
					return first, nil
				}
				close(secondStarted)
				<-releaseSecond
				return second, nil
			},
		},
		History: &historyStub{},
	}
	s := newTestStore(t, client)

	done1 := make(chan error, 1)
	done2 := make(chan error, 1)
	go func() { done1 <- s.SearchPeople(context.Background(), api.PersonQuery{Query: "old"}) }()
	<-firstStarted
	go func() { done2 <- s.SearchPeople(context.Background(), api.PersonQuery{Query: "new"}) }()
	<-secondStarted

	// The newer request settles first; the older response arrives late
	// and must be discarded.
	close(releaseSecond)
	require.NoError(t, <-done2)
	close(releaseFirst)
	require.NoError(t, <-done1)

	st := s.Snapshot()
	assert.Equal(t, second, st.People.Items, "an older response must not overwrite a newer one")
	assert.False(t, st.People.Loading)
}

func TestDeletePerson_FiltersCollectionAndBookmarks(t *testing.T) {
	seed := []models.Person{{ID: 1}, {ID: 2}}
	client := &api.Client{People: &peopleStub{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}}
	s := newTestStore(t, client, WithPeople(seed))
	s.SelectPerson(seed[0])

	require.NoError(t, s.DeletePerson(context.Background(), 1))

	st := s.Snapshot()
	assert.Equal(t, []models.Person{{ID: 2}}, st.People.Items)
	assert.Empty(t, st.Selected)
}

func TestSubscribe_NotifiedOnEveryTransition(t *testing.T) {
	client := &api.Client{People: &peopleStub{
		listFn: func(ctx context.Context, page api.PageRequest) ([]models.Person, error) {
			return []models.Person{}, nil
		},
	}}
	s := newTestStore(t, client)

	var notified atomic.Int64
	cancel := s.Subscribe(func(State) { notified.Add(1) })

	require.NoError(t, s.FetchPeople(context.Background(), api.PageRequest{Page: 1, Size: 15}))
	// One started and one terminal signal.
	assert.Equal(t, int64(2), notified.Load())

	cancel()
	s.ToggleTheme()
	assert.Equal(t, int64(2), notified.Load(), "a cancelled subscriber stays quiet")
}

func TestFetchPersonIDs_ReplacesEnumeration(t *testing.T) {
	client := &api.Client{People: &peopleStub{
		idsFn: func(ctx context.Context) ([]int64, error) {
			return []int64{3, 7, 12}, nil
		},
	}}
	s := newTestStore(t, client)

	require.NoError(t, s.FetchPersonIDs(context.Background()))
	st := s.Snapshot()
	assert.Equal(t, []int64{3, 7, 12}, st.PersonIDs)
	assert.False(t, st.People.Loading)
	assert.Empty(t, st.People.Err)

	client.People.(*peopleStub).idsFn = func(ctx context.Context) ([]int64, error) {
		return nil, nil
	}
	require.NoError(t, s.FetchPersonIDs(context.Background()))
	require.NotNil(t, s.Snapshot().PersonIDs)
	assert.Empty(t, s.Snapshot().PersonIDs)
}

func TestSearchPeople_RecordsHistory(t *testing.T) {
	hist := &historyStub{}
	client := &api.Client{
		People: &peopleStub{
			searchFn: func(ctx context.Context, q api.PersonQuery) ([]models.Person, error) {
				return []models.Person{}, nil
			},
		},
		History: hist,
	}
	s := newTestStore(t, client)

	require.NoError(t, s.SearchPeople(context.Background(), api.PersonQuery{Query: "koval"}))
	assert.Eventually(t, func() bool { return hist.records.Load() == 1 },
		time.Second, 10*time.Millisecond)
}

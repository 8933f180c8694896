package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func TestSelectPerson_DuplicateIDRejected(t *testing.T) {
	s := newTestStore(t, &api.Client{})

	p := models.Person{ID: 7, FirstName: "Iryna", LastName: "Shevchenko"}
	s.SelectPerson(p)
	s.SelectPerson(p)

	st := s.Snapshot()
	assert.Len(t, st.Selected, 1, "the reducer itself rejects duplicates, not just the view")
}

func TestUnselectPerson_Idempotent(t *testing.T) {
	s := newTestStore(t, &api.Client{})
	s.SelectPerson(models.Person{ID: 7})

	s.UnselectPerson(7)
	s.UnselectPerson(7)

	st := s.Snapshot()
	assert.Empty(t, st.Selected)
}

func TestClearSelected(t *testing.T) {
	s := newTestStore(t, &api.Client{})
	s.SelectPerson(models.Person{ID: 1})
	s.SelectPerson(models.Person{ID: 2})

	s.ClearSelected()

	assert.Empty(t, s.Snapshot().Selected)
}

package store

import (
	"context"

	"github.com/dserbyn/regconsole/internal/registry/models"
)

func historyStatus(st *State) *Status { return &st.History.Status }

// FetchHistory replaces the search-history collection. The collection
// is read-only client-side: entries are appended server-side when a
// search runs, never edited here.
func (s *Store) FetchHistory(ctx context.Context) error {
	return run(ctx, s, "history/list", historyStatus,
		func(ctx context.Context) ([]models.SearchHistoryEntry, error) {
			return s.api.History.List(ctx)
		},
		func(st *State, entries []models.SearchHistoryEntry) {
			replaceAll(&st.History, entries)
		})
}

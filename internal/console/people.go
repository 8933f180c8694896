package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/store"
)

const defaultPageSize = 15

// peopleView renders one page of the person listing plus the page
// count derived from the separately fetched total.
func (a *App) peopleView(ctx context.Context, args []string) {
	page := api.PageRequest{Page: 1, Size: defaultPageSize, SortCol: "lastName", SortDir: "asc"}
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page.Page = n
		}
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			page.Size = n
		}
	}

	_ = a.store.FetchPeople(ctx, page)
	_ = a.store.CountPeople(ctx)

	st := a.store.Snapshot()
	if !a.renderStatus(st.People.Status) {
		return
	}

	rows := make([][]string, 0, len(st.People.Items))
	for _, p := range st.People.Items {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.LastName, p.FirstName, p.DateOfBirth,
		})
	}
	a.renderTable([]string{"ID", "LAST", "FIRST", "BORN"}, rows)
	fmt.Fprintf(a.out, "page %d of %d (%d total)\n",
		page.Page, store.PageCount(st.PeopleTotal, page.Size), st.PeopleTotal)
}

func (a *App) personView(ctx context.Context, id int64) {
	_ = a.store.FetchPerson(ctx, id)

	st := a.store.Snapshot()
	if !a.renderStatus(st.People.Status) {
		return
	}
	for _, p := range st.People.Items {
		if p.ID == id {
			a.lastPersonID = id
			fmt.Fprintf(a.out, "#%d %s %s %s\nborn %s, registered %s, %d photo(s)\n",
				p.ID, p.LastName, p.FirstName, p.Patronymic,
				p.DateOfBirth, p.CreatedAt.Format("2006-01-02"), len(p.Photos))
			fmt.Fprintln(a.out, "('next'/'prev' walk the registry in id order)")
			return
		}
	}
	fmt.Fprintf(a.out, "Person %d not found.\n", id)
}

// neighborView resolves the next or previous person relative to the
// last viewed one, using the server-side id enumeration, and opens its
// detail view.
func (a *App) neighborView(ctx context.Context, step int) {
	if a.lastPersonID == 0 {
		fmt.Fprintln(a.out, "View a person first.")
		return
	}
	if err := a.store.FetchPersonIDs(ctx); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().People.Err)
		return
	}

	ids := a.store.Snapshot().PersonIDs
	for i, id := range ids {
		if id != a.lastPersonID {
			continue
		}
		j := i + step
		if j < 0 || j >= len(ids) {
			fmt.Fprintln(a.out, "No more people in that direction.")
			return
		}
		target := ids[j]
		a.navigate(ctx, fmt.Sprintf("/people/%d", target), func(ctx context.Context) { a.personView(ctx, target) })
		return
	}
	fmt.Fprintf(a.out, "Person %d is no longer in the registry.\n", a.lastPersonID)
}

// searchView asks for the optional structured filters, runs the
// search, then lets the user refine the query line by line. Refinement
// lines are debounced the way keystrokes are in a search box, so a
// burst of edits collapses into one request; the final query always
// runs synchronously before rendering.
func (a *App) searchView(ctx context.Context, query string) {
	q := api.PersonQuery{Query: query}

	minAge, err := promptOptionalInt(a.reader, a.out, "Min age")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	maxAge, err := promptOptionalInt(a.reader, a.out, "Max age")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	q.MinAge, q.MaxAge = minAge, maxAge

	_ = a.store.SearchPeople(ctx, q)
	a.renderSearchResult()

	deb := store.NewDebouncer(a.searchDelay)
	defer deb.Stop()
	refined := false
	for {
		line, err := promptLine(a.reader, a.out, "Refine query (empty to finish)")
		if err != nil || line == "" {
			break
		}
		refined = true
		q.Query = line
		next := q
		deb.Trigger(func() { _ = a.store.SearchPeople(ctx, next) })
	}
	if !refined {
		return
	}
	deb.Stop()
	_ = a.store.SearchPeople(ctx, q)
	a.renderSearchResult()
}

func (a *App) renderSearchResult() {
	st := a.store.Snapshot()
	if !a.renderStatus(st.People.Status) {
		return
	}
	rows := make([][]string, 0, len(st.People.Items))
	for _, p := range st.People.Items {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.LastName, p.FirstName})
	}
	a.renderTable([]string{"ID", "LAST", "FIRST"}, rows)
}

func (a *App) personCreateView(ctx context.Context) {
	in, ok := a.promptPersonInput()
	if !ok {
		return
	}
	if err := a.store.CreatePerson(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().People.Err)
		return
	}
	fmt.Fprintln(a.out, "Person created.")
}

func (a *App) personEditView(ctx context.Context, id int64) {
	in, ok := a.promptPersonInput()
	if !ok {
		return
	}
	if err := a.store.UpdatePerson(ctx, id, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().People.Err)
		return
	}
	fmt.Fprintln(a.out, "Person updated.")
}

func (a *App) personDeleteView(ctx context.Context, id int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete person %d? (yes/no)", id))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeletePerson(ctx, id); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().People.Err)
		return
	}
	fmt.Fprintln(a.out, "Person deleted.")
}

func (a *App) promptPersonInput() (api.PersonInput, bool) {
	var in api.PersonInput
	var err error
	if in.FirstName, err = promptLine(a.reader, a.out, "First name"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.LastName, err = promptLine(a.reader, a.out, "Last name"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Patronymic, err = promptLine(a.reader, a.out, "Patronymic (optional)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.DateOfBirth, err = promptLine(a.reader, a.out, "Date of birth (YYYY-MM-DD)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	return in, true
}

func (a *App) selectPerson(id int64) {
	st := a.store.Snapshot()
	for _, p := range st.People.Items {
		if p.ID == id {
			a.store.SelectPerson(p)
			fmt.Fprintf(a.out, "Selected %s %s.\n", p.LastName, p.FirstName)
			return
		}
	}
	fmt.Fprintf(a.out, "Person %d is not in the current listing; fetch it first.\n", id)
}

func (a *App) selectedView() {
	st := a.store.Snapshot()
	rows := make([][]string, 0, len(st.Selected))
	for _, p := range st.Selected {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.LastName, p.FirstName})
	}
	a.renderTable([]string{"ID", "LAST", "FIRST"}, rows)
}

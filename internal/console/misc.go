package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dserbyn/regconsole/internal/registry/api"
)

func (a *App) promptCrimeInput(personID int64) (api.CrimeInput, bool) {
	in := api.CrimeInput{PersonID: personID}
	var err error
	if in.Article, err = promptLine(a.reader, a.out, "Article"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Sentence, err = promptLine(a.reader, a.out, "Sentence"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.ConvictionDate, err = promptLine(a.reader, a.out, "Conviction date (YYYY-MM-DD)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.ReleaseDate, err = promptLine(a.reader, a.out, "Release date (optional)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	prisonID, err := promptOptionalInt(a.reader, a.out, "Prison id")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if prisonID != nil {
		in.PrisonID = int64(*prisonID)
	}
	return in, true
}

func (a *App) phonesView(ctx context.Context, personID int64) {
	_ = a.store.FetchPhones(ctx, personID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Phones.Status) {
		return
	}
	rows := make([][]string, 0, len(st.Phones.Items))
	for _, p := range st.Phones.Items {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Number, p.Note})
	}
	a.renderTable([]string{"ID", "NUMBER", "NOTE"}, rows)
}

func (a *App) promptPhoneInput(personID int64) (api.PhoneInput, bool) {
	in := api.PhoneInput{PersonID: personID}
	var err error
	if in.Number, err = promptLine(a.reader, a.out, "Phone number"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Note, err = promptLine(a.reader, a.out, "Note (optional)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	return in, true
}

func (a *App) phoneCreateView(ctx context.Context, personID int64) {
	in, ok := a.promptPhoneInput(personID)
	if !ok {
		return
	}
	if err := a.store.CreatePhone(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Phones.Err)
		return
	}
	fmt.Fprintln(a.out, "Phone created.")
}

func (a *App) phoneEditView(ctx context.Context, personID, phoneID int64) {
	in, ok := a.promptPhoneInput(personID)
	if !ok {
		return
	}
	if err := a.store.UpdatePhone(ctx, phoneID, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Phones.Err)
		return
	}
	fmt.Fprintln(a.out, "Phone updated.")
}

func (a *App) phoneDeleteView(ctx context.Context, phoneID int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete phone %d? (yes/no)", phoneID))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeletePhone(ctx, phoneID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Phones.Err)
		return
	}
	fmt.Fprintln(a.out, "Phone deleted.")
}

func (a *App) photosView(ctx context.Context, personID int64) {
	_ = a.store.FetchPhotos(ctx, personID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Photos.Status) {
		return
	}
	rows := make([][]string, 0, len(st.Photos.Items))
	for _, p := range st.Photos.Items {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.URL})
	}
	a.renderTable([]string{"ID", "URL"}, rows)
}

func (a *App) photoCreateView(ctx context.Context, personID int64) {
	url, err := promptLine(a.reader, a.out, "Photo URL")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if err := a.store.CreatePhoto(ctx, api.PhotoInput{PersonID: personID, URL: url}); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Photos.Err)
		return
	}
	fmt.Fprintln(a.out, "Photo added.")
}

func (a *App) photoDeleteView(ctx context.Context, photoID int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete photo %d? (yes/no)", photoID))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeletePhoto(ctx, photoID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Photos.Err)
		return
	}
	fmt.Fprintln(a.out, "Photo deleted.")
}

func (a *App) historyView(ctx context.Context) {
	_ = a.store.FetchHistory(ctx)

	st := a.store.Snapshot()
	if !a.renderStatus(st.History.Status) {
		return
	}
	rows := make([][]string, 0, len(st.History.Items))
	for _, h := range st.History.Items {
		rows = append(rows, []string{
			h.CreatedAt.Format("2006-01-02 15:04"), h.EntityType, h.Query,
		})
	}
	a.renderTable([]string{"WHEN", "TYPE", "QUERY"}, rows)
}

package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dserbyn/regconsole/internal/registry/api"
)

func (a *App) addressesView(ctx context.Context, personID int64) {
	_ = a.store.FetchAddresses(ctx, personID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Addresses.Status) {
		return
	}
	rows := make([][]string, 0, len(st.Addresses.Items))
	for _, addr := range st.Addresses.Items {
		rows = append(rows, []string{
			strconv.FormatInt(addr.ID, 10), addr.City, addr.Street, addr.House, addr.Apartment,
		})
	}
	a.renderTable([]string{"ID", "CITY", "STREET", "HOUSE", "APT"}, rows)
}

// residentsView takes an address id (listed by addressesView) and
// shows its move-in/move-out history.
func (a *App) residentsView(ctx context.Context, addressID int64) {
	_ = a.store.FetchResidents(ctx, addressID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Residents.Status) {
		return
	}
	rows := make([][]string, 0, len(st.Residents.Items))
	for _, r := range st.Residents.Items {
		out := r.MoveOutDate
		if out == "" {
			out = "present"
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.PersonID, 10), r.MoveInDate, out,
		})
	}
	a.renderTable([]string{"PERSON", "MOVED IN", "MOVED OUT"}, rows)
}

func (a *App) promptAddressInput(personID int64) (api.AddressInput, bool) {
	in := api.AddressInput{PersonID: personID}
	var err error
	if in.City, err = promptLine(a.reader, a.out, "City"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Street, err = promptLine(a.reader, a.out, "Street"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.House, err = promptLine(a.reader, a.out, "House"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Apartment, err = promptLine(a.reader, a.out, "Apartment (optional)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.PostCode, err = promptLine(a.reader, a.out, "Post code (optional)"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	return in, true
}

func (a *App) addressCreateView(ctx context.Context, personID int64) {
	in, ok := a.promptAddressInput(personID)
	if !ok {
		return
	}
	if err := a.store.CreateAddress(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Addresses.Err)
		return
	}
	fmt.Fprintln(a.out, "Address created.")
}

func (a *App) addressEditView(ctx context.Context, personID, addressID int64) {
	in, ok := a.promptAddressInput(personID)
	if !ok {
		return
	}
	if err := a.store.UpdateAddress(ctx, addressID, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Addresses.Err)
		return
	}
	fmt.Fprintln(a.out, "Address updated.")
}

func (a *App) addressDeleteView(ctx context.Context, addressID int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete address %d? (yes/no)", addressID))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeleteAddress(ctx, addressID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Addresses.Err)
		return
	}
	fmt.Fprintln(a.out, "Address deleted.")
}

func (a *App) crimesView(ctx context.Context, personID int64) {
	_ = a.store.FetchCrimes(ctx, personID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Crimes.Status) {
		return
	}
	rows := make([][]string, 0, len(st.Crimes.Items))
	for _, c := range st.Crimes.Items {
		prison := ""
		if c.Prison != nil {
			prison = c.Prison.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10), c.Article, c.ConvictionDate, c.ReleaseDate, prison,
		})
	}
	a.renderTable([]string{"ID", "ARTICLE", "CONVICTED", "RELEASED", "PRISON"}, rows)
}

func (a *App) crimeCreateView(ctx context.Context, personID int64) {
	// The form offers the prison reference list before asking for input.
	_ = a.store.FetchPrisons(ctx)
	st := a.store.Snapshot()
	if st.Prisons.Err == "" {
		for _, p := range st.Prisons.Items {
			fmt.Fprintf(a.out, "  [%d] %s (%s)\n", p.ID, p.Name, p.Location)
		}
	}

	in, ok := a.promptCrimeInput(personID)
	if !ok {
		return
	}
	if err := a.store.CreateCrime(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Crimes.Err)
		return
	}
	fmt.Fprintln(a.out, "Criminal record created.")
}

func (a *App) crimeEditView(ctx context.Context, personID, crimeID int64) {
	in, ok := a.promptCrimeInput(personID)
	if !ok {
		return
	}
	if err := a.store.UpdateCrime(ctx, crimeID, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Crimes.Err)
		return
	}
	fmt.Fprintln(a.out, "Criminal record updated.")
}

func (a *App) crimeDeleteView(ctx context.Context, crimeID int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete criminal record %d? (yes/no)", crimeID))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeleteCrime(ctx, crimeID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Crimes.Err)
		return
	}
	fmt.Fprintln(a.out, "Criminal record deleted.")
}

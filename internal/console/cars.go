package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
	"github.com/dserbyn/regconsole/internal/registry/store"
)

func (a *App) carsView(ctx context.Context, args []string) {
	page := api.PageRequest{Page: 1, Size: defaultPageSize, SortCol: "brand", SortDir: "asc"}
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

	_ = a.store.FetchCars(ctx, page)
	_ = a.store.CountCars(ctx)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Cars.Status) {
		return
	}
	a.renderCars(st.Cars.Items)
	fmt.Fprintf(a.out, "page %d of %d (%d total)\n",
		page.Page, store.PageCount(st.CarsTotal, page.Size), st.CarsTotal)
}

func (a *App) personCarsView(ctx context.Context, personID int64) {
	_ = a.store.FetchCarsOfPerson(ctx, personID)

	st := a.store.Snapshot()
	if !a.renderStatus(st.Cars.Status) {
		return
	}
	a.renderCars(st.Cars.Items)
}

func (a *App) renderCars(cars []models.Car) {
	rows := make([][]string, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10), c.Brand, c.Model, c.Color,
			strconv.Itoa(c.Year), c.LicensePlate,
		})
	}
	a.renderTable([]string{"ID", "BRAND", "MODEL", "COLOR", "YEAR", "PLATE"}, rows)
}

func (a *App) promptCarInput(personID int64) (api.CarInput, bool) {
	in := api.CarInput{PersonID: personID}
	var err error
	if in.Brand, err = promptLine(a.reader, a.out, "Brand"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Model, err = promptLine(a.reader, a.out, "Model"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if in.Color, err = promptLine(a.reader, a.out, "Color"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	year, err := promptOptionalInt(a.reader, a.out, "Year")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	if year != nil {
		in.Year = *year
	}
	if in.LicensePlate, err = promptLine(a.reader, a.out, "License plate"); err != nil {
		fmt.Fprintln(a.out, err)
		return in, false
	}
	return in, true
}

func (a *App) carCreateView(ctx context.Context, personID int64) {
	in, ok := a.promptCarInput(personID)
	if !ok {
		return
	}

	// Pre-submit uniqueness probe, like the form's on-blur check.
	if taken, err := a.store.CheckPlate(ctx, in.LicensePlate); err == nil && taken {
		fmt.Fprintln(a.out, "carNumber: already registered")
		return
	}

	if err := a.store.CreateCar(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Cars.Err)
		return
	}
	fmt.Fprintln(a.out, "Car created.")
}

// carEditView fetches the current record first so the form shows what
// it is about to overwrite.
func (a *App) carEditView(ctx context.Context, personID, carID int64) {
	if err := a.store.FetchCar(ctx, carID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Cars.Err)
		return
	}
	for _, c := range a.store.Snapshot().Cars.Items {
		if c.ID == carID {
			fmt.Fprintf(a.out, "Editing #%d %s %s (%s)\n", c.ID, c.Brand, c.Model, c.LicensePlate)
		}
	}

	in, ok := a.promptCarInput(personID)
	if !ok {
		return
	}
	if err := a.store.UpdateCar(ctx, carID, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Cars.Err)
		return
	}
	fmt.Fprintln(a.out, "Car updated.")
}

func (a *App) carDeleteView(ctx context.Context, carID int64) {
	confirm, err := promptLine(a.reader, a.out, fmt.Sprintf("Delete car %d? (yes/no)", carID))
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.DeleteCar(ctx, carID); err != nil {
		fmt.Fprintln(a.out, a.store.Snapshot().Cars.Err)
		return
	}
	fmt.Fprintln(a.out, "Car deleted.")
}

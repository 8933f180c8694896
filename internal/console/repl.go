package console

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) status() string {
	sess := a.store.Session()
	if sess == nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s %s)", sess.Nickname, sess.Role)
}

// repl reads commands and dispatches them as route navigations. Every
// view-rendering command goes through the guard; commands that only
// touch client-side state (theme, bookmarks) do not.
func (a *App) repl(ctx context.Context) {
	fmt.Fprintln(a.out, "Registry console (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "reg %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.navigate(ctx, "/login", a.loginView)
		case "logout":
			a.logout(ctx)
		case "whoami":
			fmt.Fprintln(a.out, a.status())
		case "people":
			a.navigate(ctx, "/people", func(ctx context.Context) { a.peopleView(ctx, args) })
		case "person":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d", id), func(ctx context.Context) { a.personView(ctx, id) })
			})
		case "search":
			a.navigate(ctx, "/people", func(ctx context.Context) { a.searchView(ctx, strings.Join(args, " ")) })
		case "person-new":
			a.navigate(ctx, "/people/new", a.personCreateView)
		case "person-edit":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/edit", id), func(ctx context.Context) { a.personEditView(ctx, id) })
			})
		case "person-delete":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/delete", id), func(ctx context.Context) { a.personDeleteView(ctx, id) })
			})
		case "next":
			a.neighborView(ctx, 1)
		case "prev":
			a.neighborView(ctx, -1)
		case "cars":
			a.navigate(ctx, "/cars", func(ctx context.Context) { a.carsView(ctx, args) })
		case "person-cars":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/cars", id), func(ctx context.Context) { a.personCarsView(ctx, id) })
			})
		case "car-new":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/cars/new", id), func(ctx context.Context) { a.carCreateView(ctx, id) })
			})
		case "car-edit":
			a.withTwoIDs(args, func(personID, carID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/cars/%d/edit", personID, carID),
					func(ctx context.Context) { a.carEditView(ctx, personID, carID) })
			})
		case "car-delete":
			a.withTwoIDs(args, func(personID, carID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/cars/%d/delete", personID, carID),
					func(ctx context.Context) { a.carDeleteView(ctx, carID) })
			})
		case "addresses":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/addresses", id), func(ctx context.Context) { a.addressesView(ctx, id) })
			})
		case "residents":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/addresses/%d/residents", id), func(ctx context.Context) { a.residentsView(ctx, id) })
			})
		case "address-new":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/addresses/new", id), func(ctx context.Context) { a.addressCreateView(ctx, id) })
			})
		case "address-edit":
			a.withTwoIDs(args, func(personID, addressID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/addresses/%d/edit", personID, addressID),
					func(ctx context.Context) { a.addressEditView(ctx, personID, addressID) })
			})
		case "address-delete":
			a.withTwoIDs(args, func(personID, addressID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/addresses/%d/delete", personID, addressID),
					func(ctx context.Context) { a.addressDeleteView(ctx, addressID) })
			})
		case "crimes":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/crimes", id), func(ctx context.Context) { a.crimesView(ctx, id) })
			})
		case "crime-new":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/crimes/new", id), func(ctx context.Context) { a.crimeCreateView(ctx, id) })
			})
		case "crime-edit":
			a.withTwoIDs(args, func(personID, crimeID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/crimes/%d/edit", personID, crimeID),
					func(ctx context.Context) { a.crimeEditView(ctx, personID, crimeID) })
			})
		case "crime-delete":
			a.withTwoIDs(args, func(personID, crimeID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/crimes/%d/delete", personID, crimeID),
					func(ctx context.Context) { a.crimeDeleteView(ctx, crimeID) })
			})
		case "phones":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/phones", id), func(ctx context.Context) { a.phonesView(ctx, id) })
			})
		case "phone-new":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/phones/new", id), func(ctx context.Context) { a.phoneCreateView(ctx, id) })
			})
		case "phone-edit":
			a.withTwoIDs(args, func(personID, phoneID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/phones/%d/edit", personID, phoneID),
					func(ctx context.Context) { a.phoneEditView(ctx, personID, phoneID) })
			})
		case "phone-delete":
			a.withTwoIDs(args, func(personID, phoneID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/phones/%d/delete", personID, phoneID),
					func(ctx context.Context) { a.phoneDeleteView(ctx, phoneID) })
			})
		case "photos":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/photos", id), func(ctx context.Context) { a.photosView(ctx, id) })
			})
		case "photo-new":
			a.withID(args, func(id int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/photos/new", id), func(ctx context.Context) { a.photoCreateView(ctx, id) })
			})
		case "photo-delete":
			a.withTwoIDs(args, func(personID, photoID int64) {
				a.navigate(ctx, fmt.Sprintf("/people/%d/photos/%d/delete", personID, photoID),
					func(ctx context.Context) { a.photoDeleteView(ctx, photoID) })
			})
		case "history":
			a.navigate(ctx, "/history", a.historyView)
		case "staff-new":
			a.navigate(ctx, "/staff/new", a.staffCreateView)
		case "select":
			a.withID(args, func(id int64) { a.selectPerson(id) })
		case "unselect":
			a.withID(args, func(id int64) { a.store.UnselectPerson(id) })
		case "selected":
			a.selectedView()
		case "theme":
			a.store.ToggleTheme()
			fmt.Fprintf(a.out, "dark theme: %v\n", a.store.Snapshot().DarkTheme)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "Unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (a *App) withID(args []string, fn func(int64)) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "An id argument is required.")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fn(id)
}

func (a *App) withTwoIDs(args []string, fn func(int64, int64)) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Two id arguments are required.")
		return
	}
	first, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	second, err := parseID(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	fn(first, second)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  login | logout | whoami
  people [page] [size]        list people (paged)
  search <query>              search people, with optional filters
  person <id>                 person details
  next | prev                 walk person details in id order
  person-new | person-edit <id> | person-delete <id>
  cars [page] [size]          list all vehicles
  person-cars <id>            vehicles of a person
  car-new <personId> | car-edit <personId> <carId> | car-delete <personId> <carId>
  addresses <personId> | residents <addressId>
  address-new <personId> | address-edit <personId> <addrId> | address-delete <personId> <addrId>
  crimes <personId> | crime-new <personId>
  crime-edit <personId> <crimeId> | crime-delete <personId> <crimeId>
  phones <personId> | phone-new <personId>
  phone-edit <personId> <phoneId> | phone-delete <personId> <phoneId>
  photos <personId> | photo-new <personId> | photo-delete <personId> <photoId>
  history                     your search history
  staff-new                   register a staff member (admin)
  select <id> | unselect <id> | selected
  theme                       toggle dark theme
  exit`)
}

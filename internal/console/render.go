package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/store"
)

// renderTable prints rows under a header, columns joined by two
// spaces. Plain and dumb on purpose; alignment is not worth the code
// in an internal tool.
func (a *App) renderTable(header []string, rows [][]string) {
	fmt.Fprintln(a.out, strings.Join(header, "  "))
	for _, row := range rows {
		fmt.Fprintln(a.out, strings.Join(row, "  "))
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "(empty)")
	}
}

// renderStatus prints the slice-level error block when a fetch failed.
// A full restart of the view (re-running the command) is the only
// recovery offered, matching the reload-the-page behavior.
func (a *App) renderStatus(st store.Status) bool {
	if st.Err != "" {
		fmt.Fprintf(a.out, "Error: %s\n(re-run the command to retry)\n", st.Err)
		return false
	}
	return true
}

// renderFieldError prints a conflict inline under its field name; any
// other failure falls back to the slice-level message.
func (a *App) renderFieldError(err error, sliceMsg string) {
	var ce *api.ConflictError
	if errors.As(err, &ce) && ce.Field != "" {
		fmt.Fprintf(a.out, "%s: %s\n", ce.Field, ce.Message)
		return
	}
	fmt.Fprintln(a.out, sliceMsg)
}

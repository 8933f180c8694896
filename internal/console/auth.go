package console

import (
	"context"
	"fmt"

	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

func (a *App) loginView(ctx context.Context) {
	email, err := promptLine(a.reader, a.out, "Email")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if err := a.store.Login(ctx, api.Credentials{Email: email, Password: password}); err != nil {
		st := a.store.Snapshot()
		fmt.Fprintln(a.out, st.Auth.Err)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.status())
}

// logout clears the in-memory session, removes the persisted session
// and person cache, and remounts the shell from scratch so nothing of
// the previous identity survives in memory.
func (a *App) logout(ctx context.Context) {
	a.store.Logout()
	if err := a.gate.ClearSession(ctx); err != nil {
		a.log.Warn(ctx, "clearing persisted session failed", "err", err)
	}
	if err := a.mount(ctx); err != nil {
		a.log.Error(ctx, "remounting shell failed", "err", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) staffCreateView(ctx context.Context) {
	nickname, err := promptLine(a.reader, a.out, "Nickname")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	email, err := promptLine(a.reader, a.out, "Email")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	// Uniqueness probe ahead of submission, mirroring the form's
	// check-email call on field blur.
	if taken, err := a.store.CheckEmail(ctx, email); err == nil && taken {
		fmt.Fprintln(a.out, "email: already registered")
		return
	}

	password, err := promptPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	roleStr, err := promptLine(a.reader, a.out, "Role (visitor/moderator/admin)")
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		fmt.Fprintf(a.out, "unknown role %q\n", roleStr)
		return
	}

	in := api.StaffInput{Nickname: nickname, Email: email, Password: password, Role: role}
	if err := a.store.RegisterStaff(ctx, in); err != nil {
		a.renderFieldError(err, a.store.Snapshot().Auth.Err)
		return
	}
	fmt.Fprintln(a.out, "Staff member registered.")
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

const fallbackUserLabel = "User"

// dashboardPage is the signed-in landing page. Unauthenticated visits are
// redirected to the login page. A banner queued by a fresh login is shown
// once and consumed. The page then waits for a logout or exit command.
func (a *App) dashboardPage(ctx context.Context) (Page, error) {
	authed, err := a.svc.IsAuthenticated(ctx)
	if err != nil {
		return pageNone, err
	}
	if !authed {
		return PageLogin, nil
	}

	msg := NewMessageArea(a.out, "dashboard-message")

	username, err := a.svc.StoredUsername(ctx)
	if err != nil {
		return pageNone, err
	}
	if username == "" {
		username = fallbackUserLabel
	}

	fmt.Fprintln(a.out, "== Dashboard ==")
	fmt.Fprintf(a.out, "Signed in as %s.\n", username)

	banner, err := a.svc.TakeLoginBanner(ctx)
	if err != nil {
		return pageNone, err
	}
	if banner != "" {
		msg.Show(banner, SeveritySuccess)
	}

	for {
		cmd, err := readLine(a.reader, "dashboard", a.out)
		if err != nil {
			return pageNone, err
		}

		switch strings.ToLower(cmd) {
		case "logout":
			if err := a.svc.Logout(ctx); err != nil {
				msg.Show(err.Error(), SeverityError)
				continue
			}
			return PageLogin, nil
		case "exit", "quit":
			return pageNone, nil
		case "":
			continue
		default:
			fmt.Fprintln(a.out, "Available commands: logout, exit")
		}
	}
}

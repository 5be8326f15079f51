// Package cli implements the interactive terminal pages of the auth client:
// signup, login with OTP verification, and the signed-in dashboard. Each page
// handler returns the page to show next; navigation is data, not a side
// effect, which keeps the handlers testable without a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Jaswanthh22/otpauth-cli/internal/client/api"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/config"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/services"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/session"
	"github.com/Jaswanthh22/otpauth-cli/internal/logging"
)

// Page identifies one of the client pages. The dispatcher only ever runs
// pages from this closed set; anything else stops the loop.
type Page string

const (
	PageSignup    Page = "signup"
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"

	// pageNone ends the page loop.
	pageNone Page = ""
)

// ParsePage maps a page identifier to a Page. ok is false for identifiers
// outside the known set.
func ParsePage(s string) (Page, bool) {
	switch Page(s) {
	case PageSignup, PageLogin, PageDashboard:
		return Page(s), true
	}
	return pageNone, false
}

// App wires the pages to the auth service and the terminal.
type App struct {
	cfg    *config.Config
	svc    services.AuthService
	store  session.Store
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp opens the session store, resolves the API base URL (exactly once;
// every request reuses it), and assembles the page handlers.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := session.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	baseURL := config.ResolveAPIBase(cfg)
	log.Info(ctx, "api base resolved", "url", baseURL)

	svc := services.NewAuthService(api.NewHTTPClient(baseURL), store)

	return &App{
		cfg:    cfg,
		svc:    svc,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.store.Close()
}

// Run drives the page loop starting from start. Each handler returns the
// next page; a page outside the known set ends the loop. Input EOF (the
// user closing the terminal) is a normal exit.
func (a *App) Run(ctx context.Context, start Page) error {
	page := start
	for {
		var (
			next Page
			err  error
		)

		switch page {
		case PageSignup:
			next, err = a.signupPage(ctx)
		case PageLogin:
			next, err = a.loginPage(ctx)
		case PageDashboard:
			next, err = a.dashboardPage(ctx)
		default:
			return nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		page = next
	}
}

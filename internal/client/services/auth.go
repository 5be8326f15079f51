// Package services contains application services for the auth client.
// The auth service sits between the terminal pages and the outside world:
// it performs backend requests and updates the local session state, leaving
// all rendering to the caller.
package services

import (
	"context"

	"github.com/Jaswanthh22/otpauth-cli/internal/client/api"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/session"
)

// loginBannerText is queued after a successful OTP verification and shown
// once by the next dashboard view.
const loginBannerText = "You successfully logged in."

// AuthService defines the auth operations the pages drive.
//
// Contract:
//   - SignUp: create an account on the backend; no local state change.
//   - BeginLogin: check credentials; returns the masked email hint the
//     backend sent the OTP to (may be empty). No local state change.
//   - CompleteLogin: verify the OTP; on success queues the one-shot login
//     banner and persists the session.
//   - Logout: clears the persisted session and any leftover banner.
//   - IsAuthenticated / StoredUsername / TakeLoginBanner: session reads.
type AuthService interface {
	SignUp(ctx context.Context, username, email, password string) error
	BeginLogin(ctx context.Context, username, password string) (string, error)
	CompleteLogin(ctx context.Context, username, otp string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) (bool, error)
	StoredUsername(ctx context.Context) (string, error)
	TakeLoginBanner(ctx context.Context) (string, error)
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) SignUp(ctx context.Context, username, email, password string) error {
	return a.client.Signup(ctx, username, email, password)
}

func (a *authService) BeginLogin(ctx context.Context, username, password string) (string, error) {
	return a.client.Login(ctx, username, password)
}

func (a *authService) CompleteLogin(ctx context.Context, username, otp string) error {
	if err := a.client.Verify(ctx, username, otp); err != nil {
		return err
	}
	// Banner first: a session must never exist without its banner queued.
	if err := a.store.SetLoginBanner(ctx, loginBannerText); err != nil {
		return err
	}
	return a.store.SetSession(ctx, username)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return err
	}
	_, err := a.store.TakeLoginBanner(ctx)
	return err
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	return a.store.IsAuthenticated(ctx)
}

func (a *authService) StoredUsername(ctx context.Context) (string, error) {
	return a.store.StoredUsername(ctx)
}

func (a *authService) TakeLoginBanner(ctx context.Context) (string, error) {
	return a.store.TakeLoginBanner(ctx)
}

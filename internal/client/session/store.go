// Package session persists the client-side authentication state: a durable
// "logged in" flag plus username that survive restarts, and a transient
// one-shot login banner that is dropped when a new program run begins.
package session

import "context"

// Storage keys. The flag and the username are always written and removed
// together, so an authenticated state always has a username to display.
const (
	authFlagKey    = "auth:isAuthenticated"
	authUserKey    = "auth:username"
	loginBannerKey = "auth:login-success"
)

// Storage scopes. Durable entries survive program runs; transient entries
// are wiped on Open.
const (
	scopeDurable   = "durable"
	scopeTransient = "transient"
)

// Store holds the client-side session state.
//
// Contract:
//   - IsAuthenticated: true iff the stored flag is exactly "true".
//   - SetSession: atomically records the flag and the username.
//   - ClearSession: atomically removes both; idempotent.
//   - StoredUsername: the stored username, or "" when absent.
//   - SetLoginBanner / TakeLoginBanner: queue and consume the one-shot
//     post-login banner; Take deletes the entry it returns.
type Store interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	SetSession(ctx context.Context, username string) error
	ClearSession(ctx context.Context) error
	StoredUsername(ctx context.Context) (string, error)
	SetLoginBanner(ctx context.Context, text string) error
	TakeLoginBanner(ctx context.Context) (string, error)
	Close() error
}

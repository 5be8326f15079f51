// Package api implements the JSON HTTP client for the auth backend:
// account creation, password login, and OTP verification.
package api

import "context"

// Client is the surface the auth flows need from the backend API.
//
// Contract:
//   - Signup: create a new account.
//   - Login: check credentials and trigger an OTP email; returns a masked
//     hint of the address the code was sent to (may be empty).
//   - Verify: confirm the OTP for a username whose credentials were accepted.
//
// All methods must honor context cancellation/timeouts. Server-side
// rejections are returned as *APIError; transport or decoding failures are
// returned unchanged.
type Client interface {
	Signup(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, username, otp string) error
}

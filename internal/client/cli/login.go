package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jaswanthh22/otpauth-cli/internal/common"
)

const (
	loginValidationMsg = "Please enter username and password."
	otpValidationMsg   = "Enter the 6-digit OTP."
	otpSequenceMsg     = "Please request a new OTP by logging in first."

	// Shown in place of a masked address when the backend omits the hint.
	defaultEmailHint = "your email address on file"
)

type loginState int

const (
	stateIdle loginState = iota
	stateAwaitingOtp
	stateVerified
)

// loginFlow is the two-step login state machine: Idle -> AwaitingOtp ->
// Verified. The pending username is only ever set while awaiting an OTP, so
// a verify submission can never reuse an identity from a failed or stale
// login attempt.
type loginFlow struct {
	svc             authCaller
	state           loginState
	pendingUsername string
}

// authCaller is the slice of the auth service the flow needs.
type authCaller interface {
	BeginLogin(ctx context.Context, username, password string) (string, error)
	CompleteLogin(ctx context.Context, username, otp string) error
}

func newLoginFlow(svc authCaller) *loginFlow {
	return &loginFlow{svc: svc}
}

// SubmitCredentials handles the first step. Any prior pending username is
// dropped before anything else happens. On success the flow moves to
// AwaitingOtp and the backend's email hint is returned (may be empty).
// Validation and backend failures leave the flow in Idle.
func (f *loginFlow) SubmitCredentials(ctx context.Context, username, password string) (string, error) {
	f.state = stateIdle
	f.pendingUsername = ""

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", errors.New(loginValidationMsg)
	}

	hint, err := f.svc.BeginLogin(ctx, username, password)
	if err != nil {
		return "", err
	}

	f.state = stateAwaitingOtp
	f.pendingUsername = username
	return hint, nil
}

// SubmitOTP handles the second step. Without a prior accepted login in this
// flow there is nothing to verify against, so the user is told to log in
// first and no request is made. A failed verification keeps the flow in
// AwaitingOtp with the pending username intact, allowing a retry.
func (f *loginFlow) SubmitOTP(ctx context.Context, otp string) error {
	if f.state != stateAwaitingOtp || f.pendingUsername == "" {
		return errors.New(otpSequenceMsg)
	}

	otp = strings.TrimSpace(otp)
	if otp == "" {
		return errors.New(otpValidationMsg)
	}

	if err := f.svc.CompleteLogin(ctx, f.pendingUsername, otp); err != nil {
		return err
	}

	f.state = stateVerified
	return nil
}

// loginPage runs the credentials step and, once the backend accepts them,
// the OTP step. A verified login lands on the dashboard; a rejected login
// reloads the page.
func (a *App) loginPage(ctx context.Context) (Page, error) {
	authed, err := a.svc.IsAuthenticated(ctx)
	if err != nil {
		return pageNone, err
	}
	if authed {
		return PageDashboard, nil
	}

	fmt.Fprintln(a.out, "== Log in ==")
	loginMsg := NewMessageArea(a.out, "login-message")
	otpMsg := NewMessageArea(a.out, "otp-message")

	flow := newLoginFlow(a.svc)

	username, err := readLine(a.reader, "Username", a.out)
	if err != nil {
		return pageNone, err
	}
	secret, err := readSecret(a.out)
	if err != nil {
		return pageNone, err
	}
	defer common.WipeByteArray(secret)

	loginMsg.Clear()
	otpMsg.Clear()

	hint, err := flow.SubmitCredentials(ctx, username, string(secret))
	if err != nil {
		loginMsg.Show(err.Error(), SeverityError)
		return PageLogin, nil
	}

	display := hint
	if display == "" {
		display = defaultEmailHint
	}
	loginMsg.Show(fmt.Sprintf("We sent a one-time code to %s.", display), SeveritySuccess)

	if hint != "" {
		fmt.Fprintf(a.out, "Enter the 6-digit code we emailed to %s.\n", hint)
	} else {
		fmt.Fprintln(a.out, "Enter the 6-digit code we emailed to your account.")
	}

	for {
		otp, err := readLine(a.reader, "OTP", a.out)
		if err != nil {
			return pageNone, err
		}
		otpMsg.Clear()

		if err := flow.SubmitOTP(ctx, otp); err != nil {
			otpMsg.Show(err.Error(), SeverityError)
			continue
		}
		return PageDashboard, nil
	}
}

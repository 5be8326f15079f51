package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jaswanthh22/otpauth-cli/internal/common"
)

const (
	signupValidationMsg = "Please provide username, email, and password."
	signupSuccessMsg    = "Account created. Check your email for the OTP after logging in."
)

// signupPage collects username, email and password, validates them locally,
// and creates the account through the backend. An already authenticated user
// is sent straight to the dashboard.
//
// Validation failures and backend rejections keep the user on the signup
// page; a created account moves on to the login page.
func (a *App) signupPage(ctx context.Context) (Page, error) {
	authed, err := a.svc.IsAuthenticated(ctx)
	if err != nil {
		return pageNone, err
	}
	if authed {
		return PageDashboard, nil
	}

	fmt.Fprintln(a.out, "== Sign up ==")
	msg := NewMessageArea(a.out, "signup-message")

	username, err := readLine(a.reader, "Username", a.out)
	if err != nil {
		return pageNone, err
	}
	email, err := readLine(a.reader, "Email", a.out)
	if err != nil {
		return pageNone, err
	}
	secret, err := readSecret(a.out)
	if err != nil {
		return pageNone, err
	}
	defer common.WipeByteArray(secret)

	msg.Clear()
	password := strings.TrimSpace(string(secret))

	if username == "" || email == "" || password == "" {
		msg.Show(signupValidationMsg, SeverityError)
		return PageSignup, nil
	}

	if err := a.svc.SignUp(ctx, username, email, password); err != nil {
		msg.Show(err.Error(), SeverityError)
		return PageSignup, nil
	}

	msg.Show(signupSuccessMsg, SeveritySuccess)
	return PageLogin, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
	"github.com/dmitrijs2005/learnhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// Login prompts for email and password and signs in. The optional argument
// is the route to land on afterwards. Success and failure are reported by
// the session controller's notifications.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.session.Login(ctx, email, string(password), optionalArg(args))
}

// Signup prompts for the account fields and creates the account.
func (a *App) Signup(ctx context.Context, _ []string) error {
	var data models.SignupData
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &data.FirstName},
		{"Enter last name", &data.LastName},
		{"Enter email", &data.Email},
		{"Enter phone (optional)", &data.Phone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	data.Password = string(password)

	return a.session.Signup(ctx, data)
}

// Google completes a federated login. The OAuth consent itself happens in a
// browser; the user pastes the resulting profile fields here.
func (a *App) Google(ctx context.Context, args []string) error {
	a.printf("Sign in with Google (client %s) and enter the returned profile.\n", a.config.GoogleClientID)

	var p models.GoogleProfile
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter Google ID", &p.GoogleID},
		{"Enter email", &p.Email},
		{"Enter first name", &p.FirstName},
		{"Enter last name", &p.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	return a.session.LoginWithGoogle(ctx, p, optionalArg(args))
}

// Forgot asks the server to send a password reset email.
func (a *App) Forgot(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	resp, err := a.api.Auth.ForgotPassword(ctx, email)
	if err != nil {
		return a.fail(err)
	}
	msg := resp.Message
	if msg == "" {
		msg = "If the address is registered, a reset link is on its way"
	}
	a.printf("[ok] %s\n", msg)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami(_ context.Context, _ []string) error {
	s := a.session.Snapshot()
	if !s.IsAuthenticated {
		a.printf("Not logged in\n")
		return nil
	}
	u := s.User
	a.printf("%s <%s>\n", u.FullName(), u.Email)
	a.printf("Role: %s  Points: %d  Streak: %d (best %d)\n", u.Role, u.TotalPoints, u.CurrentStreak, u.LongestStreak)
	return nil
}

// Refresh exchanges the current credential for a new one.
func (a *App) Refresh(ctx context.Context, _ []string) error {
	if err := a.session.Refresh(ctx); err != nil {
		return a.fail(fmt.Errorf("refresh session: %w", err))
	}
	a.printf("[ok] Session refreshed\n")
	return nil
}

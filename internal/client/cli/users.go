package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
	"github.com/dmitrijs2005/learnhub/internal/common"
)

// Leaderboard prints the global ranking, or a course ranking when a course
// id is given.
func (a *App) Leaderboard(ctx context.Context, args []string) error {
	var (
		entries []models.LeaderboardEntry
		err     error
	)
	if len(args) > 0 {
		courseID, perr := argID(args, 0, "course id")
		if perr != nil {
			return perr
		}
		entries, err = a.api.Leaderboard.Course(ctx, courseID)
	} else {
		entries, err = a.api.Leaderboard.Global(ctx)
	}
	if err != nil {
		return a.fail(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPOINTS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", e.Rank, e.Name, e.Points)
	}
	return tw.Flush()
}

func (a *App) Rank(ctx context.Context, args []string) error {
	courseID, err := argID(args, 0, "course id")
	if err != nil {
		return err
	}
	r, err := a.api.Leaderboard.MyRank(ctx, courseID)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Rank %d of %d with %d points\n", r.Rank, r.Total, r.Points)
	return nil
}

// Profile prints the profile; "profile edit" updates the name fields,
// keeping any left empty.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "edit" {
			return errUsage
		}
		return a.editProfile(ctx)
	}

	u, err := a.api.Users.Profile(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s <%s>\n", u.FullName(), u.Email)
	a.printf("Role: %s  Email verified: %t  Phone verified: %t\n", u.Role, u.EmailVerified, u.PhoneVerified)
	a.printf("Points: %d  Streak: %d (best %d)\n", u.TotalPoints, u.CurrentStreak, u.LongestStreak)
	return nil
}

func (a *App) editProfile(ctx context.Context) error {
	var update models.ProfileUpdate
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Enter first name (empty to keep)", &update.FirstName},
		{"Enter last name (empty to keep)", &update.LastName},
		{"Enter phone (empty to keep)", &update.Phone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = &v
		}
	}

	u, err := a.api.Users.UpdateProfile(ctx, update)
	if err != nil {
		return a.fail(err)
	}
	a.printf("[ok] Profile updated: %s\n", u.FullName())
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword(a.out, "Enter current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	resp, err := a.api.Users.ChangePassword(ctx, models.PasswordChange{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err != nil {
		return a.fail(err)
	}
	msg := resp.Message
	if msg == "" {
		msg = "Password changed"
	}
	a.printf("[ok] %s\n", msg)
	return nil
}

func (a *App) Badges(ctx context.Context, _ []string) error {
	badges, err := a.api.Users.Badges(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(badges) == 0 {
		a.printf("No badges yet\n")
		return nil
	}
	for _, b := range badges {
		a.printf("* %s: %s\n", b.Name, b.Description)
	}
	return nil
}

func (a *App) Enrollments(ctx context.Context, _ []string) error {
	list, err := a.api.Users.Enrollments(ctx)
	if err != nil {
		return a.fail(err)
	}
	for _, e := range list {
		a.printf("[%s] %d. %s %.0f%%\n", yesNo(e.Completed), e.CourseID, e.CourseTitle, e.ProgressPercent)
	}
	return nil
}

func (a *App) Payments(ctx context.Context, _ []string) error {
	history, err := a.api.Payments.History(ctx)
	if err != nil {
		return a.fail(err)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tCOURSE\tAMOUNT\tSTATUS")
	for _, p := range history {
		fmt.Fprintf(tw, "%s\t%d\t%d %s\t%s\n", p.OrderID, p.CourseID, p.Amount, p.Currency, p.Status)
	}
	return tw.Flush()
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
	"github.com/dmitrijs2005/learnhub/internal/client/session"
	"github.com/dmitrijs2005/learnhub/internal/common"
)

// Dashboard shows the signed-in user's progress. Anonymous users are sent
// to the login page; nothing is shown while the session is still resolving.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	s := a.session.Snapshot()
	if s.Loading {
		a.printf("Loading...\n")
		return nil
	}
	if !s.IsAuthenticated {
		a.router.Navigate(ctx, common.RouteLogin)
		return session.ErrNotAuthenticated
	}
	a.router.Navigate(ctx, common.RouteDashboard)

	stats, err := a.api.Users.Stats(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Welcome back, %s!\n", s.User.FullName())
	a.printf("Points: %d  Streak: %d (best %d)\n", stats.TotalPoints, stats.CurrentStreak, stats.LongestStreak)
	a.printf("Courses: %d enrolled, %d completed\n", stats.CoursesEnrolled, stats.CoursesCompleted)
	a.printf("Lessons completed: %d  Quizzes passed: %d  Badges: %d\n", stats.LessonsCompleted, stats.QuizzesPassed, stats.BadgesEarned)

	enrolled, err := a.api.Courses.Enrolled(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(enrolled) > 0 {
		a.printf("Continue learning:\n")
		a.printCourses(enrolled)
	}
	return nil
}

// Courses lists the catalogue; anonymous users see the public one.
func (a *App) Courses(ctx context.Context, _ []string) error {
	var (
		courses []models.Course
		err     error
	)
	if a.isLoggedIn() {
		courses, err = a.api.Courses.List(ctx)
	} else {
		courses, err = a.api.Courses.Public(ctx)
	}
	if err != nil {
		return a.fail(err)
	}
	if len(courses) == 0 {
		a.printf("No courses yet\n")
		return nil
	}
	a.printCourses(courses)
	return nil
}

func (a *App) printCourses(courses []models.Course) {
	for _, c := range courses {
		a.printf("[%s] %d. %s (%d lessons, %s)\n", yesNo(c.Enrolled), c.ID, c.Title, c.LessonCount, price(c.Price))
	}
}

func price(p float64) string {
	if p <= 0 {
		return "free"
	}
	return fmt.Sprintf("%.2f", p)
}

// Course prints one course and, for signed-in users, their progress in it.
func (a *App) Course(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "course id")
	if err != nil {
		return err
	}
	c, err := a.api.Courses.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s\n", c.Title)
	if c.Instructor != "" {
		a.printf("by %s\n", c.Instructor)
	}
	if c.Description != "" {
		a.printf("%s\n", c.Description)
	}
	a.printf("Level: %s  Lessons: %d  Price: %s\n", c.Level, c.LessonCount, price(c.Price))

	if !a.isLoggedIn() || !c.Enrolled {
		return nil
	}
	p, err := a.api.Courses.Progress(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Progress: %d/%d lessons (%.0f%%), %d points\n", p.CompletedLessons, p.TotalLessons, p.ProgressPercent, p.PointsEarned)
	return nil
}

// Enroll joins a course. Paid courses go through an order first; the
// provider's payment id and signature are entered by hand.
func (a *App) Enroll(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "course id")
	if err != nil {
		return err
	}
	c, err := a.api.Courses.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}

	var proof *models.EnrollRequest
	if c.Price > 0 {
		if proof, err = a.pay(ctx, c); err != nil {
			return err
		}
	}

	e, err := a.api.Courses.Enroll(ctx, id, proof)
	if err != nil {
		return a.fail(err)
	}
	a.printf("[ok] Enrolled in %s\n", c.Title)
	a.log.Info(ctx, "enrolled", "course_id", e.CourseID)
	return nil
}

func (a *App) pay(ctx context.Context, c *models.Course) (*models.EnrollRequest, error) {
	order, err := a.api.Payments.CreateOrder(ctx, c.ID)
	if err != nil {
		return nil, a.fail(err)
	}
	a.printf("Order %s: %d %s (key %s)\n", order.OrderID, order.Amount, order.Currency, a.config.RazorpayKeyID)

	paymentID, err := getSimpleText(a.reader, "Enter payment id", a.out)
	if err != nil {
		return nil, err
	}
	signature, err := getSimpleText(a.reader, "Enter payment signature", a.out)
	if err != nil {
		return nil, err
	}

	if _, err := a.api.Payments.Verify(ctx, models.PaymentVerification{
		OrderID:   order.OrderID,
		PaymentID: paymentID,
		Signature: signature,
		CourseID:  c.ID,
	}); err != nil {
		return nil, a.fail(err)
	}
	return &models.EnrollRequest{OrderID: order.OrderID, PaymentID: paymentID}, nil
}

func (a *App) Lessons(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "course id")
	if err != nil {
		return err
	}
	lessons, err := a.api.Courses.Lessons(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	for _, l := range lessons {
		quiz := ""
		if l.HasQuiz {
			quiz = " +quiz"
		}
		a.printf("[%s] %d. %s (%d pts%s)\n", yesNo(l.Completed), l.ID, l.Title, l.Points, quiz)
	}
	return nil
}

// Complete marks a lesson done and shows the points it earned.
func (a *App) Complete(ctx context.Context, args []string) error {
	courseID, err := argID(args, 0, "course id")
	if err != nil {
		return err
	}
	lessonID, err := argID(args, 1, "lesson id")
	if err != nil {
		return err
	}
	res, err := a.api.Courses.CompleteLesson(ctx, courseID, lessonID)
	if err != nil {
		return a.fail(err)
	}
	a.printf("[ok] +%d points (total %d, streak %d)\n", res.PointsAwarded, res.TotalPoints, res.CurrentStreak)
	return nil
}

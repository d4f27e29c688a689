package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

// nowFn is a test seam for the quiz clock.
var nowFn = time.Now

// Quiz runs the quiz of a lesson interactively. Proctored quizzes open a
// proctoring session for the duration of the attempt and report answers
// given after the time limit as violations.
func (a *App) Quiz(ctx context.Context, args []string) error {
	lessonID, err := argID(args, 0, "lesson id")
	if err != nil {
		return err
	}
	quiz, err := a.api.Quiz.Get(ctx, lessonID)
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s (%d questions, pass at %d)\n", quiz.Title, len(quiz.Questions), quiz.PassingScore)

	var proctor *models.ProctoringSession
	if quiz.Proctored {
		if proctor, err = a.api.Proctoring.Start(ctx, quiz.ID); err != nil {
			return a.fail(err)
		}
		defer func() {
			if _, err := a.api.Proctoring.End(ctx, proctor.ID); err != nil {
				a.log.Error(ctx, "ending proctoring session failed", "session_id", proctor.ID, "error", err)
			}
		}()
	}

	attempt, err := a.api.Quiz.StartAttempt(ctx, quiz.ID)
	if err != nil {
		return a.fail(err)
	}

	started := nowFn()
	var deadline time.Time
	if quiz.TimeLimitSec > 0 {
		deadline = started.Add(time.Duration(quiz.TimeLimitSec) * time.Second)
	}

	for i, q := range quiz.Questions {
		answer, err := a.askQuestion(i+1, q)
		if err != nil {
			return err
		}
		if proctor != nil && !deadline.IsZero() && nowFn().After(deadline) {
			a.reportViolation(ctx, proctor.ID, models.Violation{
				Type:        "time_limit_exceeded",
				Description: fmt.Sprintf("question %d answered after the %ds limit", q.ID, quiz.TimeLimitSec),
				Timestamp:   nowFn().UTC().Format(time.RFC3339),
			})
		}
		res, err := a.api.Quiz.SubmitAnswer(ctx, attempt.ID, q.ID, answer)
		if err != nil {
			return a.fail(err)
		}
		if res.Correct {
			a.printf("Correct! +%d\n", res.Points)
		} else {
			a.printf("Incorrect\n")
		}
	}

	done, err := a.api.Quiz.CompleteAttempt(ctx, attempt.ID)
	if err != nil {
		return a.fail(err)
	}
	verdict := "not passed"
	if done.Passed {
		verdict = "passed"
	}
	a.printf("Score: %d (%s)\n", done.Score, verdict)
	return nil
}

func (a *App) askQuestion(n int, q models.Question) (models.Answer, error) {
	if len(q.Options) == 0 {
		text, err := getSimpleText(a.reader, fmt.Sprintf("Q%d. %s", n, q.Text), a.out)
		if err != nil {
			return models.Answer{}, err
		}
		return models.Answer{AnswerText: text}, nil
	}

	a.printf("Q%d. %s\n", n, q.Text)
	for i, o := range q.Options {
		a.printf("  %d) %s\n", i+1, o.Text)
	}
	for {
		choice, err := getSimpleText(a.reader, "Choose an option", a.out)
		if err != nil {
			return models.Answer{}, err
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(q.Options) {
			a.printf("Enter a number between 1 and %d\n", len(q.Options))
			continue
		}
		id := q.Options[idx-1].ID
		return models.Answer{SelectedOptionID: &id}, nil
	}
}

func (a *App) reportViolation(ctx context.Context, sessionID int64, v models.Violation) {
	if err := a.api.Proctoring.ReportViolation(ctx, sessionID, v); err != nil {
		a.log.Error(ctx, "reporting violation failed", "session_id", sessionID, "error", err)
		return
	}
	a.log.Warn(ctx, "proctoring violation reported", "session_id", sessionID, "type", v.Type)
}

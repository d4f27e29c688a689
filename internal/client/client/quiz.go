package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type QuizAPI struct {
	c *HTTPClient
}

// Get returns the quiz attached to a lesson.
func (a *QuizAPI) Get(ctx context.Context, lessonID int64) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := a.c.get(ctx, fmt.Sprintf("/lessons/%d/quiz", lessonID), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (a *QuizAPI) StartAttempt(ctx context.Context, quizID int64) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	if err := a.c.post(ctx, fmt.Sprintf("/quizzes/%d/attempts", quizID), nil, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *QuizAPI) SubmitAnswer(ctx context.Context, attemptID, questionID int64, answer models.Answer) (*models.AnswerResult, error) {
	var result models.AnswerResult
	in := models.AnswerSubmission{QuestionID: questionID, Answer: answer}
	if err := a.c.post(ctx, fmt.Sprintf("/quiz-attempts/%d/answers", attemptID), in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *QuizAPI) CompleteAttempt(ctx context.Context, attemptID int64) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	if err := a.c.post(ctx, fmt.Sprintf("/quiz-attempts/%d/complete", attemptID), nil, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *QuizAPI) Attempts(ctx context.Context, quizID int64) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	if err := a.c.get(ctx, fmt.Sprintf("/quizzes/%d/attempts", quizID), &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a *QuizAPI) AttemptResults(ctx context.Context, attemptID int64) (*models.AttemptResults, error) {
	var results models.AttemptResults
	if err := a.c.get(ctx, fmt.Sprintf("/quiz-attempts/%d/results", attemptID), &results); err != nil {
		return nil, err
	}
	return &results, nil
}

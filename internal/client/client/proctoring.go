package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type ProctoringAPI struct {
	c *HTTPClient
}

func (a *ProctoringAPI) Start(ctx context.Context, quizID int64) (*models.ProctoringSession, error) {
	var session models.ProctoringSession
	if err := a.c.post(ctx, "/proctoring/start", models.StartProctoringRequest{QuizID: quizID}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *ProctoringAPI) End(ctx context.Context, sessionID int64) (*models.ProctoringSession, error) {
	var session models.ProctoringSession
	if err := a.c.post(ctx, fmt.Sprintf("/proctoring/%d/end", sessionID), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (a *ProctoringAPI) ReportViolation(ctx context.Context, sessionID int64, v models.Violation) error {
	return a.c.post(ctx, fmt.Sprintf("/proctoring/%d/violation", sessionID), v, nil)
}

package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type LeaderboardAPI struct {
	c *HTTPClient
}

func (a *LeaderboardAPI) Course(ctx context.Context, courseID int64) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d/leaderboard", courseID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *LeaderboardAPI) Global(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := a.c.get(ctx, "/leaderboard/global", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MyRank returns the current user's position in a course leaderboard.
func (a *LeaderboardAPI) MyRank(ctx context.Context, courseID int64) (*models.Rank, error) {
	var rank models.Rank
	if err := a.c.get(ctx, fmt.Sprintf("/courses/%d/leaderboard/my-rank", courseID), &rank); err != nil {
		return nil, err
	}
	return &rank, nil
}

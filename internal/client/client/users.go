package client

import (
	"context"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type UsersAPI struct {
	c *HTTPClient
}

func (a *UsersAPI) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.get(ctx, "/users/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UsersAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := a.c.put(ctx, "/users/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UsersAPI) ChangePassword(ctx context.Context, change models.PasswordChange) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := a.c.put(ctx, "/users/change-password", change, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *UsersAPI) Badges(ctx context.Context) ([]models.Badge, error) {
	var badges []models.Badge
	if err := a.c.get(ctx, "/users/badges", &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (a *UsersAPI) Stats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := a.c.get(ctx, "/users/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *UsersAPI) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := a.c.get(ctx, "/users/enrollments", &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

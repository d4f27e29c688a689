package client

import (
	"context"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type AuthAPI struct {
	c *HTTPClient
}

func (a *AuthAPI) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.post(ctx, "/auth/signup", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleAuth exchanges a Google profile for a LearnHub credential.
func (a *AuthAPI) GoogleAuth(ctx context.Context, profile models.GoogleProfile) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.post(ctx, "/auth/google", profile, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh trades token for a new credential. token is sent as the bearer
// regardless of what the store holds.
func (a *AuthAPI) Refresh(ctx context.Context, token string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.post(ctx, "/auth/refresh", struct{}{}, &resp, withBearer(token)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify asks the server whether token is still valid.
func (a *AuthAPI) Verify(ctx context.Context, token string) (*models.VerifyResponse, error) {
	var resp models.VerifyResponse
	if err := a.c.get(ctx, "/auth/verify-token", &resp, withBearer(token)); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := a.c.post(ctx, "/auth/forgot-password", models.ForgotPasswordRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

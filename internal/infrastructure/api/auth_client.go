// Package api holds the thin REST wrappers over the backend endpoints.
// One method per endpoint, no retries: a failed call surfaces immediately.
package api

import (
	"context"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/httpclient"
)

// AuthClient implements ports.AuthAPI. It is deliberately side-effect-free:
// Login returns the raw payload and persists nothing, so the client stays
// testable in isolation.
type AuthClient struct {
	http *httpclient.Client
}

func NewAuthClient(http *httpclient.Client) *AuthClient {
	return &AuthClient{http: http}
}

func (c *AuthClient) Login(ctx context.Context, creds domain.LoginRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.http.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) RegisterTourist(ctx context.Context, req domain.RegisterTouristRequest) (*domain.User, error) {
	var user domain.User
	if err := c.http.Post(ctx, "/auth/register/tourist", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AuthClient) RegisterEmployee(ctx context.Context, req domain.RegisterEmployeeRequest) (*domain.User, error) {
	var user domain.User
	if err := c.http.Post(ctx, "/auth/register/employee", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

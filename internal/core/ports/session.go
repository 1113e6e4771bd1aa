package ports

import (
	"context"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

// Session is the contract the rest of the application programs against:
// the in-memory authenticated user plus the operations that change it.
type Session interface {
	Login(ctx context.Context, creds domain.LoginRequest) (*domain.AuthResponse, error)
	RegisterTourist(ctx context.Context, req domain.RegisterTouristRequest) (*domain.User, error)
	RegisterEmployee(ctx context.Context, req domain.RegisterEmployeeRequest) (*domain.User, error)
	Logout()
	ExpireSession()

	CurrentUser() *domain.User
	IsAuthenticated() bool
	HasRole(role domain.Role) bool
	Loading() bool
	Err() string
}

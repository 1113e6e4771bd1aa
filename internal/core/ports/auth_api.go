package ports

import (
	"context"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

// AuthAPI wraps the three authentication endpoints. Implementations are
// stateless passthroughs: Login returns the raw payload and persists
// nothing — session persistence belongs to the session manager.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.LoginRequest) (*domain.AuthResponse, error)
	RegisterTourist(ctx context.Context, req domain.RegisterTouristRequest) (*domain.User, error)
	RegisterEmployee(ctx context.Context, req domain.RegisterEmployeeRequest) (*domain.User, error)
}

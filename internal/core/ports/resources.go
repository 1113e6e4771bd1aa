package ports

import (
	"context"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
)

// TouristAPI is the thin REST wrapper over /tourists.
type TouristAPI interface {
	Profile(ctx context.Context) (*domain.Tourist, error)
	List(ctx context.Context) ([]domain.Tourist, error)
	Get(ctx context.Context, id string) (*domain.Tourist, error)
	Create(ctx context.Context, req domain.CreateTouristRequest) (*domain.Tourist, error)
	Update(ctx context.Context, id string, req domain.UpdateTouristRequest) (*domain.Tourist, error)
	Delete(ctx context.Context, id string) error
}

// TravelAPI is the thin REST wrapper over /travels.
type TravelAPI interface {
	MyTravels(ctx context.Context) ([]domain.Travel, error)
	List(ctx context.Context) ([]domain.Travel, error)
	Get(ctx context.Context, id string) (*domain.Travel, error)
	Create(ctx context.Context, req domain.CreateTravelRequest) (*domain.Travel, error)
	Update(ctx context.Context, id string, req domain.UpdateTravelRequest) (*domain.Travel, error)
	Delete(ctx context.Context, id string) error
}

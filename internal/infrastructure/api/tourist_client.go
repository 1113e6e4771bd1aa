package api

import (
	"context"
	"net/url"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/httpclient"
)

// TouristClient implements ports.TouristAPI.
type TouristClient struct {
	http *httpclient.Client
}

func NewTouristClient(http *httpclient.Client) *TouristClient {
	return &TouristClient{http: http}
}

// Profile fetches the tourist profile bound to the current session.
func (c *TouristClient) Profile(ctx context.Context) (*domain.Tourist, error) {
	var t domain.Tourist
	if err := c.http.Get(ctx, "/tourists/profile", &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TouristClient) List(ctx context.Context) ([]domain.Tourist, error) {
	var ts []domain.Tourist
	if err := c.http.Get(ctx, "/tourists", &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *TouristClient) Get(ctx context.Context, id string) (*domain.Tourist, error) {
	var t domain.Tourist
	if err := c.http.Get(ctx, "/tourists/"+url.PathEscape(id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TouristClient) Create(ctx context.Context, req domain.CreateTouristRequest) (*domain.Tourist, error) {
	var t domain.Tourist
	if err := c.http.Post(ctx, "/tourists", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TouristClient) Update(ctx context.Context, id string, req domain.UpdateTouristRequest) (*domain.Tourist, error) {
	var t domain.Tourist
	if err := c.http.Patch(ctx, "/tourists/"+url.PathEscape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TouristClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, "/tourists/"+url.PathEscape(id))
}

package api

import (
	"context"
	"net/url"

	"github.com/mlakumulu/travel-admin/internal/core/domain"
	"github.com/mlakumulu/travel-admin/internal/infrastructure/httpclient"
)

// TravelClient implements ports.TravelAPI.
type TravelClient struct {
	http *httpclient.Client
}

func NewTravelClient(http *httpclient.Client) *TravelClient {
	return &TravelClient{http: http}
}

// MyTravels lists the travels belonging to the authenticated tourist.
func (c *TravelClient) MyTravels(ctx context.Context) ([]domain.Travel, error) {
	var ts []domain.Travel
	if err := c.http.Get(ctx, "/travels/my-travels", &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *TravelClient) List(ctx context.Context) ([]domain.Travel, error) {
	var ts []domain.Travel
	if err := c.http.Get(ctx, "/travels", &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (c *TravelClient) Get(ctx context.Context, id string) (*domain.Travel, error) {
	var t domain.Travel
	if err := c.http.Get(ctx, "/travels/"+url.PathEscape(id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TravelClient) Create(ctx context.Context, req domain.CreateTravelRequest) (*domain.Travel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var t domain.Travel
	if err := c.http.Post(ctx, "/travels", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TravelClient) Update(ctx context.Context, id string, req domain.UpdateTravelRequest) (*domain.Travel, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var t domain.Travel
	if err := c.http.Patch(ctx, "/travels/"+url.PathEscape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TravelClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, "/travels/"+url.PathEscape(id))
}

package client

import (
	"context"
	"fmt"
	"net/http"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
)

func (c *apiClient) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	var out []domain.Favorite
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) CreateFavorite(ctx context.Context, req *dto.CreateFavoriteRequest) (*domain.Favorite, error) {
	var out domain.Favorite
	if err := c.do(ctx, http.MethodPost, "/api/favorites", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) DeleteFavorite(ctx context.Context, favoriteID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", favoriteID), nil, nil)
}

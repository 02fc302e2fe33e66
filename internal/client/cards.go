package client

import (
	"context"
	"fmt"
	"net/http"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
)

func (c *apiClient) ListCards(ctx context.Context, sectionID int) (*dto.CardListResponse, error) {
	var out dto.CardListResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/card-sections/%d/cards", sectionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) CreateCard(ctx context.Context, sectionID int, req *dto.CreateCardRequest) (*domain.Card, error) {
	var out domain.Card
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/card-sections/%d/cards", sectionID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) UpdateCard(ctx context.Context, cardID int, req *dto.UpdateCardRequest) (*domain.Card, error) {
	var out domain.Card
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cards/%d", cardID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) DeleteCard(ctx context.Context, cardID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cards/%d", cardID), nil, nil)
}

func (c *apiClient) ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderCardsResponse, error) {
	var out dto.ReorderCardsResponse
	if err := c.do(ctx, http.MethodPut, "/api/cards/reorder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
)

func (c *apiClient) ListBoards(ctx context.Context) (*dto.BoardListResponse, error) {
	var out dto.BoardListResponse
	if err := c.do(ctx, http.MethodGet, "/api/boards", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) GetBoard(ctx context.Context, boardID int) (*domain.Board, error) {
	var out domain.Board
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/boards/%d", boardID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardEnvelope, error) {
	var out dto.BoardEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/boards", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) UpdateBoard(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) (*dto.BoardEnvelope, error) {
	var out dto.BoardEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/boards/%d", boardID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) DeleteBoard(ctx context.Context, boardID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/boards/%d", boardID), nil, nil)
}

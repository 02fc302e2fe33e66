package client

import (
	"context"
	"fmt"
	"net/http"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
)

func (c *apiClient) ListSections(ctx context.Context, boardID int) (*dto.SectionListResponse, error) {
	var out dto.SectionListResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/boards/%d/sections", boardID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) CreateSection(ctx context.Context, boardID int, req *dto.CreateSectionRequest) (*dto.SectionEnvelope, error) {
	var out dto.SectionEnvelope
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/boards/%d/sections", boardID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) UpdateSection(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) (*domain.Section, error) {
	var out domain.Section
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/card-sections/%d", sectionID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) DeleteSection(ctx context.Context, sectionID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/card-sections/%d", sectionID), nil, nil)
}

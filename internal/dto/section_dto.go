package dto

import "taskboard-client/internal/domain"

// SectionListResponse is the body of GET /api/boards/{id}/sections
type SectionListResponse struct {
	Sections []domain.Section `json:"sections"`
}

// SectionEnvelope wraps a single section in create responses
type SectionEnvelope struct {
	Section domain.Section `json:"section"`
}

// CreateSectionRequest is the body of POST /api/boards/{id}/sections
type CreateSectionRequest struct {
	Title string `json:"title"`
}

// UpdateSectionRequest is the body of PUT /api/card-sections/{id}
type UpdateSectionRequest struct {
	Title string `json:"title"`
}

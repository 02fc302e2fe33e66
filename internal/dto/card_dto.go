package dto

import "taskboard-client/internal/domain"

// CardListResponse is the body of GET /api/card-sections/{id}/cards
type CardListResponse struct {
	Cards []domain.Card `json:"cards"`
}

// CreateCardRequest is the body of POST /api/card-sections/{id}/cards
type CreateCardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Labels      string `json:"labels,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// UpdateCardRequest is the body of PUT /api/cards/{id}
type UpdateCardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Labels      string `json:"labels,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// ReorderCardsRequest is the body of PUT /api/cards/reorder
type ReorderCardsRequest struct {
	ReorderedCards []domain.CardPosition `json:"reorderedCards"`
}

// ReorderCardsResponse is the body returned by PUT /api/cards/reorder.
// Positions are decoded as bare (id, order, cardSectionId) triples; any
// other card fields the server echoes back are ignored.
type ReorderCardsResponse struct {
	Cards []domain.CardPosition `json:"cards"`
}

package dto

import "taskboard-client/internal/domain"

// BoardListResponse is the body of GET /api/boards
type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}

// BoardEnvelope wraps a single board in create/edit responses
type BoardEnvelope struct {
	Board domain.Board `json:"board"`
}

// CreateBoardRequest is the body of POST /api/boards
type CreateBoardRequest struct {
	Name string `json:"name"`
}

// UpdateBoardRequest is the body of PUT /api/boards/{id}
type UpdateBoardRequest struct {
	Name string `json:"name"`
}

package dto

// CreateFavoriteRequest is the body of POST /api/favorites
type CreateFavoriteRequest struct {
	BoardID int `json:"board_id"`
}

// MessageResponse carries the confirmation message of delete operations
type MessageResponse struct {
	Message string `json:"message"`
}

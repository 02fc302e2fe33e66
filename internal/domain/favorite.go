package domain

// Favorite marks a board as favorited by the current user. Board is a
// denormalized snapshot taken at favoriting time; it is not kept in sync
// with later board edits.
type Favorite struct {
	ID      int   `json:"id"`
	BoardID int   `json:"boardId"`
	Board   Board `json:"board"`
}

package domain

// Section represents a column of cards within a board
type Section struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	BoardID int    `json:"boardId"`
	// Cards is present only when the section arrives embedded in a board detail fetch
	Cards []Card `json:"cards,omitempty"`
}

package domain

// Board represents a task board belonging to a user
type Board struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	OwnerID int    `json:"ownerId"`
	// Sections is present only on a board detail fetch
	Sections []Section `json:"sections,omitempty"`
}

package domain

// Card represents a single task card within a section.
// Labels is a free-form comma-separated string and DueDate is an opaque
// server-formatted timestamp; the client stores both verbatim.
type Card struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Labels        string `json:"labels,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	Order         int    `json:"order"`
	CardSectionID int    `json:"cardSectionId"`
}

// CardPosition is one entry of a reorder batch: the card id plus its new
// display rank and owning section.
type CardPosition struct {
	ID            int `json:"id"`
	Order         int `json:"order"`
	CardSectionID int `json:"cardSectionId"`
}

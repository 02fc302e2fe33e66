package state

import "taskboard-client/internal/domain"

// Action is one state transition. Every action is routed to exactly one
// slice reducer; cross-entity consequences owned by a slice (clearing
// SingleBoard on a board delete) live inside that slice's reducer.
type Action interface {
	// Type names the transition for logging and metrics labels
	Type() string
}

// LoadBoards replaces board membership wholesale from a bulk fetch
type LoadBoards struct {
	Boards []domain.Board
}

// AddBoard upserts a single created board
type AddBoard struct {
	Board domain.Board
}

// UpdateBoard upserts a detail-fetched or edited board and makes it the
// current SingleBoard
type UpdateBoard struct {
	Board domain.Board
}

// RemoveBoard drops a server-confirmed deleted board
type RemoveBoard struct {
	ID int
}

// LoadSections replaces section membership wholesale from a bulk fetch
type LoadSections struct {
	Sections []domain.Section
}

// AddSection upserts a single created section
type AddSection struct {
	Section domain.Section
}

// UpdateSection upserts a single edited section
type UpdateSection struct {
	Section domain.Section
}

// RemoveSection drops a server-confirmed deleted section
type RemoveSection struct {
	ID int
}

// LoadCards replaces one section's card list wholesale and upserts
// every returned card into the cards map
type LoadCards struct {
	SectionID int
	Cards     []domain.Card
}

// AddCard upserts a single created card and appends it to its owning
// section's index list
type AddCard struct {
	Card domain.Card
}

// UpdateCard upserts a single edited card; index membership is untouched
type UpdateCard struct {
	Card domain.Card
}

// RemoveCard drops a server-confirmed deleted card from the cards map
// and from its recorded section's index list
type RemoveCard struct {
	ID int
}

// ReorderCards patches order and owning section on the cards map only;
// the per-section index lists are not authoritative afterwards
type ReorderCards struct {
	Positions []domain.CardPosition
}

// LoadFavorites replaces favorite membership wholesale from a bulk fetch
type LoadFavorites struct {
	Favorites []domain.Favorite
}

// AddFavorite upserts a single created favorite
type AddFavorite struct {
	Favorite domain.Favorite
}

// RemoveFavorite drops a server-confirmed deleted favorite
type RemoveFavorite struct {
	ID int
}

func (LoadBoards) Type() string    { return "boards/load" }
func (AddBoard) Type() string      { return "boards/add" }
func (UpdateBoard) Type() string   { return "boards/update" }
func (RemoveBoard) Type() string   { return "boards/remove" }
func (LoadSections) Type() string  { return "sections/load" }
func (AddSection) Type() string    { return "sections/add" }
func (UpdateSection) Type() string { return "sections/update" }
func (RemoveSection) Type() string { return "sections/remove" }
func (LoadCards) Type() string     { return "cards/load" }
func (AddCard) Type() string       { return "cards/add" }
func (UpdateCard) Type() string    { return "cards/update" }
func (RemoveCard) Type() string    { return "cards/remove" }
func (ReorderCards) Type() string  { return "cards/reorder" }
func (LoadFavorites) Type() string { return "favorites/load" }
func (AddFavorite) Type() string   { return "favorites/add" }
func (RemoveFavorite) Type() string { return "favorites/remove" }

// reduce routes an action to the slice reducer that owns it
func reduce(s State, a Action) State {
	switch a.(type) {
	case LoadBoards, AddBoard, UpdateBoard, RemoveBoard:
		s.Boards = reduceBoards(s.Boards, a)
	case LoadSections, AddSection, UpdateSection, RemoveSection:
		s.Sections = reduceSections(s.Sections, a)
	case LoadCards, AddCard, UpdateCard, RemoveCard, ReorderCards:
		s.Cards = reduceCards(s.Cards, a)
	case LoadFavorites, AddFavorite, RemoveFavorite:
		s.Favorites = reduceFavorites(s.Favorites, a)
	}
	return s
}

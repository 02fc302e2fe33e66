// Package state holds the normalized client-side caches for the task
// board domain: one keyed map per entity kind, the derived
// section-to-cards index, and the Store that serializes transitions
// over them. All transitions are copy-on-write, so a snapshot obtained
// from the Store is never mutated by later dispatches.
package state

import (
	"maps"
	"slices"

	"taskboard-client/internal/domain"
)

// State is the full state tree: one slice per entity kind
type State struct {
	Boards    BoardsState
	Sections  SectionsState
	Cards     CardsState
	Favorites FavoritesState
}

// BoardsState caches boards. AllBoards holds every board known from the
// last bulk fetch plus later point upserts. SingleBoard is the most
// recently detail-fetched or edited board; it is cleared when that same
// board is deleted and is otherwise independent of AllBoards.
type BoardsState struct {
	AllBoards   map[int]domain.Board
	SingleBoard *domain.Board
}

// SectionsState caches the sections of the most recently listed board
type SectionsState struct {
	BoardSections map[int]domain.Section
}

// CardsState caches cards plus the derived section-to-cards index.
//
// SectionCards is a convenience cache: it is authoritative after bulk
// loads, point inserts, and point removals, but a reorder patches only
// AllCards. Consumers that need correct membership or ordering after a
// reorder must recompute from AllCards (see CardsForSection) instead of
// trusting pre-reorder index lists.
type CardsState struct {
	AllCards     map[int]domain.Card
	SectionCards map[int][]domain.Card
}

// FavoritesState caches the current user's favorites
type FavoritesState struct {
	UserFavorites map[int]domain.Favorite
}

// CardsForSection recomputes a section's cards from AllCards, sorted by
// display order. This is the authoritative read after a reorder.
func (s CardsState) CardsForSection(sectionID int) []domain.Card {
	var cards []domain.Card
	for _, c := range s.AllCards {
		if c.CardSectionID == sectionID {
			cards = append(cards, c)
		}
	}
	slices.SortFunc(cards, func(a, b domain.Card) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return a.ID - b.ID
	})
	return cards
}

func newState() State {
	return State{
		Boards:    BoardsState{AllBoards: make(map[int]domain.Board)},
		Sections:  SectionsState{BoardSections: make(map[int]domain.Section)},
		Cards:     CardsState{AllCards: make(map[int]domain.Card), SectionCards: make(map[int][]domain.Card)},
		Favorites: FavoritesState{UserFavorites: make(map[int]domain.Favorite)},
	}
}

// cloneMap copies a map for copy-on-write updates, normalizing nil to
// an empty map so reducers can assign into the result.
func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	return maps.Clone(m)
}

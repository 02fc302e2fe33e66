package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-client/internal/domain"
)

func TestLoadCardsReplacesSectionListAndUpsertsMap(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{
		{ID: 1, Name: "A", Order: 0, CardSectionID: 5},
		{ID: 2, Name: "B", Order: 1, CardSectionID: 5},
	}})

	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{
		{ID: 3, Name: "C", Order: 0, CardSectionID: 5},
	}})

	cards := store.GetState().Cards
	require.Len(t, cards.SectionCards[5], 1)
	assert.Equal(t, 3, cards.SectionCards[5][0].ID)
	// the scoped bulk load replaces only the list; map entries from the
	// earlier load survive until an explicit remove
	assert.Contains(t, cards.AllCards, 1)
	assert.Contains(t, cards.AllCards, 2)
	assert.Contains(t, cards.AllCards, 3)
}

func TestAddCardCreatesMissingIndexKey(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(AddCard{Card: domain.Card{ID: 11, Name: "A", CardSectionID: 5}})

	cards := store.GetState().Cards
	require.Contains(t, cards.SectionCards, 5)
	require.Len(t, cards.SectionCards[5], 1)
	assert.Equal(t, 11, cards.SectionCards[5][0].ID)
	assert.Equal(t, "A", cards.AllCards[11].Name)
}

func TestAddCardAppendsToExistingList(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{{ID: 1, CardSectionID: 5}}})
	store.Dispatch(AddCard{Card: domain.Card{ID: 2, CardSectionID: 5}})

	list := store.GetState().Cards.SectionCards[5]
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[1].ID)
}

func TestUpdateCardLeavesIndexUntouched(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{{ID: 1, Name: "old", CardSectionID: 5}}})
	store.Dispatch(UpdateCard{Card: domain.Card{ID: 1, Name: "new", CardSectionID: 5}})

	cards := store.GetState().Cards
	assert.Equal(t, "new", cards.AllCards[1].Name)
	require.Len(t, cards.SectionCards[5], 1)
	assert.Equal(t, "old", cards.SectionCards[5][0].Name, "point edits do not rewrite index snapshots")
}

func TestRemoveCardDropsMapAndIndexEntry(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{
		{ID: 1, CardSectionID: 5},
		{ID: 2, CardSectionID: 5},
	}})

	store.Dispatch(RemoveCard{ID: 1})

	cards := store.GetState().Cards
	assert.NotContains(t, cards.AllCards, 1)
	require.Len(t, cards.SectionCards[5], 1)
	assert.Equal(t, 2, cards.SectionCards[5][0].ID)
}

func TestRemoveCardTwiceIsNoop(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 5, Cards: []domain.Card{{ID: 1, CardSectionID: 5}}})

	store.Dispatch(RemoveCard{ID: 1})
	store.Dispatch(RemoveCard{ID: 1})

	cards := store.GetState().Cards
	assert.Empty(t, cards.AllCards)
	assert.Empty(t, cards.SectionCards[5])
}

func TestRemoveCardWithoutIndexListStillDropsMapEntry(t *testing.T) {
	store := New(nil, nil)
	// card known only through the map, its section list was never loaded
	store.Dispatch(UpdateCard{Card: domain.Card{ID: 8, CardSectionID: 3}})

	store.Dispatch(RemoveCard{ID: 8})

	cards := store.GetState().Cards
	assert.NotContains(t, cards.AllCards, 8)
	assert.NotContains(t, cards.SectionCards, 3)
}

func TestReorderPatchesMapOnly(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(LoadCards{SectionID: 9, Cards: []domain.Card{
		{ID: 3, Name: "three", Order: 0, CardSectionID: 9},
		{ID: 7, Name: "seven", Order: 1, CardSectionID: 9},
	}})

	store.Dispatch(ReorderCards{Positions: []domain.CardPosition{
		{ID: 3, Order: 1, CardSectionID: 5},
		{ID: 7, Order: 0, CardSectionID: 5},
	}})

	cards := store.GetState().Cards
	assert.Equal(t, 5, cards.AllCards[3].CardSectionID)
	assert.Equal(t, 1, cards.AllCards[3].Order)
	assert.Equal(t, 5, cards.AllCards[7].CardSectionID)
	assert.Equal(t, 0, cards.AllCards[7].Order)
	assert.Equal(t, "three", cards.AllCards[3].Name, "reorder patches rank fields only")

	// the index still shows the pre-reorder section list
	require.Len(t, cards.SectionCards[9], 2)

	// the authoritative read recomputes from the map
	moved := cards.CardsForSection(5)
	require.Len(t, moved, 2)
	assert.Equal(t, 7, moved[0].ID)
	assert.Equal(t, 3, moved[1].ID)
	assert.Empty(t, cards.CardsForSection(9))
}

func TestReorderUnknownIDIsSkipped(t *testing.T) {
	store := New(nil, nil)
	store.Dispatch(AddCard{Card: domain.Card{ID: 1, Order: 0, CardSectionID: 2}})

	store.Dispatch(ReorderCards{Positions: []domain.CardPosition{
		{ID: 1, Order: 3, CardSectionID: 2},
		{ID: 42, Order: 0, CardSectionID: 2},
	}})

	cards := store.GetState().Cards
	assert.Equal(t, 3, cards.AllCards[1].Order)
	assert.NotContains(t, cards.AllCards, 42)
}

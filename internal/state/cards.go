package state

import (
	"slices"

	"taskboard-client/internal/domain"
)

func reduceCards(s CardsState, a Action) CardsState {
	switch a := a.(type) {
	case LoadCards:
		// Wholesale replacement of one section's list; every returned
		// card is also upserted into the cards map.
		all := cloneMap(s.AllCards)
		for _, c := range a.Cards {
			all[c.ID] = c
		}
		index := cloneMap(s.SectionCards)
		index[a.SectionID] = slices.Clone(a.Cards)
		return CardsState{AllCards: all, SectionCards: index}

	case AddCard:
		all := cloneMap(s.AllCards)
		all[a.Card.ID] = a.Card
		index := cloneMap(s.SectionCards)
		list := slices.Clone(index[a.Card.CardSectionID])
		index[a.Card.CardSectionID] = append(list, a.Card)
		return CardsState{AllCards: all, SectionCards: index}

	case UpdateCard:
		// Index membership is untouched on edits; only the map entry
		// is replaced.
		all := cloneMap(s.AllCards)
		all[a.Card.ID] = a.Card
		return CardsState{AllCards: all, SectionCards: s.SectionCards}

	case RemoveCard:
		card, ok := s.AllCards[a.ID]
		if !ok {
			return s
		}
		all := cloneMap(s.AllCards)
		delete(all, a.ID)
		index := cloneMap(s.SectionCards)
		if list, ok := index[card.CardSectionID]; ok {
			kept := make([]domain.Card, 0, len(list))
			for _, c := range list {
				if c.ID != a.ID {
					kept = append(kept, c)
				}
			}
			index[card.CardSectionID] = kept
		}
		return CardsState{AllCards: all, SectionCards: index}

	case ReorderCards:
		// Only the cards map is patched. The index lists keep their
		// pre-reorder contents; consumers recompute via CardsForSection.
		all := cloneMap(s.AllCards)
		for _, p := range a.Positions {
			if c, ok := all[p.ID]; ok {
				c.Order = p.Order
				c.CardSectionID = p.CardSectionID
				all[p.ID] = c
			}
		}
		return CardsState{AllCards: all, SectionCards: s.SectionCards}
	}
	return s
}

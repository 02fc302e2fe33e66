package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
	"taskboard-client/internal/response"
	"taskboard-client/internal/state"
)

func newSectionFixture(api *MockAPIClient) (SectionService, *state.Store) {
	store := state.New(nil, nil)
	return NewSectionService(api, store, zap.NewNop()), store
}

func TestFetchBoardSectionsLoadsStore(t *testing.T) {
	svc, store := newSectionFixture(&MockAPIClient{
		ListSectionsFunc: func(ctx context.Context, boardID int) (*dto.SectionListResponse, error) {
			return &dto.SectionListResponse{Sections: []domain.Section{
				{ID: 1, Title: "Todo", BoardID: boardID},
				{ID: 2, Title: "Done", BoardID: boardID},
			}}, nil
		},
	})

	res := svc.FetchBoardSections(context.Background(), 3)

	require.True(t, res.IsOk())
	assert.Len(t, store.GetState().Sections.BoardSections, 2)
}

func TestCreateSectionUpserts(t *testing.T) {
	svc, store := newSectionFixture(&MockAPIClient{
		CreateSectionFunc: func(ctx context.Context, boardID int, req *dto.CreateSectionRequest) (*dto.SectionEnvelope, error) {
			return &dto.SectionEnvelope{Section: domain.Section{ID: 8, Title: req.Title, BoardID: boardID}}, nil
		},
	})

	res := svc.CreateSection(context.Background(), 3, &dto.CreateSectionRequest{Title: "Doing"})

	require.True(t, res.IsOk())
	assert.Equal(t, "Doing", store.GetState().Sections.BoardSections[8].Title)
}

func TestEditSectionDomainErrorLeavesStoreUntouched(t *testing.T) {
	svc, store := newSectionFixture(&MockAPIClient{
		UpdateSectionFunc: func(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) (*domain.Section, error) {
			return nil, &response.APIError{Message: "Forbidden"}
		},
	})
	store.Dispatch(state.AddSection{Section: domain.Section{ID: 8, Title: "before"}})

	res := svc.EditSection(context.Background(), 8, &dto.UpdateSectionRequest{Title: "after"})

	require.False(t, res.IsOk())
	assert.Equal(t, "Forbidden", res.Err().Message)
	assert.Equal(t, "before", store.GetState().Sections.BoardSections[8].Title)
}

func TestDeleteSectionLeavesCardsResident(t *testing.T) {
	svc, store := newSectionFixture(&MockAPIClient{})
	store.Dispatch(state.AddSection{Section: domain.Section{ID: 8}})
	store.Dispatch(state.AddCard{Card: domain.Card{ID: 1, CardSectionID: 8}})

	res := svc.DeleteSection(context.Background(), 8)

	require.True(t, res.IsOk())
	s := store.GetState()
	assert.NotContains(t, s.Sections.BoardSections, 8)
	assert.Contains(t, s.Cards.AllCards, 1)
}

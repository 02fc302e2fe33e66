package service

import (
	"context"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
)

// MockAPIClient is a mock implementation of client.APIClient
type MockAPIClient struct {
	ListBoardsFunc     func(ctx context.Context) (*dto.BoardListResponse, error)
	GetBoardFunc       func(ctx context.Context, boardID int) (*domain.Board, error)
	CreateBoardFunc    func(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardEnvelope, error)
	UpdateBoardFunc    func(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) (*dto.BoardEnvelope, error)
	DeleteBoardFunc    func(ctx context.Context, boardID int) error
	ListSectionsFunc   func(ctx context.Context, boardID int) (*dto.SectionListResponse, error)
	CreateSectionFunc  func(ctx context.Context, boardID int, req *dto.CreateSectionRequest) (*dto.SectionEnvelope, error)
	UpdateSectionFunc  func(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) (*domain.Section, error)
	DeleteSectionFunc  func(ctx context.Context, sectionID int) error
	ListCardsFunc      func(ctx context.Context, sectionID int) (*dto.CardListResponse, error)
	CreateCardFunc     func(ctx context.Context, sectionID int, req *dto.CreateCardRequest) (*domain.Card, error)
	UpdateCardFunc     func(ctx context.Context, cardID int, req *dto.UpdateCardRequest) (*domain.Card, error)
	DeleteCardFunc     func(ctx context.Context, cardID int) error
	ReorderCardsFunc   func(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderCardsResponse, error)
	ListFavoritesFunc  func(ctx context.Context) ([]domain.Favorite, error)
	CreateFavoriteFunc func(ctx context.Context, req *dto.CreateFavoriteRequest) (*domain.Favorite, error)
	DeleteFavoriteFunc func(ctx context.Context, favoriteID int) error
}

func (m *MockAPIClient) ListBoards(ctx context.Context) (*dto.BoardListResponse, error) {
	if m.ListBoardsFunc != nil {
		return m.ListBoardsFunc(ctx)
	}
	return &dto.BoardListResponse{}, nil
}

func (m *MockAPIClient) GetBoard(ctx context.Context, boardID int) (*domain.Board, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return &domain.Board{ID: boardID}, nil
}

func (m *MockAPIClient) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardEnvelope, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return &dto.BoardEnvelope{}, nil
}

func (m *MockAPIClient) UpdateBoard(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) (*dto.BoardEnvelope, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return &dto.BoardEnvelope{}, nil
}

func (m *MockAPIClient) DeleteBoard(ctx context.Context, boardID int) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return nil
}

func (m *MockAPIClient) ListSections(ctx context.Context, boardID int) (*dto.SectionListResponse, error) {
	if m.ListSectionsFunc != nil {
		return m.ListSectionsFunc(ctx, boardID)
	}
	return &dto.SectionListResponse{}, nil
}

func (m *MockAPIClient) CreateSection(ctx context.Context, boardID int, req *dto.CreateSectionRequest) (*dto.SectionEnvelope, error) {
	if m.CreateSectionFunc != nil {
		return m.CreateSectionFunc(ctx, boardID, req)
	}
	return &dto.SectionEnvelope{}, nil
}

func (m *MockAPIClient) UpdateSection(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) (*domain.Section, error) {
	if m.UpdateSectionFunc != nil {
		return m.UpdateSectionFunc(ctx, sectionID, req)
	}
	return &domain.Section{ID: sectionID}, nil
}

func (m *MockAPIClient) DeleteSection(ctx context.Context, sectionID int) error {
	if m.DeleteSectionFunc != nil {
		return m.DeleteSectionFunc(ctx, sectionID)
	}
	return nil
}

func (m *MockAPIClient) ListCards(ctx context.Context, sectionID int) (*dto.CardListResponse, error) {
	if m.ListCardsFunc != nil {
		return m.ListCardsFunc(ctx, sectionID)
	}
	return &dto.CardListResponse{}, nil
}

func (m *MockAPIClient) CreateCard(ctx context.Context, sectionID int, req *dto.CreateCardRequest) (*domain.Card, error) {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, sectionID, req)
	}
	return &domain.Card{}, nil
}

func (m *MockAPIClient) UpdateCard(ctx context.Context, cardID int, req *dto.UpdateCardRequest) (*domain.Card, error) {
	if m.UpdateCardFunc != nil {
		return m.UpdateCardFunc(ctx, cardID, req)
	}
	return &domain.Card{ID: cardID}, nil
}

func (m *MockAPIClient) DeleteCard(ctx context.Context, cardID int) error {
	if m.DeleteCardFunc != nil {
		return m.DeleteCardFunc(ctx, cardID)
	}
	return nil
}

func (m *MockAPIClient) ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderCardsResponse, error) {
	if m.ReorderCardsFunc != nil {
		return m.ReorderCardsFunc(ctx, req)
	}
	return &dto.ReorderCardsResponse{Cards: req.ReorderedCards}, nil
}

func (m *MockAPIClient) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	if m.ListFavoritesFunc != nil {
		return m.ListFavoritesFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateFavorite(ctx context.Context, req *dto.CreateFavoriteRequest) (*domain.Favorite, error) {
	if m.CreateFavoriteFunc != nil {
		return m.CreateFavoriteFunc(ctx, req)
	}
	return &domain.Favorite{BoardID: req.BoardID}, nil
}

func (m *MockAPIClient) DeleteFavorite(ctx context.Context, favoriteID int) error {
	if m.DeleteFavoriteFunc != nil {
		return m.DeleteFavoriteFunc(ctx, favoriteID)
	}
	return nil
}

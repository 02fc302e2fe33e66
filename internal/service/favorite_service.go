package service

import (
	"context"

	"go.uber.org/zap"

	"taskboard-client/internal/client"
	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
	"taskboard-client/internal/response"
	"taskboard-client/internal/state"
)

// FavoriteService is the mutation pipeline for favorites
type FavoriteService interface {
	FetchFavorites(ctx context.Context) response.Result[[]domain.Favorite]
	CreateFavorite(ctx context.Context, boardID int) response.Result[domain.Favorite]
	DeleteFavorite(ctx context.Context, favoriteID int) response.Result[dto.MessageResponse]
}

// favoriteServiceImpl is the implementation of FavoriteService
type favoriteServiceImpl struct {
	api    client.APIClient
	store  *state.Store
	logger *zap.Logger
}

// NewFavoriteService creates a new instance of FavoriteService
func NewFavoriteService(api client.APIClient, store *state.Store, logger *zap.Logger) FavoriteService {
	return &favoriteServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

func (s *favoriteServiceImpl) FetchFavorites(ctx context.Context) response.Result[[]domain.Favorite] {
	favorites, err := s.api.ListFavorites(ctx)
	if err != nil {
		return fail[[]domain.Favorite](s.logger, err, "Failed to fetch favorites")
	}
	s.store.Dispatch(state.LoadFavorites{Favorites: favorites})
	return response.Ok(favorites)
}

// CreateFavorite favorites a board; the returned favorite embeds a
// board snapshot taken at favoriting time
func (s *favoriteServiceImpl) CreateFavorite(ctx context.Context, boardID int) response.Result[domain.Favorite] {
	favorite, err := s.api.CreateFavorite(ctx, &dto.CreateFavoriteRequest{BoardID: boardID})
	if err != nil {
		return fail[domain.Favorite](s.logger, err, "Failed to add favorite")
	}
	s.store.Dispatch(state.AddFavorite{Favorite: *favorite})
	return response.Ok(*favorite)
}

func (s *favoriteServiceImpl) DeleteFavorite(ctx context.Context, favoriteID int) response.Result[dto.MessageResponse] {
	if err := s.api.DeleteFavorite(ctx, favoriteID); err != nil {
		return fail[dto.MessageResponse](s.logger, err, "Failed to remove favorite")
	}
	s.store.Dispatch(state.RemoveFavorite{ID: favoriteID})
	return response.Ok(dto.MessageResponse{Message: "Favorite removed successfully"})
}

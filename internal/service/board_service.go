package service

import (
	"context"

	"go.uber.org/zap"

	"taskboard-client/internal/client"
	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
	"taskboard-client/internal/metrics"
	"taskboard-client/internal/response"
	"taskboard-client/internal/state"
)

// BoardService is the mutation pipeline for boards
type BoardService interface {
	FetchBoards(ctx context.Context) response.Result[[]domain.Board]
	FetchBoardDetail(ctx context.Context, boardID int) response.Result[domain.Board]
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) response.Result[domain.Board]
	EditBoard(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) response.Result[domain.Board]
	DeleteBoard(ctx context.Context, boardID int) response.Result[dto.MessageResponse]
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	api     client.APIClient
	store   *state.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(api client.APIClient, store *state.Store, m *metrics.Metrics, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		api:     api,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// FetchBoards bulk-loads the board list; the fetched membership is
// authoritative and replaces the boards cache wholesale
func (s *boardServiceImpl) FetchBoards(ctx context.Context) response.Result[[]domain.Board] {
	res, err := s.api.ListBoards(ctx)
	if err != nil {
		return fail[[]domain.Board](s.logger, err, "Failed to fetch boards")
	}
	s.store.Dispatch(state.LoadBoards{Boards: res.Boards})
	return response.Ok(res.Boards)
}

// FetchBoardDetail fetches one board with nested sections and cards,
// upserts it into the boards cache, and makes it the current
// SingleBoard
func (s *boardServiceImpl) FetchBoardDetail(ctx context.Context, boardID int) response.Result[domain.Board] {
	board, err := s.api.GetBoard(ctx, boardID)
	if err != nil {
		return fail[domain.Board](s.logger, err, "Failed to fetch board details")
	}
	s.store.Dispatch(state.UpdateBoard{Board: *board})
	return response.Ok(*board)
}

func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) response.Result[domain.Board] {
	env, err := s.api.CreateBoard(ctx, req)
	if err != nil {
		return fail[domain.Board](s.logger, err, "Failed to create board")
	}
	s.store.Dispatch(state.AddBoard{Board: env.Board})
	if s.metrics != nil {
		s.metrics.BoardsCreatedTotal.Inc()
	}
	return response.Ok(env.Board)
}

// EditBoard applies a server-confirmed edit; the edited board also
// becomes the current SingleBoard
func (s *boardServiceImpl) EditBoard(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) response.Result[domain.Board] {
	env, err := s.api.UpdateBoard(ctx, boardID, req)
	if err != nil {
		return fail[domain.Board](s.logger, err, "Failed to update board")
	}
	s.store.Dispatch(state.UpdateBoard{Board: env.Board})
	return response.Ok(env.Board)
}

// DeleteBoard removes the board from the boards cache and clears
// SingleBoard when it was the deleted board. Dependent sections and
// cards are not cascaded locally; the server owns the cascade and the
// caches recover on the next fetch.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID int) response.Result[dto.MessageResponse] {
	if err := s.api.DeleteBoard(ctx, boardID); err != nil {
		return fail[dto.MessageResponse](s.logger, err, "Failed to delete board")
	}
	s.store.Dispatch(state.RemoveBoard{ID: boardID})
	return response.Ok(dto.MessageResponse{Message: "Board deleted successfully"})
}

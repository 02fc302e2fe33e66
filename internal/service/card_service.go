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

// CardService is the mutation pipeline for cards
type CardService interface {
	FetchSectionCards(ctx context.Context, sectionID int) response.Result[[]domain.Card]
	CreateCard(ctx context.Context, sectionID int, req *dto.CreateCardRequest) response.Result[domain.Card]
	EditCard(ctx context.Context, cardID int, req *dto.UpdateCardRequest) response.Result[domain.Card]
	DeleteCard(ctx context.Context, cardID int) response.Result[dto.MessageResponse]
	ReorderCards(ctx context.Context, positions []domain.CardPosition) response.Result[[]domain.CardPosition]
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	api     client.APIClient
	store   *state.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(api client.APIClient, store *state.Store, m *metrics.Metrics, logger *zap.Logger) CardService {
	return &cardServiceImpl{
		api:     api,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// FetchSectionCards bulk-loads one section's cards: the section's index
// list is replaced wholesale and every returned card is upserted into
// the cards map
func (s *cardServiceImpl) FetchSectionCards(ctx context.Context, sectionID int) response.Result[[]domain.Card] {
	res, err := s.api.ListCards(ctx, sectionID)
	if err != nil {
		return fail[[]domain.Card](s.logger, err, "Failed to fetch cards")
	}
	s.store.Dispatch(state.LoadCards{SectionID: sectionID, Cards: res.Cards})
	return response.Ok(res.Cards)
}

func (s *cardServiceImpl) CreateCard(ctx context.Context, sectionID int, req *dto.CreateCardRequest) response.Result[domain.Card] {
	card, err := s.api.CreateCard(ctx, sectionID, req)
	if err != nil {
		return fail[domain.Card](s.logger, err, "Failed to create card")
	}
	s.store.Dispatch(state.AddCard{Card: *card})
	if s.metrics != nil {
		s.metrics.CardsCreatedTotal.Inc()
	}
	return response.Ok(*card)
}

func (s *cardServiceImpl) EditCard(ctx context.Context, cardID int, req *dto.UpdateCardRequest) response.Result[domain.Card] {
	card, err := s.api.UpdateCard(ctx, cardID, req)
	if err != nil {
		return fail[domain.Card](s.logger, err, "Failed to update card")
	}
	s.store.Dispatch(state.UpdateCard{Card: *card})
	return response.Ok(*card)
}

func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID int) response.Result[dto.MessageResponse] {
	if err := s.api.DeleteCard(ctx, cardID); err != nil {
		return fail[dto.MessageResponse](s.logger, err, "Failed to delete card")
	}
	s.store.Dispatch(state.RemoveCard{ID: cardID})
	return response.Ok(dto.MessageResponse{Message: "Card deleted successfully"})
}

// ReorderCards applies one reorder batch. The server-confirmed
// positions are patched onto the cards map only; per-section index
// lists are stale afterwards and consumers must recompute from the map.
// Applying the same batch twice yields the same state.
func (s *cardServiceImpl) ReorderCards(ctx context.Context, positions []domain.CardPosition) response.Result[[]domain.CardPosition] {
	res, err := s.api.ReorderCards(ctx, &dto.ReorderCardsRequest{ReorderedCards: positions})
	if err != nil {
		return fail[[]domain.CardPosition](s.logger, err, "Failed to reorder cards")
	}
	s.store.Dispatch(state.ReorderCards{Positions: res.Cards})
	if s.metrics != nil {
		s.metrics.CardsReorderedTotal.Add(float64(len(res.Cards)))
	}
	return response.Ok(res.Cards)
}

// Package service implements the mutation pipeline: each operation
// issues exactly one request through the API client, applies exactly
// one state transition on success, and returns a tagged Result. Failed
// operations never partially apply - the store is untouched on every
// failure path.
package service

import (
	"errors"

	"go.uber.org/zap"

	"taskboard-client/internal/client"
	"taskboard-client/internal/metrics"
	"taskboard-client/internal/response"
	"taskboard-client/internal/state"
)

// Services bundles the four mutation pipelines over one client and one
// store. Construct once per application instance and pass by reference.
type Services struct {
	Boards    BoardService
	Sections  SectionService
	Cards     CardService
	Favorites FavoriteService
}

// NewServices creates all pipeline services over a shared API client
// and store
func NewServices(api client.APIClient, store *state.Store, m *metrics.Metrics, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Services{
		Boards:    NewBoardService(api, store, m, logger),
		Sections:  NewSectionService(api, store, logger),
		Cards:     NewCardService(api, store, m, logger),
		Favorites: NewFavoriteService(api, store, logger),
	}
}

// fail converts any pipeline failure into the single Result error
// shape: a decoded API error body is surfaced verbatim, while transport
// and decode faults collapse into the operation's fixed fallback
// message.
func fail[T any](logger *zap.Logger, err error, fallback string) response.Result[T] {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		return response.Fail[T](apiErr)
	}
	logger.Error("Pipeline operation failed at transport level",
		zap.String("fallback", fallback),
		zap.Error(err),
	)
	return response.Failf[T](fallback)
}

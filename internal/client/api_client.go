package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
	"taskboard-client/internal/metrics"
	"taskboard-client/internal/response"
)

// APIClient is the HTTP surface of the remote task board API. Every
// method issues exactly one request with no retries. A non-2xx response
// with a decodable error body is returned as a *response.APIError;
// anything else (network failure, malformed body) is returned as a
// plain wrapped error. Callers distinguish the two with errors.As.
type APIClient interface {
	ListBoards(ctx context.Context) (*dto.BoardListResponse, error)
	GetBoard(ctx context.Context, boardID int) (*domain.Board, error)
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardEnvelope, error)
	UpdateBoard(ctx context.Context, boardID int, req *dto.UpdateBoardRequest) (*dto.BoardEnvelope, error)
	DeleteBoard(ctx context.Context, boardID int) error

	ListSections(ctx context.Context, boardID int) (*dto.SectionListResponse, error)
	CreateSection(ctx context.Context, boardID int, req *dto.CreateSectionRequest) (*dto.SectionEnvelope, error)
	UpdateSection(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) (*domain.Section, error)
	DeleteSection(ctx context.Context, sectionID int) error

	ListCards(ctx context.Context, sectionID int) (*dto.CardListResponse, error)
	CreateCard(ctx context.Context, sectionID int, req *dto.CreateCardRequest) (*domain.Card, error)
	UpdateCard(ctx context.Context, cardID int, req *dto.UpdateCardRequest) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID int) error
	ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderCardsResponse, error)

	ListFavorites(ctx context.Context) ([]domain.Favorite, error)
	CreateFavorite(ctx context.Context, req *dto.CreateFavoriteRequest) (*domain.Favorite, error)
	DeleteFavorite(ctx context.Context, favoriteID int) error
}

// apiClient implements APIClient
type apiClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// New creates a new task board API client. Logger and metrics may be
// nil.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &apiClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// do issues one JSON request and decodes the response into out (out may
// be nil for bodyless responses). Non-2xx responses are decoded into a
// *response.APIError.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordAPICall(path, method, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Request to task board API failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Task board API responded",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	)

	if statusCode < 200 || statusCode >= 300 {
		apiErr := &response.APIError{}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			return fmt.Errorf("unexpected status %d with undecodable body: %w", statusCode, decodeErr)
		}
		c.logger.Warn("Task board API rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", statusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

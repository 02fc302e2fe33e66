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

// SectionService is the mutation pipeline for sections
type SectionService interface {
	FetchBoardSections(ctx context.Context, boardID int) response.Result[[]domain.Section]
	CreateSection(ctx context.Context, boardID int, req *dto.CreateSectionRequest) response.Result[domain.Section]
	EditSection(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) response.Result[domain.Section]
	DeleteSection(ctx context.Context, sectionID int) response.Result[dto.MessageResponse]
}

// sectionServiceImpl is the implementation of SectionService
type sectionServiceImpl struct {
	api    client.APIClient
	store  *state.Store
	logger *zap.Logger
}

// NewSectionService creates a new instance of SectionService
func NewSectionService(api client.APIClient, store *state.Store, logger *zap.Logger) SectionService {
	return &sectionServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

func (s *sectionServiceImpl) FetchBoardSections(ctx context.Context, boardID int) response.Result[[]domain.Section] {
	res, err := s.api.ListSections(ctx, boardID)
	if err != nil {
		return fail[[]domain.Section](s.logger, err, "Failed to fetch sections")
	}
	s.store.Dispatch(state.LoadSections{Sections: res.Sections})
	return response.Ok(res.Sections)
}

func (s *sectionServiceImpl) CreateSection(ctx context.Context, boardID int, req *dto.CreateSectionRequest) response.Result[domain.Section] {
	env, err := s.api.CreateSection(ctx, boardID, req)
	if err != nil {
		return fail[domain.Section](s.logger, err, "Failed to create section")
	}
	s.store.Dispatch(state.AddSection{Section: env.Section})
	return response.Ok(env.Section)
}

func (s *sectionServiceImpl) EditSection(ctx context.Context, sectionID int, req *dto.UpdateSectionRequest) response.Result[domain.Section] {
	section, err := s.api.UpdateSection(ctx, sectionID, req)
	if err != nil {
		return fail[domain.Section](s.logger, err, "Failed to update section")
	}
	s.store.Dispatch(state.UpdateSection{Section: *section})
	return response.Ok(*section)
}

// DeleteSection removes the section from the sections cache. Cards that
// belonged to it are not cascaded locally; the server owns the cascade.
func (s *sectionServiceImpl) DeleteSection(ctx context.Context, sectionID int) response.Result[dto.MessageResponse] {
	if err := s.api.DeleteSection(ctx, sectionID); err != nil {
		return fail[dto.MessageResponse](s.logger, err, "Failed to delete section")
	}
	s.store.Dispatch(state.RemoveSection{ID: sectionID})
	return response.Ok(dto.MessageResponse{Message: "Section deleted successfully"})
}

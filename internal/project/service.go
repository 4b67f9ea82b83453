package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

var (
	ErrProjectNotFound = action.Validation("project not found or access denied")
	ErrProjectClosed   = action.Validation("project is not open for new work")
)

type ProjectService interface {
	CreateProject(ctx context.Context, dto CreateProjectDTO) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	// EnsureOwned fails with a validation error when id is set and is not
	// one of userID's open projects.
	EnsureOwned(ctx context.Context, id *uuid.UUID, userID uuid.UUID) error
}

type projectService struct {
	repo ProjectRepository
}

func NewService(repo ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) CreateProject(ctx context.Context, dto CreateProjectDTO) (*Project, error) {
	log := config.WithContext(ctx)
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to create project without authentication")
		return nil, action.Unauthorized()
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusPlanned
	}
	p := &Project{Name: dto.Name, Description: dto.Description, Status: status, UserID: userID}
	if err := s.repo.Create(ctx, p); err != nil {
		log.WithError(err).Error("Failed to create project")
		return nil, err
	}
	return p, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]*Project, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, action.Unauthorized()
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *projectService) EnsureOwned(ctx context.Context, id *uuid.UUID, userID uuid.UUID) error {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	p, err := s.repo.FindByIDAndUserID(ctx, *id, userID)
	if errors.Is(err, ErrNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to check project ownership")
		return err
	}
	if !p.Status.Open() {
		return ErrProjectClosed
	}
	return nil
}

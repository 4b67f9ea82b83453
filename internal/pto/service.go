package pto

import (
	"context"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

type Service interface {
	ListMine(ctx context.Context) ([]*PTORequest, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMine(ctx context.Context) ([]*PTORequest, error) {
	log := config.WithContext(ctx)
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to list PTO without authentication")
		return nil, action.Unauthorized()
	}

	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list PTO requests")
		return nil, err
	}
	return list, nil
}

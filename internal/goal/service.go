package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

var ErrGoalNotFound = action.NotFound("goal")

var affectedViews = []string{
	cache.PathGoals,
	cache.PathDashboard,
	cache.PathPerformance,
}

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error)
	List(ctx context.Context) ([]*Goal, error)
	Get(ctx context.Context, id uuid.UUID) (*Goal, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*Goal, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, dto UpdateProgressDTO) (*Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*GoalStats, error)
}

type service struct {
	repo        Repository
	invalidator cache.Invalidator
}

func NewService(repo Repository, invalidator cache.Invalidator) Service {
	return &service{repo: repo, invalidator: invalidator}
}

func (s *service) caller(ctx context.Context, log logrus.FieldLogger, act string) (uuid.UUID, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warnf("Attempt to %s without authentication", act)
		return uuid.Nil, action.Unauthorized()
	}
	return userID, nil
}

func (s *service) findOwned(ctx context.Context, log logrus.FieldLogger, id, userID uuid.UUID) (*Goal, error) {
	goal, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found or does not belong to user")
			return nil, ErrGoalNotFound
		}
		log.WithError(err).Error("Error finding goal by ID")
		return nil, err
	}
	return goal, nil
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "create goal")
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	progress, status := DeriveStatus(StatusActive, dto.Progress)
	goal := &Goal{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		TargetDate:  util.ToTimePtr(dto.TargetDate),
		Progress:    progress,
		Status:      status,
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithField("goal_id", goal.ID).Info("Goal created successfully")
	return goal, nil
}

func (s *service) List(ctx context.Context) ([]*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "list goals")
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "find goal")
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, log, id, userID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "update goal")
	if err != nil {
		return nil, err
	}

	goal, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	if dto.Title != nil {
		goal.Title = *dto.Title
	}
	if dto.Description != nil {
		goal.Description = *dto.Description
	}
	if dto.TargetDate != nil {
		goal.TargetDate = util.ToTimePtr(dto.TargetDate)
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	return goal, nil
}

func (s *service) UpdateProgress(ctx context.Context, id uuid.UUID, dto UpdateProgressDTO) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "update goal progress")
	if err != nil {
		return nil, err
	}

	goal, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	goal.Progress, goal.Status = DeriveStatus(goal.Status, *dto.Progress)
	if err := s.repo.Update(ctx, goal); err != nil {
		log.WithError(err).Error("Failed to update goal progress")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithFields(logrus.Fields{
		"goal_id":  goal.ID,
		"progress": goal.Progress,
		"status":   goal.Status,
	}).Info("Goal progress updated")
	return goal, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "delete goal")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("goal_id", id).Warn("Goal not found or does not belong to user")
			return ErrGoalNotFound
		}
		log.WithError(err).Error("Failed to delete goal")
		return err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithField("goal_id", id).Info("Goal deleted")
	return nil
}

func (s *service) Stats(ctx context.Context) (*GoalStats, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read goal stats")
	if err != nil {
		return nil, err
	}

	var (
		byStatus map[GoalStatus]int
		avg      float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		avg, err = s.repo.AverageProgress(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to compute goal stats")
		return nil, err
	}

	stats := &GoalStats{
		Active:          byStatus[StatusActive],
		InProgress:      byStatus[StatusInProgress],
		Completed:       byStatus[StatusCompleted],
		AverageProgress: util.Percent(avg, 100),
	}
	stats.Total = stats.Active + stats.InProgress + stats.Completed
	return stats, nil
}

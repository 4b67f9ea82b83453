package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

var ErrTaskNotFound = action.NotFound("task")

var affectedViews = []string{
	cache.PathTasks,
	cache.PathDashboard,
	cache.PathCalendar,
	cache.PathPerformance,
}

type TaskService interface {
	CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error)
	ListTasks(ctx context.Context, status *TaskStatus) ([]*Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, dto UpdateTaskDTO) (*Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, dto UpdateStatusDTO) (*Task, error)
	LogHours(ctx context.Context, id uuid.UUID, dto LogHoursDTO) (*Task, error)
	Stats(ctx context.Context) (*TaskStats, error)
}

type taskService struct {
	repo           TaskRepository
	projectService project.ProjectService
	invalidator    cache.Invalidator
	now            func() time.Time
}

func NewService(repo TaskRepository, projectService project.ProjectService, invalidator cache.Invalidator) TaskService {
	return &taskService{
		repo:           repo,
		projectService: projectService,
		invalidator:    invalidator,
		now:            time.Now,
	}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, act string) (uuid.UUID, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", act)
		return uuid.Nil, action.Unauthorized()
	}
	return userID, nil
}

func (s *taskService) findOwned(ctx context.Context, log logrus.FieldLogger, id, userID uuid.UUID) (*Task, error) {
	t, err := s.repo.FindByIdAndUserId(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"task_id": id,
				"user_id": userID,
			}).Warn("Task not found or does not belong to user")
			return nil, ErrTaskNotFound
		}
		log.WithError(err).Error("Error finding task by ID")
		return nil, err
	}
	return t, nil
}

func (s *taskService) CreateTask(ctx context.Context, dto CreateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create task")
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}
	if err := s.projectService.EnsureOwned(ctx, dto.ProjectID, userID); err != nil {
		return nil, err
	}

	priority := dto.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	t := &Task{
		Title:          dto.Title,
		Description:    dto.Description,
		Status:         StatusTodo,
		Priority:       priority,
		DueDate:        util.ToTimePtr(dto.DueDate),
		EstimatedHours: dto.EstimatedHours,
		ProjectID:      dto.ProjectID,
		AssigneeID:     userID,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		log.WithError(err).Error("Failed to create task")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithField("task_id", t.ID).Info("Task created successfully")
	return t, nil
}

func (s *taskService) ListTasks(ctx context.Context, status *TaskStatus) ([]*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list tasks")
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, action.Validationf("unknown status %q", *status)
	}

	tasks, err := s.repo.ListByUser(ctx, userID, status)
	if err != nil {
		log.WithError(err).Error("Failed to list tasks by user")
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "find task")
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, log, id, userID)
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, dto UpdateTaskDTO) (*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update task")
	if err != nil {
		return nil, err
	}

	existing, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Priority != nil {
		existing.Priority = *dto.Priority
	}
	if dto.DueDate != nil {
		existing.DueDate = util.ToTimePtr(dto.DueDate)
	}
	if dto.EstimatedHours != nil {
		existing.EstimatedHours = *dto.EstimatedHours
	}

	if err := s.repo.Update(ctx, existing, "title", "description", "priority", "due_date", "estimated_hours"); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		log.WithError(err).Error("Failed to update task")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithField("task_id", existing.ID).Info("Task updated successfully")
	return s.findOwned(ctx, log, id, userID)
}

func (s *taskService) UpdateStatus(ctx context.Context, id uuid.UUID, dto UpdateStatusDTO) (*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "update task status")
	if err != nil {
		return nil, err
	}

	existing, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	switch {
	case dto.Status == StatusDone && existing.Status != StatusDone:
		now := s.now()
		existing.CompletedAt = &now
	case dto.Status != StatusDone:
		existing.CompletedAt = nil
	}
	existing.Status = dto.Status

	if err := s.repo.Update(ctx, existing, "status", "completed_at"); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		log.WithError(err).Error("Failed to update task status")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithFields(logrus.Fields{"task_id": existing.ID, "status": existing.Status}).Info("Task status updated")
	return s.findOwned(ctx, log, id, userID)
}

func (s *taskService) LogHours(ctx context.Context, id uuid.UUID, dto LogHoursDTO) (*Task, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "log task hours")
	if err != nil {
		return nil, err
	}

	if _, err := s.findOwned(ctx, log, id, userID); err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	if err := s.repo.AddActualHours(ctx, id, userID, dto.Hours); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		log.WithError(err).Error("Failed to log task hours")
		return nil, err
	}

	updated, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithFields(logrus.Fields{"task_id": id, "hours": dto.Hours}).Info("Task hours logged")
	return updated, nil
}

func (s *taskService) Stats(ctx context.Context) (*TaskStats, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "read task stats")
	if err != nil {
		return nil, err
	}

	var (
		byStatus map[TaskStatus]int
		overdue  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		overdue, err = s.repo.CountOverdue(gctx, userID, s.now())
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to compute task stats")
		return nil, err
	}

	stats := &TaskStats{
		Todo:       byStatus[StatusTodo],
		InProgress: byStatus[StatusInProgress],
		InReview:   byStatus[StatusInReview],
		Blocked:    byStatus[StatusBlocked],
		Done:       byStatus[StatusDone],
		Overdue:    overdue,
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	stats.CompletionRate = util.Percent(float64(stats.Done), float64(stats.Total))
	return stats, nil
}

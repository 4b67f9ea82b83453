package timesheet

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

var (
	ErrTimesheetNotFound = action.NotFound("timesheet")
	ErrEntryNotOwned     = action.NotFound("timesheet entry")
	ErrApproved          = action.InvalidState("timesheet is approved and can no longer be changed")
	ErrAlreadySubmitted  = action.InvalidState("only draft timesheets can be submitted")
	ErrDateRequired      = action.Validation("date is required")
)

var affectedViews = []string{
	cache.PathTimesheets,
	cache.PathDashboard,
	cache.PathPerformance,
}

type Service interface {
	GetCurrent(ctx context.Context) (*Timesheet, error)
	GetForDate(ctx context.Context, date time.Time) (*Timesheet, error)
	Get(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	List(ctx context.Context) ([]*Timesheet, error)
	AddEntry(ctx context.Context, dto AddEntryDTO) (*Timesheet, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, dto UpdateEntryDTO) (*Timesheet, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) (*Timesheet, error)
	Submit(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	Stats(ctx context.Context) (*TimesheetStats, error)
}

type service struct {
	repo           Repository
	projectService project.ProjectService
	invalidator    cache.Invalidator
	now            func() time.Time
}

func NewService(repo Repository, projectService project.ProjectService, invalidator cache.Invalidator) Service {
	return &service{
		repo:           repo,
		projectService: projectService,
		invalidator:    invalidator,
		now:            time.Now,
	}
}

func (s *service) caller(ctx context.Context, log logrus.FieldLogger, act string) (uuid.UUID, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warnf("Attempt to %s without authentication", act)
		return uuid.Nil, action.Unauthorized()
	}
	return userID, nil
}

func (s *service) weekOf(ctx context.Context, userID uuid.UUID, date time.Time) (*Timesheet, error) {
	start, end := util.WeekBounds(date.In(util.Location()))
	ts, err := s.repo.FindOrCreateWeek(ctx, userID, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch or create timesheet")
		return nil, err
	}
	return ts, nil
}

func (s *service) findOwned(ctx context.Context, log logrus.FieldLogger, id, userID uuid.UUID) (*Timesheet, error) {
	ts, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("timesheet_id", id).Warn("Timesheet not found or does not belong to user")
			return nil, ErrTimesheetNotFound
		}
		log.WithError(err).Error("Error finding timesheet by ID")
		return nil, err
	}
	return ts, nil
}

func (s *service) GetCurrent(ctx context.Context) (*Timesheet, error) {
	return s.GetForDate(ctx, s.now())
}

func (s *service) GetForDate(ctx context.Context, date time.Time) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read timesheet")
	if err != nil {
		return nil, err
	}
	return s.weekOf(ctx, userID, date)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read timesheet")
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, log, id, userID)
}

func (s *service) List(ctx context.Context) ([]*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "list timesheets")
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list timesheets")
		return nil, err
	}
	return list, nil
}

func (s *service) AddEntry(ctx context.Context, dto AddEntryDTO) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "add timesheet entry")
	if err != nil {
		return nil, err
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}
	// "date":"" decodes to a non-nil zero value.
	if dto.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if err := s.projectService.EnsureOwned(ctx, dto.ProjectID, userID); err != nil {
		return nil, err
	}

	day := util.StartOfDay(dto.Date.In(util.Location()))
	ts, err := s.weekOf(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if !ts.Status.Editable() {
		return nil, ErrApproved
	}

	entry := &TimesheetEntry{
		TimesheetID: ts.ID,
		Date:        day,
		Hours:       dto.Hours,
		Billable:    dto.Billable,
		ProjectID:   dto.ProjectID,
		Description: dto.Description,
	}
	if _, err := s.repo.CreateEntry(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to add timesheet entry")
		return nil, err
	}

	log.WithFields(logrus.Fields{"timesheet_id": ts.ID, "entry_id": entry.ID}).Info("Timesheet entry added")
	return s.reload(ctx, log, ts.ID, userID)
}

func (s *service) UpdateEntry(ctx context.Context, entryID uuid.UUID, dto UpdateEntryDTO) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "update timesheet entry")
	if err != nil {
		return nil, err
	}

	entry, ts, err := s.findEntry(ctx, log, entryID, userID)
	if err != nil {
		return nil, err
	}
	if !ts.Status.Editable() {
		return nil, ErrApproved
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	if dto.Date != nil && !dto.Date.IsZero() {
		day := util.StartOfDay(dto.Date.In(util.Location()))
		if day.Before(ts.WeekStart) || day.After(ts.WeekEnd) {
			return nil, action.Validation("date must fall within the timesheet week")
		}
		entry.Date = day
	}
	if dto.Hours != nil {
		entry.Hours = *dto.Hours
	}
	if dto.Billable != nil {
		entry.Billable = *dto.Billable
	}
	if dto.ProjectID != nil {
		if err := s.projectService.EnsureOwned(ctx, dto.ProjectID, userID); err != nil {
			return nil, err
		}
		entry.ProjectID = dto.ProjectID
	}
	if dto.Description != nil {
		entry.Description = *dto.Description
	}

	if _, err := s.repo.SaveEntry(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to update timesheet entry")
		return nil, err
	}
	return s.reload(ctx, log, ts.ID, userID)
}

func (s *service) DeleteEntry(ctx context.Context, entryID uuid.UUID) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "delete timesheet entry")
	if err != nil {
		return nil, err
	}

	entry, ts, err := s.findEntry(ctx, log, entryID, userID)
	if err != nil {
		return nil, err
	}
	if !ts.Status.Editable() {
		return nil, ErrApproved
	}

	if _, err := s.repo.DeleteEntry(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to delete timesheet entry")
		return nil, err
	}

	log.WithField("entry_id", entryID).Info("Timesheet entry deleted")
	return s.reload(ctx, log, ts.ID, userID)
}

func (s *service) Submit(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "submit timesheet")
	if err != nil {
		return nil, err
	}

	ts, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if ts.Status != StatusDraft {
		return nil, ErrAlreadySubmitted
	}

	if err := s.repo.MarkSubmitted(ctx, id, userID, s.now()); err != nil {
		if errors.Is(err, ErrNotDraft) {
			return nil, ErrAlreadySubmitted
		}
		log.WithError(err).Error("Failed to submit timesheet")
		return nil, err
	}

	log.WithField("timesheet_id", id).Info("Timesheet submitted")
	return s.reload(ctx, log, id, userID)
}

func (s *service) Stats(ctx context.Context) (*TimesheetStats, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read timesheet stats")
	if err != nil {
		return nil, err
	}

	now := s.now().In(util.Location())
	weekStart, weekEnd := util.WeekBounds(now)
	monthStart, monthEnd := util.MonthBounds(now)

	var (
		stats    TimesheetStats
		byStatus map[TimesheetStatus]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.WeekHours, err = s.repo.SumHours(gctx, userID, weekStart, weekEnd, false)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MonthHours, err = s.repo.SumHours(gctx, userID, monthStart, monthEnd, false)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MonthBillableHours, err = s.repo.SumHours(gctx, userID, monthStart, monthEnd, true)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to compute timesheet stats")
		return nil, err
	}

	stats.WeekHours = util.Round1(stats.WeekHours)
	stats.MonthHours = util.Round1(stats.MonthHours)
	stats.MonthBillableHours = util.Round1(stats.MonthBillableHours)
	stats.BillablePercent = util.Percent(stats.MonthBillableHours, stats.MonthHours)
	stats.Draft = byStatus[StatusDraft]
	stats.Submitted = byStatus[StatusSubmitted]
	stats.Approved = byStatus[StatusApproved]
	return &stats, nil
}

func (s *service) findEntry(ctx context.Context, log logrus.FieldLogger, entryID, userID uuid.UUID) (*TimesheetEntry, *Timesheet, error) {
	entry, err := s.repo.FindEntryOwned(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			log.WithField("entry_id", entryID).Warn("Timesheet entry not found or does not belong to user")
			return nil, nil, ErrEntryNotOwned
		}
		log.WithError(err).Error("Error finding timesheet entry")
		return nil, nil, err
	}
	ts, err := s.findOwned(ctx, log, entry.TimesheetID, userID)
	if err != nil {
		return nil, nil, err
	}
	return entry, ts, nil
}

func (s *service) reload(ctx context.Context, log logrus.FieldLogger, id, userID uuid.UUID) (*Timesheet, error) {
	s.invalidator.Invalidate(ctx, affectedViews...)
	return s.findOwned(ctx, log, id, userID)
}

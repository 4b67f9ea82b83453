// Package performance summarises a user's recent output across tasks,
// timesheets, goals and appraisals.
package performance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/goal"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

const Window = 30 * 24 * time.Hour

type TaskSource interface {
	CompletionCounts(ctx context.Context, userID uuid.UUID, since time.Time) (*task.CompletionCounts, error)
}

type HoursSource interface {
	SumHours(ctx context.Context, userID uuid.UUID, from, to time.Time, billableOnly bool) (float64, error)
}

type GoalSource interface {
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[goal.GoalStatus]int, error)
	AverageProgress(ctx context.Context, userID uuid.UUID) (float64, error)
}

type RatingSource interface {
	FinalRatings(ctx context.Context, userID uuid.UUID) (*appraisal.RatingSummary, error)
}

type Metrics struct {
	WindowDays          int      `json:"window_days"`
	TaskCompletionRate  int      `json:"task_completion_rate"`
	OnTimeRate          int      `json:"on_time_rate"`
	TasksCompleted      int      `json:"tasks_completed"`
	HoursLogged         float64  `json:"hours_logged"`
	BillablePercent     int      `json:"billable_percent"`
	AverageGoalProgress int      `json:"average_goal_progress"`
	GoalsCompleted      int      `json:"goals_completed"`
	LatestRating        *float64 `json:"latest_rating,omitempty"`
	AverageRating       float64  `json:"average_rating"`
}

type Service interface {
	Metrics(ctx context.Context) (*Metrics, error)
}

type service struct {
	tasks   TaskSource
	hours   HoursSource
	goals   GoalSource
	ratings RatingSource
	now     func() time.Time
}

func NewService(tasks TaskSource, hours HoursSource, goals GoalSource, ratings RatingSource) Service {
	return &service{tasks: tasks, hours: hours, goals: goals, ratings: ratings, now: time.Now}
}

func (s *service) Metrics(ctx context.Context) (*Metrics, error) {
	log := config.WithContext(ctx)
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to read performance metrics without authentication")
		return nil, action.Unauthorized()
	}

	now := s.now().In(util.Location())
	since := util.StartOfDay(now.Add(-Window))

	var (
		counts      *task.CompletionCounts
		hours       float64
		billable    float64
		goalsByStat map[goal.GoalStatus]int
		avgProgress float64
		ratings     *appraisal.RatingSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.tasks.CompletionCounts(gctx, userID, since)
		return err
	})
	g.Go(func() error {
		var err error
		hours, err = s.hours.SumHours(gctx, userID, since, now, false)
		return err
	})
	g.Go(func() error {
		var err error
		billable, err = s.hours.SumHours(gctx, userID, since, now, true)
		return err
	})
	g.Go(func() error {
		var err error
		goalsByStat, err = s.goals.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		avgProgress, err = s.goals.AverageProgress(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.ratings.FinalRatings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to compute performance metrics")
		return nil, err
	}

	return &Metrics{
		WindowDays:          int(Window / (24 * time.Hour)),
		TaskCompletionRate:  util.Percent(float64(counts.Done), float64(counts.Total)),
		OnTimeRate:          util.Percent(float64(counts.OnTime), float64(counts.WithDue)),
		TasksCompleted:      int(counts.Done),
		HoursLogged:         util.Round1(hours),
		BillablePercent:     util.Percent(billable, hours),
		AverageGoalProgress: util.Percent(avgProgress, 100),
		GoalsCompleted:      goalsByStat[goal.StatusCompleted],
		LatestRating:        ratings.Latest,
		AverageRating:       util.Round1(ratings.Average),
	}, nil
}

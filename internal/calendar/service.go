package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/pto"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

const maxWindow = 366 * 24 * time.Hour

type TaskSource interface {
	ListDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*task.Task, error)
}

type CycleSource interface {
	CyclesEndingBetween(ctx context.Context, from, to time.Time) ([]*appraisal.AppraisalCycle, error)
}

type PTOSource interface {
	ListApprovedOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*pto.PTORequest, error)
}

type Service interface {
	Events(ctx context.Context, from, to time.Time) ([]CalendarEvent, error)
}

type service struct {
	tasks  TaskSource
	cycles CycleSource
	leave  PTOSource
}

func NewService(tasks TaskSource, cycles CycleSource, leave PTOSource) Service {
	return &service{tasks: tasks, cycles: cycles, leave: leave}
}

// Events merges task due dates, appraisal cycle end dates and approved PTO
// days inside [from, to] into one list sorted by date.
func (s *service) Events(ctx context.Context, from, to time.Time) ([]CalendarEvent, error) {
	log := config.WithContext(ctx)
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warn("Attempt to read calendar without authentication")
		return nil, action.Unauthorized()
	}

	loc := util.Location()
	from = util.StartOfDay(from.In(loc))
	to = util.EndOfDay(to.In(loc))
	if to.Before(from) {
		return nil, action.Validation("from must not be after to")
	}
	if to.Sub(from) > maxWindow {
		return nil, action.Validation("calendar window must be at most 366 days")
	}

	var (
		tasks  []*task.Task
		cycles []*appraisal.AppraisalCycle
		leave  []*pto.PTORequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.ListDueBetween(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		cycles, err = s.cycles.CyclesEndingBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		leave, err = s.leave.ListApprovedOverlapping(gctx, userID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load calendar sources")
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(tasks)+len(cycles)+len(leave))
	for _, t := range tasks {
		events = append(events, taskEvent(t))
	}
	for _, c := range cycles {
		events = append(events, cycleEvent(c))
	}
	for _, p := range leave {
		events = append(events, expandPTO(p, from, to)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Type.rank() < events[j].Type.rank()
	})
	return events, nil
}

func taskEvent(t *task.Task) CalendarEvent {
	return CalendarEvent{
		ID:       "task-" + t.ID.String(),
		Title:    t.Title,
		Date:     t.DueDate.In(util.Location()),
		Type:     EventTask,
		SourceID: t.ID,
		Status:   string(t.Status),
		Priority: string(t.Priority),
	}
}

func cycleEvent(c *appraisal.AppraisalCycle) CalendarEvent {
	return CalendarEvent{
		ID:       "appraisal-" + c.ID.String(),
		Title:    c.Name + " appraisal deadline",
		Date:     c.EndDate.In(util.Location()),
		Type:     EventAppraisal,
		SourceID: c.ID,
		AllDay:   true,
		Status:   string(c.Status),
	}
}

// expandPTO emits one all-day event per day of p that lies inside the window.
func expandPTO(p *pto.PTORequest, from, to time.Time) []CalendarEvent {
	loc := util.Location()
	start := util.StartOfDay(p.StartDate.In(loc))
	end := util.EndOfDay(p.EndDate.In(loc))
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}

	var out []CalendarEvent
	util.EachDay(start, end, func(day time.Time) {
		out = append(out, CalendarEvent{
			ID:       fmt.Sprintf("pto-%s-%s", p.ID, day.Format("2006-01-02")),
			Title:    string(p.Type) + " leave",
			Date:     day,
			Type:     EventPTO,
			SourceID: p.ID,
			AllDay:   true,
			Status:   string(p.Status),
		})
	})
	return out
}

package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/calendar"
	"github.com/saulo-duarte/chronos-workspace/internal/pto"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	"github.com/saulo-duarte/chronos-workspace/internal/testutil"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2026, month, day, hour, 0, 0, 0, util.Location())
}

func TestEvents_MergesSources(t *testing.T) {
	db := testutil.OpenDB(t, &task.Task{}, &appraisal.AppraisalCycle{}, &pto.PTORequest{})
	userID, ctx := testutil.NewUser(t)

	due := at(time.October, 14, 17)
	require.NoError(t, db.Create(&task.Task{Title: "Quarterly report", AssigneeID: userID, DueDate: &due, Status: task.StatusTodo, Priority: task.PriorityHigh}).Error)
	outside := at(time.December, 1, 9)
	require.NoError(t, db.Create(&task.Task{Title: "Later", AssigneeID: userID, DueDate: &outside, Status: task.StatusTodo, Priority: task.PriorityLow}).Error)
	require.NoError(t, db.Create(&task.Task{Title: "Someone else", AssigneeID: uuid.New(), DueDate: &due, Status: task.StatusTodo, Priority: task.PriorityLow}).Error)
	require.NoError(t, db.Create(&appraisal.AppraisalCycle{Name: "2026 H2", StartDate: at(time.July, 1, 0), EndDate: at(time.October, 10, 0), Status: appraisal.CycleActive}).Error)
	require.NoError(t, db.Create(&pto.PTORequest{UserID: userID, StartDate: at(time.October, 20, 0), EndDate: at(time.October, 22, 0), Status: pto.StatusApproved, Type: pto.TypeVacation}).Error)
	require.NoError(t, db.Create(&pto.PTORequest{UserID: userID, StartDate: at(time.October, 5, 0), EndDate: at(time.October, 6, 0), Status: pto.StatusPending, Type: pto.TypePersonal}).Error)

	svc := calendar.NewService(task.NewRepository(db), appraisal.NewRepository(db), pto.NewRepository(db))
	events, err := svc.Events(ctx, at(time.October, 1, 0), at(time.October, 31, 0))
	require.NoError(t, err)

	counts := map[calendar.EventType]int{}
	for _, e := range events {
		counts[e.Type]++
	}
	assert.Equal(t, map[calendar.EventType]int{
		calendar.EventTask:      1,
		calendar.EventAppraisal: 1,
		calendar.EventPTO:       3,
	}, counts)

	require.Len(t, events, 5)
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date), "events out of order at %d", i)
	}
	assert.Equal(t, calendar.EventAppraisal, events[0].Type)
	assert.Equal(t, calendar.EventTask, events[1].Type)
	assert.Equal(t, []int{20, 21, 22}, []int{events[2].Date.Day(), events[3].Date.Day(), events[4].Date.Day()})
}

type fakeTasks []*task.Task

func (f fakeTasks) ListDueBetween(context.Context, uuid.UUID, time.Time, time.Time) ([]*task.Task, error) {
	return f, nil
}

type fakeCycles []*appraisal.AppraisalCycle

func (f fakeCycles) CyclesEndingBetween(context.Context, time.Time, time.Time) ([]*appraisal.AppraisalCycle, error) {
	return f, nil
}

type fakePTO struct {
	list []*pto.PTORequest
	err  error
}

func (f fakePTO) ListApprovedOverlapping(context.Context, uuid.UUID, time.Time, time.Time) ([]*pto.PTORequest, error) {
	return f.list, f.err
}

func TestEvents_ClipsPTOToWindow(t *testing.T) {
	_, ctx := testutil.NewUser(t)
	leave := &pto.PTORequest{ID: uuid.New(), StartDate: at(time.September, 28, 0), EndDate: at(time.October, 3, 0), Status: pto.StatusApproved, Type: pto.TypeSick}
	svc := calendar.NewService(fakeTasks{}, fakeCycles{}, fakePTO{list: []*pto.PTORequest{leave}})

	events, err := svc.Events(ctx, at(time.October, 1, 12), at(time.October, 2, 8))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Date.Day())
	assert.Equal(t, 2, events[1].Date.Day())
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

func TestEvents_TiesOrderedByType(t *testing.T) {
	_, ctx := testutil.NewUser(t)
	midnight := at(time.October, 10, 0)
	svc := calendar.NewService(
		fakeTasks{{ID: uuid.New(), Title: "t", DueDate: &midnight}},
		fakeCycles{{ID: uuid.New(), Name: "c", EndDate: midnight}},
		fakePTO{list: []*pto.PTORequest{{ID: uuid.New(), StartDate: midnight, EndDate: midnight, Type: pto.TypeVacation}}},
	)

	events, err := svc.Events(ctx, midnight, midnight)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, []calendar.EventType{calendar.EventTask, calendar.EventAppraisal, calendar.EventPTO},
		[]calendar.EventType{events[0].Type, events[1].Type, events[2].Type})
}

func TestEvents_WindowValidation(t *testing.T) {
	_, ctx := testutil.NewUser(t)
	svc := calendar.NewService(fakeTasks{}, fakeCycles{}, fakePTO{})

	_, err := svc.Events(ctx, at(time.October, 10, 0), at(time.October, 9, 0))
	assert.Equal(t, action.KindValidation, action.KindOf(err))

	_, err = svc.Events(ctx, at(time.January, 1, 0), at(time.January, 1, 0).AddDate(1, 0, 2))
	assert.Equal(t, action.KindValidation, action.KindOf(err))

	events, err := svc.Events(ctx, at(time.October, 10, 0), at(time.October, 10, 0))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEvents_SourceFailureIsInternal(t *testing.T) {
	_, ctx := testutil.NewUser(t)
	svc := calendar.NewService(fakeTasks{}, fakeCycles{}, fakePTO{err: errors.New("connection reset")})

	_, err := svc.Events(ctx, at(time.October, 1, 0), at(time.October, 2, 0))
	require.Error(t, err)
	assert.Equal(t, action.KindInternal, action.KindOf(err))
	assert.Equal(t, "internal server error", action.PublicMessage(err))
}

func TestEvents_Unauthorized(t *testing.T) {
	svc := calendar.NewService(fakeTasks{}, fakeCycles{}, fakePTO{})
	_, err := svc.Events(context.Background(), at(time.October, 1, 0), at(time.October, 2, 0))
	assert.Equal(t, action.KindUnauthorized, action.KindOf(err))
}

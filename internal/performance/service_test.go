package performance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/goal"
	"github.com/saulo-duarte/chronos-workspace/internal/performance"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	"github.com/saulo-duarte/chronos-workspace/internal/testutil"
	"github.com/saulo-duarte/chronos-workspace/internal/timesheet"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

func openAll(t *testing.T) *gorm.DB {
	return testutil.OpenDB(t,
		&project.Project{}, &task.Task{}, &goal.Goal{},
		&timesheet.Timesheet{}, &timesheet.TimesheetEntry{},
		&appraisal.AppraisalCycle{}, &appraisal.AppraisalReview{},
	)
}

func TestMetrics(t *testing.T) {
	db := openAll(t)
	userID, ctx := testutil.NewUser(t)
	rec := &cache.Recorder{}
	projects := project.NewService(project.NewRepository(db))

	taskRepo := task.NewRepository(db)
	tasks := task.NewService(taskRepo, projects, rec)
	future := &util.LocalDateTime{Time: time.Now().Add(72 * time.Hour)}
	for i, title := range []string{"a", "b", "c", "d"} {
		created, err := tasks.CreateTask(ctx, task.CreateTaskDTO{Title: title, DueDate: future})
		require.NoError(t, err)
		if i < 3 {
			_, err = tasks.UpdateStatus(ctx, created.ID, task.UpdateStatusDTO{Status: task.StatusDone})
			require.NoError(t, err)
		}
	}

	tsRepo := timesheet.NewRepository(db)
	sheets := timesheet.NewService(tsRepo, projects, rec)
	today := &util.LocalDateTime{Time: time.Now().In(util.Location())}
	_, err := sheets.AddEntry(ctx, timesheet.AddEntryDTO{Date: today, Hours: 3, Billable: true})
	require.NoError(t, err)
	_, err = sheets.AddEntry(ctx, timesheet.AddEntryDTO{Date: today, Hours: 1})
	require.NoError(t, err)

	goalRepo := goal.NewRepository(db)
	goals := goal.NewService(goalRepo, rec)
	for _, p := range []int{100, 20} {
		_, err := goals.Create(ctx, goal.CreateGoalDTO{Title: "g", Progress: p})
		require.NoError(t, err)
	}

	cycle := &appraisal.AppraisalCycle{Name: "2025", StartDate: time.Now().AddDate(-1, 0, 0), EndDate: time.Now().AddDate(0, -6, 0), Status: appraisal.CycleClosed}
	require.NoError(t, db.Create(cycle).Error)
	rating := 4.0
	completedAt := time.Now()
	require.NoError(t, db.Create(&appraisal.AppraisalReview{
		UserID: userID, CycleID: cycle.ID, Status: appraisal.ReviewCompleted,
		FinalRating: &rating, CompletedAt: &completedAt,
	}).Error)

	svc := performance.NewService(taskRepo, tsRepo, goalRepo, appraisal.NewRepository(db))
	m, err := svc.Metrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 30, m.WindowDays)
	assert.Equal(t, 75, m.TaskCompletionRate)
	assert.Equal(t, 100, m.OnTimeRate)
	assert.Equal(t, 3, m.TasksCompleted)
	assert.Equal(t, 4.0, m.HoursLogged)
	assert.Equal(t, 75, m.BillablePercent)
	assert.Equal(t, 60, m.AverageGoalProgress)
	assert.Equal(t, 1, m.GoalsCompleted)
	require.NotNil(t, m.LatestRating)
	assert.Equal(t, 4.0, *m.LatestRating)
	assert.Equal(t, 4.0, m.AverageRating)
}

func TestMetrics_EmptyUser(t *testing.T) {
	db := openAll(t)
	_, ctx := testutil.NewUser(t)

	svc := performance.NewService(task.NewRepository(db), timesheet.NewRepository(db), goal.NewRepository(db), appraisal.NewRepository(db))
	m, err := svc.Metrics(ctx)
	require.NoError(t, err)
	assert.Zero(t, m.TaskCompletionRate)
	assert.Zero(t, m.BillablePercent)
	assert.Nil(t, m.LatestRating)
}

func TestMetrics_Unauthorized(t *testing.T) {
	db := openAll(t)
	svc := performance.NewService(task.NewRepository(db), timesheet.NewRepository(db), goal.NewRepository(db), appraisal.NewRepository(db))

	_, err := svc.Metrics(context.Background())
	assert.Equal(t, action.KindUnauthorized, action.KindOf(err))
}

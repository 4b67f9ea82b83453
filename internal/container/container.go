package container

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/calendar"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/database"
	"github.com/saulo-duarte/chronos-workspace/internal/goal"
	"github.com/saulo-duarte/chronos-workspace/internal/middlewares"
	"github.com/saulo-duarte/chronos-workspace/internal/performance"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	"github.com/saulo-duarte/chronos-workspace/internal/pto"
	"github.com/saulo-duarte/chronos-workspace/internal/router"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	"github.com/saulo-duarte/chronos-workspace/internal/timesheet"
	"github.com/saulo-duarte/chronos-workspace/internal/user"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type Container struct {
	Settings    *config.Settings
	DB          *gorm.DB
	Invalidator cache.Invalidator
	RateLimiter *middlewares.RateLimiter

	UserContainer        *user.UserContainer
	ProjectContainer     *project.ProjectContainer
	TaskContainer        *task.TaskContainer
	GoalContainer        *goal.Container
	TimesheetContainer   *timesheet.Container
	AppraisalContainer   *appraisal.Container
	PTOContainer         *pto.Container
	CalendarContainer    *calendar.Container
	PerformanceContainer *performance.Container

	closers []func() error
}

// New opens the store and the invalidation publisher described by settings
// and wires every feature on top of them.
func New(settings *config.Settings) (*Container, error) {
	config.SetLevel(settings.LogLevel)
	util.SetLocation(settings.Location())

	db, err := database.Open(settings.Database, settings.LogLevel == "debug")
	if err != nil {
		return nil, err
	}

	invalidator := cache.Invalidator(cache.LogInvalidator{})
	var closers []func() error
	if settings.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     settings.Redis.Addr,
			Password: settings.Redis.Password,
			DB:       settings.Redis.DB,
		})
		pub := cache.NewRedisInvalidator(client, settings.Redis.Channel)
		invalidator = cache.Multi{pub, cache.LogInvalidator{}}
		closers = append(closers, pub.Close)
		config.Logger.WithField("addr", settings.Redis.Addr).Info("Publishing cache invalidations to Redis")
	}
	closers = append(closers, func() error { return database.Close(db) })

	c := Build(settings, db, invalidator)
	c.closers = closers
	return c, nil
}

// Build wires repositories, services and handlers over an open store.
func Build(settings *config.Settings, db *gorm.DB, invalidator cache.Invalidator) *Container {
	userContainer := user.NewUserContainer(db, invalidator)
	projectContainer := project.NewProjectContainer(db)
	taskContainer := task.NewTaskContainer(db, projectContainer.Service, invalidator)
	goalContainer := goal.NewContainer(db, invalidator)
	timesheetContainer := timesheet.NewContainer(db, projectContainer.Service, invalidator)
	appraisalContainer := appraisal.NewContainer(db, invalidator)
	ptoContainer := pto.NewContainer(db)

	calendarContainer := calendar.NewContainer(
		taskContainer.Repo,
		appraisalContainer.Repo,
		ptoContainer.Repo,
	)
	performanceContainer := performance.NewContainer(
		taskContainer.Repo,
		timesheetContainer.Repo,
		goalContainer.Repo,
		appraisalContainer.Repo,
	)

	return &Container{
		Settings:             settings,
		DB:                   db,
		Invalidator:          invalidator,
		RateLimiter:          middlewares.NewRateLimiter(settings.RateLimit.RequestsPerSecond, settings.RateLimit.Burst),
		UserContainer:        userContainer,
		ProjectContainer:     projectContainer,
		TaskContainer:        taskContainer,
		GoalContainer:        goalContainer,
		TimesheetContainer:   timesheetContainer,
		AppraisalContainer:   appraisalContainer,
		PTOContainer:         ptoContainer,
		CalendarContainer:    calendarContainer,
		PerformanceContainer: performanceContainer,
	}
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		ProjectHandler:     c.ProjectContainer.Handler,
		TaskHandler:        c.TaskContainer.Handler,
		GoalHandler:        c.GoalContainer.Handler,
		TimesheetHandler:   c.TimesheetContainer.Handler,
		AppraisalHandler:   c.AppraisalContainer.Handler,
		PTOHandler:         c.PTOContainer.Handler,
		CalendarHandler:    c.CalendarContainer.Handler,
		PerformanceHandler: c.PerformanceContainer.Handler,
		CORS:               middlewares.NewCORS(c.Settings.CORSOrigins),
		RateLimiter:        c.RateLimiter,
		CookieDomain:       c.Settings.CookieDomain,
	})
}

// StartBackground runs housekeeping until ctx is done.
func (c *Container) StartBackground(ctx context.Context) {
	c.RateLimiter.StartCleanup(ctx, time.Minute)
}

func (c *Container) Close() error {
	var errs []error
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

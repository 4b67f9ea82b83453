package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/calendar"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/goal"
	"github.com/saulo-duarte/chronos-workspace/internal/metrics"
	"github.com/saulo-duarte/chronos-workspace/internal/middlewares"
	"github.com/saulo-duarte/chronos-workspace/internal/performance"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	"github.com/saulo-duarte/chronos-workspace/internal/pto"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	"github.com/saulo-duarte/chronos-workspace/internal/timesheet"
	"github.com/saulo-duarte/chronos-workspace/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	ProjectHandler     *project.Handler
	TaskHandler        *task.Handler
	GoalHandler        *goal.Handler
	TimesheetHandler   *timesheet.Handler
	AppraisalHandler   *appraisal.Handler
	PTOHandler         *pto.Handler
	CalendarHandler    *calendar.Handler
	PerformanceHandler *performance.Handler

	CORS         *middlewares.CORS
	RateLimiter  *middlewares.RateLimiter
	CookieDomain string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)
	if cfg.CORS != nil {
		r.Use(cfg.CORS.Handler)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler(cfg.CookieDomain).Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Handler)
		}

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/projects", project.Routes(cfg.ProjectHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/timesheets", timesheet.Routes(cfg.TimesheetHandler))
		r.Mount("/appraisals", appraisal.Routes(cfg.AppraisalHandler))
		r.Mount("/pto", pto.Routes(cfg.PTOHandler))
		r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
		r.Mount("/performance", performance.Routes(cfg.PerformanceHandler))
	})
	return r
}

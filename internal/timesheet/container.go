package timesheet

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
)

type Container struct {
	Repo    Repository
	Handler *Handler
}

func NewContainer(db *gorm.DB, projectService project.ProjectService, invalidator cache.Invalidator) *Container {
	repo := NewRepository(db)
	service := NewService(repo, projectService, invalidator)

	return &Container{
		Repo:    repo,
		Handler: NewHandler(service),
	}
}

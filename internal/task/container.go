package task

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
)

type TaskContainer struct {
	Repo    TaskRepository
	Handler *Handler
}

func NewTaskContainer(
	db *gorm.DB,
	projectService project.ProjectService,
	invalidator cache.Invalidator,
) *TaskContainer {
	repo := NewRepository(db)
	service := NewService(repo, projectService, invalidator)
	handler := NewHandler(service)

	return &TaskContainer{
		Repo:    repo,
		Handler: handler,
	}
}

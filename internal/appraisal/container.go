package appraisal

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/cache"
)

type Container struct {
	Repo    Repository
	Handler *Handler
}

func NewContainer(db *gorm.DB, invalidator cache.Invalidator) *Container {
	repo := NewRepository(db)

	return &Container{
		Repo:    repo,
		Handler: NewHandler(NewService(repo, invalidator)),
	}
}

package goal

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/cache"
)

type Container struct {
	Repo    Repository
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, invalidator cache.Invalidator) *Container {
	repo := NewRepository(db)
	service := NewService(repo, invalidator)
	handler := NewHandler(service)

	return &Container{
		Repo:    repo,
		Handler: handler,
		Service: service,
	}
}

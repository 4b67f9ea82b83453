package user

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/cache"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, invalidator cache.Invalidator) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, invalidator)
	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: NewHandler(service),
	}
}

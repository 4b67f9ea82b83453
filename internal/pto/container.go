package pto

import "gorm.io/gorm"

type Container struct {
	Repo    Repository
	Handler *Handler
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	return &Container{
		Repo:    repo,
		Handler: NewHandler(NewService(repo)),
	}
}

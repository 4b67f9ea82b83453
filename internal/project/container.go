package project

import "gorm.io/gorm"

type ProjectContainer struct {
	Service ProjectService
	Handler *Handler
}

func NewProjectContainer(db *gorm.DB) *ProjectContainer {
	service := NewService(NewRepository(db))
	return &ProjectContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}

package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Project, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Project, error)
}

var ErrNotFound = errors.New("project not found")

type projectRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Project, error) {
	var projects []*Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

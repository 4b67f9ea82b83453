package pto

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PTORequest, error)
	// ListApprovedOverlapping returns approved requests intersecting [from, to].
	ListApprovedOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*PTORequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*PTORequest, error) {
	var list []*PTORequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListApprovedOverlapping(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*PTORequest, error) {
	var list []*PTORequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?", userID, StatusApproved, to, from).
		Order("start_date ASC").
		Find(&list).Error
	return list, err
}

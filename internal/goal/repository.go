package goal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[GoalStatus]int, error)
	AverageProgress(ctx context.Context, userID uuid.UUID) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *repository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	var goals []*Goal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Goal, error) {
	var goal Goal
	err := r.db.WithContext(ctx).First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Update(ctx context.Context, goal *Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Goal{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[GoalStatus]int, error) {
	var rows []struct {
		Status GoalStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Goal{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[GoalStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = int(row.Count)
	}
	return out, nil
}

func (r *repository) AverageProgress(ctx context.Context, userID uuid.UUID) (float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).Model(&Goal{}).
		Select("AVG(progress)").
		Where("user_id = ?", userID).
		Row()
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByIdAndUserId(ctx context.Context, id, userID uuid.UUID) (*Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *TaskStatus) ([]*Task, error)
	ListDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Task, error)
	Update(ctx context.Context, t *Task, columns ...string) error
	AddActualHours(ctx context.Context, id, userID uuid.UUID, hours float64) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[TaskStatus]int, error)
	CountOverdue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	CompletionCounts(ctx context.Context, userID uuid.UUID, since time.Time) (*CompletionCounts, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepository) FindByIdAndUserId(ctx context.Context, id, userID uuid.UUID) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND assignee_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *TaskStatus) ([]*Task, error) {
	q := r.db.WithContext(ctx).Where("assignee_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var tasks []*Task
	if err := q.Order("due_date IS NULL, due_date ASC, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListDueBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*Task, error) {
	var tasks []*Task
	err := r.db.WithContext(ctx).
		Where("assignee_id = ? AND due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", userID, from, to).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

// Update writes only the named columns of t, so concurrent writers of other
// columns (such as AddActualHours) are preserved.
func (r *taskRepository) Update(ctx context.Context, t *Task, columns ...string) error {
	res := r.db.WithContext(ctx).Model(t).
		Where("assignee_id = ?", t.AssigneeID).
		Select(append(columns, "updated_at")).
		Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddActualHours increments in the database so concurrent logs are not lost.
func (r *taskRepository) AddActualHours(ctx context.Context, id, userID uuid.UUID, hours float64) error {
	res := r.db.WithContext(ctx).Model(&Task{}).
		Where("id = ? AND assignee_id = ?", id, userID).
		Updates(map[string]interface{}{
			"actual_hours": gorm.Expr("actual_hours + ?", hours),
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[TaskStatus]int, error) {
	var rows []struct {
		Status TaskStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Task{}).
		Select("status, COUNT(*) AS count").
		Where("assignee_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[TaskStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = int(row.Count)
	}
	return out, nil
}

func (r *taskRepository) CountOverdue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Task{}).
		Where("assignee_id = ? AND status <> ? AND due_date IS NOT NULL AND due_date < ?", userID, StatusDone, now).
		Count(&n).Error
	return int(n), err
}

// CompletionCounts aggregates tasks created or completed since the given instant.
func (r *taskRepository) CompletionCounts(ctx context.Context, userID uuid.UUID, since time.Time) (*CompletionCounts, error) {
	var out CompletionCounts
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&Task{}).Where("assignee_id = ?", userID)
	}

	if err := base().Where("(created_at >= ? OR completed_at >= ?)", since, since).Count(&out.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ? AND completed_at >= ?", StatusDone, since).Count(&out.Done).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ? AND completed_at >= ? AND due_date IS NOT NULL", StatusDone, since).Count(&out.WithDue).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ? AND completed_at >= ? AND due_date IS NOT NULL AND completed_at <= due_date", StatusDone, since).Count(&out.OnTime).Error; err != nil {
		return nil, err
	}
	row := base().Select("COALESCE(SUM(actual_hours), 0)").Where("status = ? AND completed_at >= ?", StatusDone, since).Row()
	if err := row.Scan(&out.HoursDone); err != nil {
		return nil, err
	}
	return &out, nil
}

package appraisal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("appraisal review not found")
	ErrNoActiveCycle = errors.New("no active appraisal cycle")
	ErrNotDraft      = errors.New("appraisal review is not a draft")
	ErrCompleted     = errors.New("appraisal review is completed")
)

type Repository interface {
	ActiveCycle(ctx context.Context) (*AppraisalCycle, error)
	CyclesEndingBetween(ctx context.Context, from, to time.Time) ([]*AppraisalCycle, error)
	FindOrCreateReview(ctx context.Context, userID, cycleID uuid.UUID) (*AppraisalReview, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*AppraisalReview, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppraisalReview, error)
	UpdateDraft(ctx context.Context, review *AppraisalReview) error
	MarkSubmitted(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[ReviewStatus]int, error)
	FinalRatings(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ActiveCycle returns the most recently started ACTIVE cycle.
func (r *repository) ActiveCycle(ctx context.Context) (*AppraisalCycle, error) {
	var cycle AppraisalCycle
	err := r.db.WithContext(ctx).
		Where("status = ?", CycleActive).
		Order("start_date DESC").
		First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveCycle
		}
		return nil, err
	}
	return &cycle, nil
}

func (r *repository) CyclesEndingBetween(ctx context.Context, from, to time.Time) ([]*AppraisalCycle, error) {
	var cycles []*AppraisalCycle
	err := r.db.WithContext(ctx).
		Where("end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC").
		Find(&cycles).Error
	return cycles, err
}

func (r *repository) FindOrCreateReview(ctx context.Context, userID, cycleID uuid.UUID) (*AppraisalReview, error) {
	fresh := &AppraisalReview{UserID: userID, CycleID: cycleID, Status: ReviewDraft}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "cycle_id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	var review AppraisalReview
	err = r.db.WithContext(ctx).
		Preload("Cycle").
		Where("user_id = ? AND cycle_id = ?", userID, cycleID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*AppraisalReview, error) {
	var review AppraisalReview
	err := r.db.WithContext(ctx).
		Preload("Cycle").
		Where("id = ? AND user_id = ?", id, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppraisalReview, error) {
	var reviews []*AppraisalReview
	err := r.db.WithContext(ctx).
		Preload("Cycle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// UpdateDraft writes only the employee-editable columns, and only while the
// review is not COMPLETED.
func (r *repository) UpdateDraft(ctx context.Context, review *AppraisalReview) error {
	res := r.db.WithContext(ctx).Model(&AppraisalReview{}).
		Where("id = ? AND user_id = ? AND status <> ?", review.ID, review.UserID, ReviewCompleted).
		Updates(map[string]interface{}{
			"self_review": review.SelfReview,
			"rating":      review.Rating,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCompleted
	}
	return nil
}

func (r *repository) MarkSubmitted(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&AppraisalReview{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, ReviewDraft).
		Updates(map[string]interface{}{
			"status":       ReviewInProgress,
			"submitted_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotDraft
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[ReviewStatus]int, error) {
	var rows []struct {
		Status ReviewStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&AppraisalReview{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[ReviewStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = int(row.Count)
	}
	return out, nil
}

func (r *repository) FinalRatings(ctx context.Context, userID uuid.UUID) (*RatingSummary, error) {
	rated := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&AppraisalReview{}).
			Where("user_id = ? AND status = ? AND final_rating IS NOT NULL", userID, ReviewCompleted)
	}

	var avg sql.NullFloat64
	if err := rated().Select("AVG(final_rating)").Row().Scan(&avg); err != nil {
		return nil, err
	}

	summary := &RatingSummary{Average: avg.Float64}
	var latest AppraisalReview
	err := rated().Order("completed_at DESC, updated_at DESC").First(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, err
	default:
		summary.Latest = latest.FinalRating
	}
	return summary, nil
}

package timesheet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("timesheet not found")
	ErrEntryNotFound = errors.New("timesheet entry not found")
	ErrNotDraft      = errors.New("timesheet is not a draft")
)

type Repository interface {
	// FindOrCreateWeek returns the user's timesheet starting at weekStart,
	// inserting an empty draft if none exists.
	FindOrCreateWeek(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time) (*Timesheet, error)
	FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Timesheet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Timesheet, error)
	FindEntryOwned(ctx context.Context, entryID, userID uuid.UUID) (*TimesheetEntry, error)

	// Entry mutations persist the change and the parent's recomputed total
	// in one transaction and return the new total.
	CreateEntry(ctx context.Context, entry *TimesheetEntry) (float64, error)
	SaveEntry(ctx context.Context, entry *TimesheetEntry) (float64, error)
	DeleteEntry(ctx context.Context, entry *TimesheetEntry) (float64, error)

	MarkSubmitted(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	SumHours(ctx context.Context, userID uuid.UUID, from, to time.Time, billableOnly bool) (float64, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[TimesheetStatus]int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withEntries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC, created_at ASC")
	})
}

func (r *repository) FindOrCreateWeek(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time) (*Timesheet, error) {
	fresh := &Timesheet{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Status:    StatusDraft,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(fresh).Error
	if err != nil {
		return nil, err
	}

	var ts Timesheet
	err = r.withEntries(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&ts).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *repository) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*Timesheet, error) {
	var ts Timesheet
	err := r.withEntries(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ts).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ts, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Timesheet, error) {
	var list []*Timesheet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start DESC").
		Find(&list).Error
	return list, err
}

// FindEntryOwned resolves an entry through its parent's owner.
func (r *repository) FindEntryOwned(ctx context.Context, entryID, userID uuid.UUID) (*TimesheetEntry, error) {
	var entry TimesheetEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN timesheets ON timesheets.id = timesheet_entries.timesheet_id").
		Where("timesheet_entries.id = ? AND timesheets.user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repository) CreateEntry(ctx context.Context, entry *TimesheetEntry) (float64, error) {
	return r.mutateEntry(ctx, entry.TimesheetID, func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

func (r *repository) SaveEntry(ctx context.Context, entry *TimesheetEntry) (float64, error) {
	return r.mutateEntry(ctx, entry.TimesheetID, func(tx *gorm.DB) error {
		return tx.Save(entry).Error
	})
}

func (r *repository) DeleteEntry(ctx context.Context, entry *TimesheetEntry) (float64, error) {
	return r.mutateEntry(ctx, entry.TimesheetID, func(tx *gorm.DB) error {
		return tx.Delete(&TimesheetEntry{}, "id = ?", entry.ID).Error
	})
}

func (r *repository) mutateEntry(ctx context.Context, timesheetID uuid.UUID, fn func(tx *gorm.DB) error) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return err
		}
		row := tx.Model(&TimesheetEntry{}).
			Select("COALESCE(SUM(hours), 0)").
			Where("timesheet_id = ?", timesheetID).
			Row()
		if err := row.Scan(&total); err != nil {
			return err
		}
		return tx.Model(&Timesheet{}).
			Where("id = ?", timesheetID).
			Update("total_hours", total).Error
	})
	return total, err
}

// MarkSubmitted moves a draft to SUBMITTED. The status guard is part of the
// UPDATE so two concurrent submits cannot both succeed.
func (r *repository) MarkSubmitted(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&Timesheet{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, StatusDraft).
		Updates(map[string]interface{}{
			"status":       StatusSubmitted,
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

func (r *repository) SumHours(ctx context.Context, userID uuid.UUID, from, to time.Time, billableOnly bool) (float64, error) {
	q := r.db.WithContext(ctx).Model(&TimesheetEntry{}).
		Select("COALESCE(SUM(timesheet_entries.hours), 0)").
		Joins("JOIN timesheets ON timesheets.id = timesheet_entries.timesheet_id").
		Where("timesheets.user_id = ? AND timesheet_entries.date >= ? AND timesheet_entries.date <= ?", userID, from, to)
	if billableOnly {
		q = q.Where("timesheet_entries.billable = ?", true)
	}
	var sum float64
	if err := q.Row().Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *repository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[TimesheetStatus]int, error) {
	var rows []struct {
		Status TimesheetStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Timesheet{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[TimesheetStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = int(row.Count)
	}
	return out, nil
}

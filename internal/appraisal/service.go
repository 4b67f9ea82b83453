package appraisal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

var (
	ErrReviewNotFound   = action.NotFound("appraisal review")
	ErrCycleNotFound    = &action.Error{Kind: action.KindNotFound, Message: "no active appraisal cycle"}
	ErrReviewCompleted  = action.InvalidState("completed appraisals can no longer be changed")
	ErrAlreadySubmitted = action.InvalidState("only draft appraisals can be submitted")
	ErrEmptySelfReview  = action.Validation("self review is required before submitting")
)

var affectedViews = []string{
	cache.PathAppraisals,
	cache.PathDashboard,
	cache.PathPerformance,
}

type Service interface {
	GetCurrentReview(ctx context.Context) (*AppraisalReview, error)
	SaveDraft(ctx context.Context, id uuid.UUID, dto SaveDraftDTO) (*AppraisalReview, error)
	SubmitReview(ctx context.Context, id uuid.UUID) (*AppraisalReview, error)
	ListReviews(ctx context.Context) ([]*AppraisalReview, error)
	Stats(ctx context.Context) (*AppraisalStats, error)
}

type service struct {
	repo        Repository
	invalidator cache.Invalidator
	now         func() time.Time
}

func NewService(repo Repository, invalidator cache.Invalidator) Service {
	return &service{repo: repo, invalidator: invalidator, now: time.Now}
}

func (s *service) caller(ctx context.Context, log logrus.FieldLogger, act string) (uuid.UUID, error) {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		log.Warnf("Attempt to %s without authentication", act)
		return uuid.Nil, action.Unauthorized()
	}
	return userID, nil
}

func (s *service) findOwned(ctx context.Context, log logrus.FieldLogger, id, userID uuid.UUID) (*AppraisalReview, error) {
	review, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithField("review_id", id).Warn("Appraisal review not found or does not belong to user")
			return nil, ErrReviewNotFound
		}
		log.WithError(err).Error("Error finding appraisal review")
		return nil, err
	}
	return review, nil
}

func (s *service) GetCurrentReview(ctx context.Context) (*AppraisalReview, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read current appraisal")
	if err != nil {
		return nil, err
	}

	cycle, err := s.repo.ActiveCycle(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveCycle) {
			return nil, ErrCycleNotFound
		}
		log.WithError(err).Error("Failed to load active appraisal cycle")
		return nil, err
	}

	review, err := s.repo.FindOrCreateReview(ctx, userID, cycle.ID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch or create appraisal review")
		return nil, err
	}
	return review, nil
}

func (s *service) SaveDraft(ctx context.Context, id uuid.UUID, dto SaveDraftDTO) (*AppraisalReview, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "save appraisal draft")
	if err != nil {
		return nil, err
	}

	review, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if review.Status == ReviewCompleted {
		return nil, ErrReviewCompleted
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	if dto.SelfReview != nil {
		review.SelfReview = *dto.SelfReview
	}
	if dto.Rating != nil {
		review.Rating = dto.Rating
	}

	if err := s.repo.UpdateDraft(ctx, review); err != nil {
		if errors.Is(err, ErrCompleted) {
			return nil, ErrReviewCompleted
		}
		log.WithError(err).Error("Failed to save appraisal draft")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	return s.findOwned(ctx, log, id, userID)
}

func (s *service) SubmitReview(ctx context.Context, id uuid.UUID) (*AppraisalReview, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "submit appraisal")
	if err != nil {
		return nil, err
	}

	review, err := s.findOwned(ctx, log, id, userID)
	if err != nil {
		return nil, err
	}
	if review.Status != ReviewDraft {
		return nil, ErrAlreadySubmitted
	}
	if strings.TrimSpace(review.SelfReview) == "" {
		return nil, ErrEmptySelfReview
	}

	if err := s.repo.MarkSubmitted(ctx, id, userID, s.now()); err != nil {
		if errors.Is(err, ErrNotDraft) {
			return nil, ErrAlreadySubmitted
		}
		log.WithError(err).Error("Failed to submit appraisal")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, affectedViews...)
	log.WithField("review_id", id).Info("Appraisal submitted")
	return s.findOwned(ctx, log, id, userID)
}

func (s *service) ListReviews(ctx context.Context) ([]*AppraisalReview, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "list appraisals")
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list appraisals")
		return nil, err
	}
	return reviews, nil
}

func (s *service) Stats(ctx context.Context) (*AppraisalStats, error) {
	log := config.WithContext(ctx)
	userID, err := s.caller(ctx, log, "read appraisal stats")
	if err != nil {
		return nil, err
	}

	var (
		byStatus map[ReviewStatus]int
		ratings  *RatingSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.repo.FinalRatings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to compute appraisal stats")
		return nil, err
	}

	stats := &AppraisalStats{
		Completed:          byStatus[ReviewCompleted],
		Pending:            byStatus[ReviewDraft] + byStatus[ReviewInProgress],
		AverageFinalRating: util.Round1(ratings.Average),
	}
	stats.Total = stats.Completed + stats.Pending
	return stats, nil
}

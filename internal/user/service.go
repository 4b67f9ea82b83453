package user

import (
	"context"
	"errors"

	"github.com/saulo-duarte/chronos-workspace/internal/action"
	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/cache"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
)

type UserService interface {
	GetMe(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error)
}

type userService struct {
	repo        UserRepository
	invalidator cache.Invalidator
}

func NewService(repo UserRepository, invalidator cache.Invalidator) UserService {
	return &userService{repo: repo, invalidator: invalidator}
}

// GetMe returns the caller's profile, provisioning it from the token identity
// on first access.
func (s *userService) GetMe(ctx context.Context) (*User, error) {
	log := config.WithContext(ctx)
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to read profile without authentication")
		return nil, action.Unauthorized()
	}
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, action.Unauthorized()
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to load user profile")
		return nil, err
	}

	role := claims.Role
	if role == "" {
		role = "employee"
	}
	u, err = s.repo.CreateIfMissing(ctx, &User{
		ID:    userID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	})
	if err != nil {
		log.WithError(err).Error("Failed to provision user profile")
		return nil, err
	}
	log.Info("User profile provisioned")
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error) {
	log := config.WithContext(ctx)
	if _, err := auth.CurrentUserID(ctx); err != nil {
		log.Warn("Attempt to update profile without authentication")
		return nil, action.Unauthorized()
	}
	if err := action.Validate(dto); err != nil {
		return nil, err
	}

	u, err := s.GetMe(ctx)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Department != nil {
		u.Department = *dto.Department
	}
	if dto.JobTitle != nil {
		u.JobTitle = *dto.JobTitle
	}
	if dto.Phone != nil {
		u.Phone = *dto.Phone
	}
	if dto.Timezone != nil {
		u.Timezone = *dto.Timezone
	}

	if err := s.repo.Update(ctx, u); err != nil {
		log.WithError(err).Error("Failed to update user profile")
		return nil, err
	}

	s.invalidator.Invalidate(ctx, cache.PathProfile, cache.PathDashboard)
	log.Info("User profile updated")
	return u, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/validation"
	"go.uber.org/zap"
)

type UserService struct {
	repo      repository.UserRepository
	validator *validation.SignupValidator
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo:      repo,
		validator: validation.NewSignupValidator(),
	}
}

// Signup validates req and stores the new user. Rejections come back as
// *ValidationError.
func (s *UserService) Signup(ctx context.Context, req domain.SignupRequest) error {
	msgs := s.validator.Validate(req)

	if req.Username != "" {
		lookup, err := s.repo.FindByUsername(ctx, req.Username)
		if err != nil {
			logger.FromContext(ctx).Error("failed to check username", zap.Error(err))
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		if lookup.Found {
			msgs = append([]string{validation.MsgUsernameTaken}, msgs...)
		}
	}

	if len(msgs) > 0 {
		logger.FromContext(ctx).Info("signup rejected", zap.Strings("errors", msgs))
		return &ValidationError{Messages: msgs}
	}

	if err := s.repo.Create(ctx, req.User()); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return &ValidationError{Messages: []string{validation.MsgUsernameTaken}}
		}
		logger.FromContext(ctx).Error("error saving user", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	logger.FromContext(ctx).Info("user signed up", zap.String("username", req.Username))
	return nil
}

// Signin compares the stored password as-is. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *UserService) Signin(ctx context.Context, req domain.SigninRequest) error {
	lookup, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		logger.FromContext(ctx).Error("error querying user", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !lookup.Found || lookup.User.Password != req.Password {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, username string) (domain.UserProfile, bool, error) {
	if username == "" {
		return domain.UserProfile{}, false, fmt.Errorf("%w: username", ErrMissingParameter)
	}

	lookup, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Error("failed to retrieve user data", zap.Error(err))
		return domain.UserProfile{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !lookup.Found {
		return domain.UserProfile{}, false, nil
	}
	return lookup.User.Profile(), true, nil
}

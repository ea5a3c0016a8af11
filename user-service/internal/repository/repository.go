package repository

import (
	"context"
	"errors"

	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
)

var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.UserLookup, error)
	// Create returns ErrDuplicateUsername when the username is already stored.
	Create(ctx context.Context, user domain.User) error
}

package repository

import (
	"context"

	"github.com/cityinfo-api/internal/domain"
)

// UserRepository looks up API users for authentication.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

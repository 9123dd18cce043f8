package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetByUsername returns ErrInvalidCredentials for unknown users so callers cannot tell
// a missing user from a wrong password.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, username, password_hash, first_name, last_name, city
		FROM users
		WHERE username = $1`, username)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		r.logger.Error("Failed to get user", zap.String("username", username), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

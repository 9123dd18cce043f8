package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cityinfo-api/internal/domain/repository"
	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/token"
	"github.com/cityinfo-api/internal/pkg/validator"
	"github.com/cityinfo-api/internal/usecase/dto"
)

// PasswordVerifier сравнивает пароль с сохранённым хешем
type PasswordVerifier interface {
	Verify(hash, password string) bool
}

// BcryptVerifier checks bcrypt hashes.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type AuthUseCase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	tokens   *token.Service
	logger   *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	tokens *token.Service,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Authenticate checks the credentials and issues a signed token describing the user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, req dto.AuthenticationRequest) (string, error) {
	if err := validator.Validate(req); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByUsername(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredentials) {
			uc.logger.Info("Authentication failed: unknown user", zap.String("username", req.UserName))
		}
		return "", err
	}

	if !uc.verifier.Verify(user.PasswordHash, req.Password) {
		uc.logger.Info("Authentication failed: wrong password", zap.String("username", req.UserName))
		return "", errors.ErrInvalidCredentials
	}

	signed, err := uc.tokens.Issue(token.Subject{
		UserID:     user.ID,
		GivenName:  user.FirstName,
		FamilyName: user.LastName,
		City:       user.City,
	})
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", errors.ErrInternalServer
	}

	uc.logger.Info("Token issued", zap.Int64("user_id", user.ID))
	return signed, nil
}

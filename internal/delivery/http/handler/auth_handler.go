package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/utils"
	"github.com/cityinfo-api/internal/usecase"
	"github.com/cityinfo-api/internal/usecase/dto"
)

// AuthHandler - выдача токенов
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Authenticate godoc
// @Summary Issue a bearer token
// @Description Validates the credentials and returns a signed token valid for one hour.
// @Tags Authentication
// @Accept json
// @Produce plain
// @Param request body dto.AuthenticationRequest true "Credentials"
// @Success 200 {string} string "Signed token"
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/authentication/authenticate [post]
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req dto.AuthenticationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Unreadable credentials body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidCredentials)
	}

	signed, err := h.authUC.Authenticate(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.SendString(signed)
}

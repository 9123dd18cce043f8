package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/token"
	"github.com/cityinfo-api/internal/pkg/utils"
)

// LocalClaims holds the validated *token.Claims of the request.
const LocalClaims = "claims"

const bearerPrefix = "Bearer "

// Authenticate requires a valid bearer token and stores its claims on the request.
func Authenticate(tokens *token.Service, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return unauthorized(c, `Bearer`)
		}

		claims, err := tokens.Validate(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			logger.Debug("Bearer token rejected", zap.String("path", c.Path()), zap.Error(err))
			if stderrors.Is(err, token.ErrExpiredToken) {
				return unauthorized(c, `Bearer error="invalid_token", error_description="The token expired"`)
			}
			return unauthorized(c, `Bearer error="invalid_token"`)
		}

		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireClaim allows the request only when the authenticated token carries key=value.
func RequireClaim(key, value string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return unauthorized(c, `Bearer`)
		}
		if got, ok := claims.Get(key); !ok || got != value {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by Authenticate, or nil.
func ClaimsFrom(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(LocalClaims).(*token.Claims)
	return claims
}

func unauthorized(c *fiber.Ctx, challenge string) error {
	c.Set(fiber.HeaderWWWAuthenticate, challenge)
	return utils.SendError(c, errors.ErrUnauthorized)
}

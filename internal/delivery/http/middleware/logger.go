package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/pkg/utils"
)

// RequestID assigns every request an id, reusing X-Request-ID when the client sends one.
func RequestID() fiber.Handler {
	return requestid.New()
}

// ErrorDetail lets SendError include the cause of 500 responses.
func ErrorDetail(expose bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(utils.LocalExposeErrors, expose)
		return c.Next()
	}
}

// Logger - middleware логирования запросов
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("request_id", requestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}

		cause := chainErr
		if cause == nil {
			cause, _ = c.Locals(utils.LocalError).(error)
		}
		if cause != nil {
			fields = append(fields, zap.Error(cause))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("Request failed", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request handled", fields...)
		}

		return chainErr
	}
}

func requestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cityinfo-api/internal/pkg/errors"
)

// paramID parses a positive int64 route parameter.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.ErrInvalidRequest.WithMessage("Invalid " + name)
	}
	return id, nil
}

// bodyError describes a request body that could not be parsed.
func bodyError(err error) error {
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"body": err.Error()})
}

package utils

import (
	"encoding/xml"

	"github.com/gofiber/fiber/v2"

	"github.com/cityinfo-api/internal/pkg/errors"
)

const (
	MIMEApplicationJSON = fiber.MIMEApplicationJSON
	MIMEApplicationXML  = fiber.MIMEApplicationXML

	// LocalError holds the error rendered for the request, for the request logger.
	LocalError = "response_error"
	// LocalExposeErrors marks requests whose 500 responses may include the cause.
	LocalExposeErrors = "expose_errors"
)

type ErrorResponse struct {
	XMLName xml.Name         `json:"-" xml:"ErrorResponse"`
	Error   *errors.AppError `json:"error" xml:"Error"`
}

// Negotiate picks the response format from the Accept header. JSON is used when the
// client states no preference; an empty result means nothing acceptable is offered.
func Negotiate(c *fiber.Ctx) string {
	return c.Accepts(MIMEApplicationJSON, MIMEApplicationXML)
}

// Respond writes body with status in the negotiated format, or 406.
func Respond(c *fiber.Ctx, status int, body interface{}) error {
	switch Negotiate(c) {
	case MIMEApplicationJSON:
		return c.Status(status).JSON(body)
	case MIMEApplicationXML:
		return c.Status(status).XML(body)
	default:
		return SendError(c, errors.ErrNotAcceptable)
	}
}

// SendSuccess writes a 200 response.
func SendSuccess(c *fiber.Ctx, body interface{}) error {
	return Respond(c, fiber.StatusOK, body)
}

// SendError renders err as an error envelope. Errors that are not AppErrors become a
// generic 500; their text is only exposed when the request allows it.
func SendError(c *fiber.Ctx, err error) error {
	c.Locals(LocalError, err)

	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
		if expose, _ := c.Locals(LocalExposeErrors).(bool); expose {
			appErr = appErr.WithDetails(map[string]interface{}{"error": err.Error()})
		}
	}

	resp := ErrorResponse{Error: appErr}
	if Negotiate(c) == MIMEApplicationXML {
		return c.Status(appErr.StatusCode).XML(resp)
	}
	return c.Status(appErr.StatusCode).JSON(resp)
}

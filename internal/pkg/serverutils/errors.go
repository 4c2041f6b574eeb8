package serverutils

import (
	"errors"

	"survey-interview-be/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors bubbling out of handlers to HTTP
// status codes. Session-not-found is a normal outcome for first-time visitors,
// so it is returned without noise; everything unexpected becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError

		switch {
		case errors.Is(err, entity.ErrSessionNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, entity.ErrMalformedPayload):
			code = fiber.StatusBadRequest
		case errors.Is(err, entity.ErrTranscriptUnavailable):
			code = fiber.StatusBadGateway
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			code = fiber.StatusBadRequest
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(err.Error()))
	}
}

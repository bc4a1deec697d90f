package serverutils

import (
	"errors"

	"worldstate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto HTTP statuses so
// controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
		case errors.Is(err, service.ErrItemNotFound),
			errors.Is(err, service.ErrQuestNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, service.ErrConfirmationRequired):
			status = fiber.StatusConflict
		case errors.Is(err, service.ErrSlotEmpty),
			errors.Is(err, service.ErrInvalidSlot),
			errors.Is(err, service.ErrInsufficientQuantity),
			errors.Is(err, service.ErrQuestNotAcceptable):
			status = fiber.StatusUnprocessableEntity
		case errors.Is(err, service.ErrStateUnavailable):
			status = fiber.StatusPreconditionFailed
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}

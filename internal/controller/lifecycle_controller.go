package controller

import (
	"worldstate-be/internal/dto"
	"worldstate-be/internal/pkg/serverutils"
	"worldstate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ILifecycleController is the host bridge: the chat host posts lifecycle
// events here and they land on the internal bus.
type ILifecycleController interface {
	RegisterRoutes(r fiber.Router)
	ReplyReceived(ctx *fiber.Ctx) error
	ConversationChanged(ctx *fiber.Ctx) error
}

type lifecycleController struct {
	publisher service.IPublisherService
}

func NewLifecycleController(publisher service.IPublisherService) ILifecycleController {
	return &lifecycleController{publisher: publisher}
}

func (c *lifecycleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lifecycle/v1")
	h.Post("reply-received", c.ReplyReceived)
	h.Post("conversation-changed", c.ConversationChanged)
}

func (c *lifecycleController) ReplyReceived(ctx *fiber.Ctx) error {
	var req dto.LifecycleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.publisher.PublishReplyReceived(ctx.Context(), req.ConversationID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Event queued", nil))
}

func (c *lifecycleController) ConversationChanged(ctx *fiber.Ctx) error {
	var req dto.LifecycleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.publisher.PublishConversationChanged(ctx.Context(), req.ConversationID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Event queued", nil))
}

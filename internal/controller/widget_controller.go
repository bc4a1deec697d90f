package controller

import (
	"worldstate-be/internal/entity"
	"worldstate-be/internal/pkg/serverutils"
	"worldstate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWidgetController interface {
	RegisterRoutes(r fiber.Router)
	GetView(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
}

type widgetController struct {
	service service.IWidgetService
}

func NewWidgetController(service service.IWidgetService) IWidgetController {
	return &widgetController{service: service}
}

func (c *widgetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/widgets/v1")
	h.Get(":conversation/:widget", c.GetView)
	h.Post(":conversation/refresh", c.Refresh)
}

// GetView is the explicit-open path: the host UI asks for a fresh view when
// the user opens a widget.
func (c *widgetController) GetView(ctx *fiber.Ctx) error {
	conversationID := ctx.Params("conversation")
	widget := entity.WidgetID(ctx.Params("widget"))

	res, err := c.service.GetView(ctx.Context(), conversationID, widget)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get widget view", res))
}

// Refresh forces a change-detection pass for every widget.
func (c *widgetController) Refresh(ctx *fiber.Ctx) error {
	conversationID := ctx.Params("conversation")

	if err := c.service.RefreshAll(ctx.Context(), conversationID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Refresh pass completed", nil))
}

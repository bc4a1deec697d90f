package controller

import (
	"worldstate-be/internal/dto"
	"worldstate-be/internal/pkg/serverutils"
	"worldstate-be/internal/repository/contract"
	"worldstate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMutationController interface {
	RegisterRoutes(r fiber.Router)
	Equip(ctx *fiber.Ctx) error
	Unequip(ctx *fiber.Ctx) error
	Consume(ctx *fiber.Ctx) error
	AcceptQuest(ctx *fiber.Ctx) error
	AuditTrail(ctx *fiber.Ctx) error
}

type mutationController struct {
	service service.IMutationService
	audits  contract.IAuditRepository
}

func NewMutationController(service service.IMutationService, audits contract.IAuditRepository) IMutationController {
	return &mutationController{service: service, audits: audits}
}

func (c *mutationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mutations/v1")
	h.Post("equip", c.Equip)
	h.Post("unequip", c.Unequip)
	h.Post("consume", c.Consume)
	h.Post("accept-quest", c.AcceptQuest)
	h.Get("audit/:conversation", c.AuditTrail)
}

func (c *mutationController) Equip(ctx *fiber.Ctx) error {
	var req dto.EquipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.EquipItem(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Item equipped", res))
}

func (c *mutationController) Unequip(ctx *fiber.Ctx) error {
	var req dto.UnequipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UnequipSlot(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Slot cleared", res))
}

func (c *mutationController) Consume(ctx *fiber.Ctx) error {
	var req dto.ConsumeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ConsumeItem(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Item consumed", res))
}

func (c *mutationController) AcceptQuest(ctx *fiber.Ctx) error {
	var req dto.AcceptQuestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AcceptQuest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quest accepted", res))
}

func (c *mutationController) AuditTrail(ctx *fiber.Ctx) error {
	conversationID := ctx.Params("conversation")
	limit := ctx.QueryInt("limit", 50)

	rows, err := c.audits.FindByConversation(ctx.Context(), conversationID, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get audit trail", dto.AuditListResponse{
		ConversationID: conversationID,
		Rows:           rows,
	}))
}

// FILE: internal/controller/review_controller.go
package controller

import (
	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	ReviewDocument(ctx *fiber.Ctx) error
	ListAbandonments(ctx *fiber.Ctx) error
	MarkFollowup(ctx *fiber.Ctx) error
}

type reviewController struct {
	documentService    service.IDocumentService
	abandonmentService service.IAbandonmentService
}

func NewReviewController(
	documentService service.IDocumentService,
	abandonmentService service.IAbandonmentService,
) IReviewController {
	return &reviewController{
		documentService:    documentService,
		abandonmentService: abandonmentService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Patch("/documents/:id", c.ReviewDocument)
	h.Get("/abandonments", c.ListAbandonments)
	h.Post("/abandonments/:id/followup", c.MarkFollowup)
}

func (c *reviewController) ReviewDocument(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.ReviewDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.Review(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document reviewed", res))
}

func (c *reviewController) MarkFollowup(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid abandonment id")
	}

	var req dto.MarkFollowupRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.FollowupType == "" {
		req.FollowupType = "email"
	}

	if err := c.abandonmentService.MarkFollowupSent(ctx.Context(), id, req.FollowupType); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Followup recorded", nil))
}

func (c *reviewController) ListAbandonments(ctx *fiber.Ctx) error {
	pendingOnly := ctx.QueryBool("pending", false)

	res, err := c.abandonmentService.List(ctx.Context(), pendingOnly)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Abandonments", res))
}

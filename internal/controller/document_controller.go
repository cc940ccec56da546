// FILE: internal/controller/document_controller.go
package controller

import (
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	ListTypes(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	UploadAsset(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type documentController struct {
	service service.IDocumentService
}

func NewDocumentController(service service.IDocumentService) IDocumentController {
	return &documentController{service: service}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Get("/types", c.ListTypes)
	h.Post("/upload", c.Upload)
	h.Post("/assets", c.UploadAsset)
	h.Get("/list", c.List)
}

func (c *documentController) ListTypes(ctx *fiber.Ctx) error {
	res, err := c.service.ListTypes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document types", res))
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	typeCode := ctx.FormValue("document_type")
	if typeCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "document_type is required")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	res, err := c.service.Upload(ctx.Context(), token, typeCode, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document uploaded", res))
}

func (c *documentController) UploadAsset(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	kind := ctx.FormValue("kind")
	if kind == "" {
		return fiber.NewError(fiber.StatusBadRequest, "kind is required")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	res, err := c.service.UploadAsset(ctx.Context(), token, kind, file)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Asset uploaded", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	res, err := c.service.List(ctx.Context(), token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Uploaded documents", res))
}

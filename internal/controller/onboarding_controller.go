// FILE: internal/controller/onboarding_controller.go
package controller

import (
	"strconv"

	"sbl-onboarding-be/internal/dto"
	"sbl-onboarding-be/internal/pkg/serverutils"
	"sbl-onboarding-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	Initialize(ctx *fiber.Ctx) error
	GetProgress(ctx *fiber.Ctx) error
	SaveStep(ctx *fiber.Ctx) error
	RegisterContact(ctx *fiber.Ctx) error
	PreviousStep(ctx *fiber.Ctx) error
	CompletionSummary(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service service.IOnboardingService
}

func NewOnboardingController(service service.IOnboardingService) IOnboardingController {
	return &onboardingController{service: service}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/onboarding/v1")
	h.Post("/initialize", c.Initialize)
	h.Get("/progress", c.GetProgress)
	h.Post("/steps/:step", c.SaveStep)
	h.Post("/contact", c.RegisterContact)
	h.Post("/previous", c.PreviousStep)
	h.Get("/summary", c.CompletionSummary)
	h.Post("/finalize", c.Finalize)
}

// sessionToken reads the token from the header, falling back to the query
// param used by resume links.
func sessionToken(ctx *fiber.Ctx) string {
	if token := ctx.Get("X-Session-Token"); token != "" {
		return token
	}
	return ctx.Query("token")
}

func (c *onboardingController) Initialize(ctx *fiber.Ctx) error {
	var req dto.InitializeRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.UserAgent = ctx.Get("User-Agent")

	res, err := c.service.Initialize(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session initialized", res))
}

func (c *onboardingController) GetProgress(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	res, err := c.service.GetProgress(ctx.Context(), token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Current progress", res))
}

func (c *onboardingController) SaveStep(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	step, err := strconv.Atoi(ctx.Params("step"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "step must be a number")
	}

	var req dto.SaveStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Step = step
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveStep(ctx.Context(), token, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Step saved", res))
}

func (c *onboardingController) RegisterContact(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	var req dto.RegisterContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RegisterContact(ctx.Context(), token, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contact registered", res))
}

func (c *onboardingController) PreviousStep(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	res, err := c.service.PreviousStep(ctx.Context(), token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Moved to previous step", res))
}

func (c *onboardingController) CompletionSummary(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	res, err := c.service.CompletionSummary(ctx.Context(), token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Completion summary", res))
}

func (c *onboardingController) Finalize(ctx *fiber.Ctx) error {
	token := sessionToken(ctx)
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session token is required")
	}

	res, err := c.service.Finalize(ctx.Context(), token)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Application finalized", res))
}

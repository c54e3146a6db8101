package controller

import (
	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMigrationController interface {
	RegisterRoutes(r fiber.Router)
	Import(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type migrationController struct {
	migrationService service.IMigrationService
	jwtMiddleware    fiber.Handler
}

func NewMigrationController(migrationService service.IMigrationService, jwtMiddleware fiber.Handler) IMigrationController {
	return &migrationController{
		migrationService: migrationService,
		jwtMiddleware:    jwtMiddleware,
	}
}

func (c *migrationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/migration")
	h.Use(c.jwtMiddleware)
	h.Post("import", c.Import)
	h.Get("export", c.Export)
	h.Get("stats", c.Stats)
	h.Post("reset", c.Reset)
}

func (c *migrationController) Import(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.ImportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.migrationService.Import(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *migrationController) Export(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.migrationService.Export(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *migrationController) Stats(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.migrationService.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *migrationController) Reset(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.migrationService.Reset(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

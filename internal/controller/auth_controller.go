package controller

import (
	"time"

	"github.com/tomymaritano/viny-sub011/internal/dto"
	"github.com/tomymaritano/viny-sub011/internal/pkg/serverutils"
	"github.com/tomymaritano/viny-sub011/internal/service"

	"github.com/gofiber/fiber/v2"
)

const refreshCookieName = "refreshToken"

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
	VerifyToken(ctx *fiber.Ctx) error
}

type authController struct {
	authService     service.IAuthService
	jwtMiddleware   fiber.Handler
	rateLimiter     fiber.Handler
	refreshTokenTTL time.Duration
	secureCookies   bool
}

func NewAuthController(
	authService service.IAuthService,
	jwtMiddleware fiber.Handler,
	rateLimiter fiber.Handler,
	refreshTokenTTL time.Duration,
	secureCookies bool,
) IAuthController {
	return &authController{
		authService:     authService,
		jwtMiddleware:   jwtMiddleware,
		rateLimiter:     rateLimiter,
		refreshTokenTTL: refreshTokenTTL,
		secureCookies:   secureCookies,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("register", c.rateLimiter, c.Register)
	h.Post("login", c.rateLimiter, c.Login)
	h.Post("refresh-token", c.Refresh)
	h.Post("logout", c.jwtMiddleware, c.Logout)
	h.Post("change-password", c.jwtMiddleware, c.ChangePassword)
	h.Get("profile", c.jwtMiddleware, c.Profile)
	h.Get("verify-token", c.jwtMiddleware, c.VerifyToken)
}

// setRefreshCookie stores the refresh token where the browser will send it
// back only to this origin's requests.
func (c *authController) setRefreshCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/auth",
		MaxAge:   int(c.refreshTokenTTL.Seconds()),
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (c *authController) clearRefreshCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.setRefreshCookie(ctx, res.RefreshToken)
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.setRefreshCookie(ctx, res.RefreshToken)
	return ctx.JSON(res)
}

// Refresh accepts the token from the body for API clients and falls back to
// the cookie for browser clients.
func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	_ = ctx.BodyParser(&req)

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken = ctx.Cookies(refreshCookieName)
	}
	if refreshToken == "" {
		return serverutils.NewUnauthorizedError("Missing refresh token")
	}

	res, err := c.authService.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	c.setRefreshCookie(ctx, res.RefreshToken)
	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	if err := c.authService.Logout(ctx.Context(), userId); err != nil {
		return err
	}

	c.clearRefreshCookie(ctx)
	return ctx.JSON(fiber.Map{"message": "Logged out"})
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return err
	}

	c.clearRefreshCookie(ctx)
	return ctx.JSON(fiber.Map{"message": "Password changed, please log in again"})
}

func (c *authController) Profile(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.authService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) VerifyToken(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.authService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"valid": true, "user": res})
}

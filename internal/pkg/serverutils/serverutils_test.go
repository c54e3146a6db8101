package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/test", handler)
	return app
}

func decodeBody(t *testing.T, r io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestErrorHandlerMapsAppError(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return NewNotFoundError("Note not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Note not found", body["message"])
}

func TestErrorHandlerMapsValidationErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Color string `validate:"omitempty,hexcolor6"`
	}

	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ValidateRequest(payload{Email: "not-an-email", Color: "red"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "validation_error", body["error"])
	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	assert.Len(t, details, 2)
}

func TestErrorHandlerHidesInternals(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "internal_error", body["error"])
	assert.NotContains(t, body["message"], "connection refused")
}

func TestHexColor6Validation(t *testing.T) {
	type payload struct {
		Color string `validate:"hexcolor6"`
	}

	assert.NoError(t, ValidateRequest(payload{Color: "#268bd2"}))
	assert.NoError(t, ValidateRequest(payload{Color: "#ABCDEF"}))
	assert.Error(t, ValidateRequest(payload{Color: "268bd2"}))
	assert.Error(t, ValidateRequest(payload{Color: "#268bd"}))
	assert.Error(t, ValidateRequest(payload{Color: "#268bd2ff"}))
	assert.Error(t, ValidateRequest(payload{Color: "#26gbd2"}))
}

func signTestToken(t *testing.T, secret, tokenType string, userId uuid.UUID, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"type":    tokenType,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJwtMiddleware(t *testing.T) {
	const secret = "test-secret"
	userId := uuid.New()

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/protected", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"userId": UserID(ctx).String()})
	})

	t.Run("valid token passes and exposes the user id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, "access", userId, time.Minute))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		assert.Equal(t, userId.String(), body["userId"])
	})

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", "access", userId, time.Minute))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("refresh token rejected on access routes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, "refresh", userId, time.Minute))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, secret, "access", userId, -time.Minute))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestRateLimiterConcurrentTakes(t *testing.T) {
	const (
		max     = 5
		callers = 50
	)
	limiter := NewRateLimiter(max, time.Minute)

	var wg sync.WaitGroup
	var allowed int64
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.take("same-client"); ok {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	// No lost increments: exactly the budget passes, everything else is
	// rejected, and the very next attempt still is.
	assert.Equal(t, int64(max), allowed)
	ok, retryAfter := limiter.take("same-client")
	assert.False(t, ok)
	assert.GreaterOrEqual(t, retryAfter, 1)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Post("/login", limiter.Middleware(), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "rate_limited", body["error"])
}

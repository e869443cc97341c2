package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService("secret", "GALEANA")
	m := NewMiddleware("*")

	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("role")})
	})
	app.Delete("/admin", m.AuthMiddleware(jwtService), m.OnlyAllow(domain.RoleSupervisor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, jwtService
}

func bearer(t *testing.T, svc jwt.JWTService, role string) string {
	t.Helper()
	token, err := svc.GenerateToken("op-1", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	app, svc := newApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, domain.ErrTokenNotFound.Error(), body.Error)

	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t, svc, domain.RoleOperador))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "op-1", me["user_id"])
	assert.Equal(t, domain.RoleOperador, me["role"])
}

func TestOnlyAllow(t *testing.T) {
	app, svc := newApp(t)

	req := httptest.NewRequest(fiber.MethodDelete, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t, svc, domain.RoleOperador))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodDelete, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t, svc, domain.RoleSupervisor))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

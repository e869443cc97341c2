package middleware

import (
	"strings"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OnlyAllow(roles ...string) fiber.Handler
	}

	middleware struct {
		allowedOrigins string
	}
)

func NewMiddleware(allowedOrigins string) Middleware {
	return &middleware{
		allowedOrigins: allowedOrigins,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware verifies the bearer token and stores user_id and role in locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		userID, role, err := jwtService.GetSubjectByToken(strings.TrimSpace(token))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

func (m *middleware) OnlyAllow(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}
}

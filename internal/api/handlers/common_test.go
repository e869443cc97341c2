package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/internal/utils"
	"galeana-pepper/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp stands in for the auth middleware by setting the actor directly.
func newTestApp() *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "op-7")
		c.Locals("role", domain.RoleOperador)
		return c.Next()
	})
	return app
}

func validatorForTest() *validator.Validate {
	utils.InitValidator()
	return utils.Validate
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, presenters.Response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out presenters.Response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrProductoNotFound, fiber.StatusNotFound},
		{fmt.Errorf("lookup: %w", domain.ErrTanqueNotFound), fiber.StatusNotFound},
		{domain.ErrInvalidProductState, fiber.StatusConflict},
		{domain.ErrDescargaEnCurso, fiber.StatusConflict},
		{domain.ErrEmbarqueAlreadyExists, fiber.StatusConflict},
		{domain.ErrTareExceedsGross, fiber.StatusBadRequest},
		{storage.ErrFileTypeNotAllowed, fiber.StatusBadRequest},
		{storage.ErrStorageDisabled, fiber.StatusServiceUnavailable},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, errorStatus(tc.err), tc.err.Error())
	}
}

func TestParseFolio(t *testing.T) {
	app := fiber.New()
	app.Get("/:folio", func(c *fiber.Ctx) error {
		folio, err := parseFolio(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		return c.SendString(fmt.Sprint(folio))
	})

	for target, want := range map[string]int{
		"/12":   fiber.StatusOK,
		"/0":    fiber.StatusBadRequest,
		"/-3":   fiber.StatusBadRequest,
		"/abc":  fiber.StatusBadRequest,
		"/0012": fiber.StatusOK,
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, target)
	}
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		page, limit := parsePagination(c, 20)
		return c.SendString(fmt.Sprintf("%d/%d", page, limit))
	})

	for target, want := range map[string]string{
		"/":                          "1/20",
		"/?page=3&limit=5":           "3/5",
		"/?page=-1&limit=abc":        "1/20",
		"/?limit=5000":               fmt.Sprintf("1/%d", domain.MaxPageLimit),
		"/?page=9223372036854775807": fmt.Sprintf("%d/20", domain.MaxPage),
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(body), target)
	}
}

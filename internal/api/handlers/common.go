package handlers

import (
	"errors"
	"strconv"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

var (
	notFoundErrors = []error{
		domain.ErrProductoNotFound,
		domain.ErrProveedorNotFound,
		domain.ErrTanqueNotFound,
		domain.ErrNoDescargaActiva,
	}
	conflictErrors = []error{
		domain.ErrInvalidProductState,
		domain.ErrProveedorAlreadyExists,
		domain.ErrProveedorInUse,
		domain.ErrDescargaEnCurso,
		domain.ErrTanqueAlreadyAssigned,
		domain.ErrTanqueAlreadyExists,
		domain.ErrEmbarqueAlreadyExists,
	}
	badRequestErrors = []error{
		domain.ErrInvalidFolio,
		domain.ErrInvalidEstado,
		domain.ErrCamposRequeridos,
		domain.ErrFotoRequerida,
		domain.ErrPesoInvalido,
		domain.ErrTareExceedsGross,
		domain.ErrDescargaNoIniciada,
		domain.ErrComentarioRequerido,
		domain.ErrProcesoNoIniciado,
		domain.ErrPorcentajeSalInvalido,
		domain.ErrLitrosInvalidos,
		domain.ErrHoraSalidaInvalida,
		storage.ErrFileTypeNotAllowed,
	}
)

func errorStatus(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	case isAny(err, conflictErrors):
		return fiber.StatusConflict
	case isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	case errors.Is(err, storage.ErrStorageDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// failed answers with the status that matches err.
func failed(c *fiber.Ctx, message string, err error) error {
	return presenters.ErrorResponse(c, errorStatus(err), message, err)
}

func actor(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func parseFolio(c *fiber.Ctx) (uint, error) {
	folio, err := strconv.ParseUint(c.Params("folio"), 10, 32)
	if err != nil || folio == 0 {
		return 0, domain.ErrInvalidFolio
	}
	return uint(folio), nil
}

func parsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	page := parsePage(c)

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}
	return page, limit
}

func parsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		return 1
	}
	return domain.ClampPage(page)
}

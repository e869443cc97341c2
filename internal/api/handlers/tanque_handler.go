package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/tanque"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type (
	TanqueHandler interface {
		GetTanques(c *fiber.Ctx) error
		CreateTanque(c *fiber.Ctx) error
		AsignarTanque(c *fiber.Ctx) error
		StreamTanques(c *fiber.Ctx) error
	}

	tanqueHandler struct {
		tanqueService tanque.TanqueService
		validator     *validator.Validate
		pingInterval  time.Duration
	}
)

func NewTanqueHandler(tanqueService tanque.TanqueService, validator *validator.Validate) TanqueHandler {
	return &tanqueHandler{
		tanqueService: tanqueService,
		validator:     validator,
		pingInterval:  15 * time.Second,
	}
}

func (h *tanqueHandler) GetTanques(c *fiber.Ctx) error {
	tanques, err := h.tanqueService.GetTanques(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetTanques, err)
	}

	return presenters.SuccessResponse(c, tanques, fiber.StatusOK, domain.MessageSuccessGetTanques)
}

func (h *tanqueHandler) CreateTanque(c *fiber.Ctx) error {
	req := new(domain.CreateTanqueRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTanque, err)
	}

	resp, err := h.tanqueService.CreateTanque(c.Context(), *req)
	if err != nil {
		return failed(c, domain.MessageFailedCreateTanque, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateTanque)
}

func (h *tanqueHandler) AsignarTanque(c *fiber.Ctx) error {
	req := new(domain.AsignarTanqueRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAsignarTanque, err)
	}

	resp, err := h.tanqueService.AsignarTanque(c.Context(), *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedAsignarTanque, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessAsignarTanque)
}

// StreamTanques sends the current tanks, then every update, as server-sent events.
func (h *tanqueHandler) StreamTanques(c *fiber.Ctx) error {
	tanques, err := h.tanqueService.GetTanques(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetTanques, err)
	}
	updates, cancel := h.tanqueService.Subscribe()

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		for _, t := range tanques {
			if err := writeEvent(w, "tanque", t); err != nil {
				return
			}
		}
		if err := w.Flush(); err != nil {
			return
		}

		ping := time.NewTicker(h.pingInterval)
		defer ping.Stop()
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				if err := writeEvent(w, "tanque", update); err != nil {
					return
				}
			case <-ping.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
			}
			// a failed flush means the client went away
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}

func writeEvent(w *bufio.Writer, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}

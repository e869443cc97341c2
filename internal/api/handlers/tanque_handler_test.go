package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"galeana-pepper/domain"
	"galeana-pepper/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTanqueService struct {
	tanques      []*domain.TanqueResponse
	updates      chan domain.TanqueResponse
	unsubscribed bool
	asignarErr   error
}

func (s *stubTanqueService) GetTanques(context.Context) ([]*domain.TanqueResponse, error) {
	return s.tanques, nil
}

func (s *stubTanqueService) CreateTanque(_ context.Context, req domain.CreateTanqueRequest) (*domain.TanqueResponse, error) {
	return &domain.TanqueResponse{ID: 9, Nombre: req.Nombre, Estado: entities.TanqueVerde}, nil
}

func (s *stubTanqueService) AsignarTanque(_ context.Context, req domain.AsignarTanqueRequest, _ string) (*domain.AsignacionResponse, error) {
	if s.asignarErr != nil {
		return nil, s.asignarErr
	}
	return &domain.AsignacionResponse{Folio: req.Folio, Estado: req.Estado}, nil
}

func (s *stubTanqueService) Subscribe() (<-chan domain.TanqueResponse, func()) {
	return s.updates, func() { s.unsubscribed = true }
}

func TestStreamTanques(t *testing.T) {
	svc := &stubTanqueService{
		tanques: []*domain.TanqueResponse{
			{ID: 1, Nombre: "Tanque A", Estado: entities.TanqueVerde, Litros: decimal.Zero},
		},
		updates: make(chan domain.TanqueResponse, 1),
	}
	svc.updates <- domain.TanqueResponse{ID: 1, Nombre: "Tanque A", Estado: entities.TanqueRojo, Litros: decimal.NewFromInt(800)}
	close(svc.updates)

	app := newTestApp()
	app.Get("/tanques/stream", NewTanqueHandler(svc, validatorForTest()).StreamTanques)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/tanques/stream", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(fiber.HeaderContentType))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := strings.Split(strings.TrimSpace(string(raw)), "\n\n")
	require.Len(t, events, 2)
	assert.Contains(t, events[0], `"estado":"verde"`)
	assert.Contains(t, events[1], "event: tanque")
	assert.Contains(t, events[1], `"estado":"rojo"`)
	assert.True(t, svc.unsubscribed)
}

func TestAsignarTanqueHandler(t *testing.T) {
	t.Run("invalid estado", func(t *testing.T) {
		app := newTestApp()
		app.Post("/tanques/asignar", NewTanqueHandler(&stubTanqueService{}, validatorForTest()).AsignarTanque)

		resp, _ := doJSON(t, app, http.MethodPost, "/tanques/asignar", domain.AsignarTanqueRequest{
			Folio: 1, TanqueID: 1, Estado: "azul", Litros: 10,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("already assigned", func(t *testing.T) {
		app := newTestApp()
		svc := &stubTanqueService{asignarErr: domain.ErrTanqueAlreadyAssigned}
		app.Post("/tanques/asignar", NewTanqueHandler(svc, validatorForTest()).AsignarTanque)

		resp, body := doJSON(t, app, http.MethodPost, "/tanques/asignar", domain.AsignarTanqueRequest{
			Folio: 1, TanqueID: 1, Estado: entities.TanqueAmarillo, Litros: 10,
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, domain.MessageFailedAsignarTanque, body.Message)
	})
}

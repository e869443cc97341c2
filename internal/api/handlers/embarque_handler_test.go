package handlers

import (
	"context"
	"net/http"
	"testing"

	"galeana-pepper/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubEmbarqueService struct {
	registered int
	total      int64
}

func (s *stubEmbarqueService) RegistrarSalida(_ context.Context, req domain.RegistrarSalidaRequest, actor string) (*domain.EmbarqueResponse, error) {
	s.registered++
	return &domain.EmbarqueResponse{Folio: req.Folio, HoraSalida: req.HoraSalida, Actor: actor}, nil
}

func (s *stubEmbarqueService) GetEmbarques(context.Context, int, int) ([]*domain.EmbarqueResponse, int64, error) {
	return []*domain.EmbarqueResponse{}, s.total, nil
}

func TestRegistrarSalidaHandler(t *testing.T) {
	cases := []struct {
		name string
		hora string
		tipo string
		want int
	}{
		{"valid", "07:45", "trailer", fiber.StatusCreated},
		{"hour out of range", "24:00", "trailer", fiber.StatusBadRequest},
		{"missing minutes", "7", "trailer", fiber.StatusBadRequest},
		{"tolva cannot ship", "07:45", "tolva", fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubEmbarqueService{}
			app := newTestApp()
			app.Post("/embarques", NewEmbarqueHandler(svc, validatorForTest()).RegistrarSalida)

			resp, _ := doJSON(t, app, http.MethodPost, "/embarques", domain.RegistrarSalidaRequest{
				Folio:      4,
				HoraSalida: tc.hora,
				TipoCamion: tc.tipo,
			})
			assert.Equal(t, tc.want, resp.StatusCode)
			if tc.want == fiber.StatusCreated {
				assert.Equal(t, 1, svc.registered)
			} else {
				assert.Zero(t, svc.registered)
			}
		})
	}
}

func TestGetEmbarquesPagination(t *testing.T) {
	app := newTestApp()
	app.Get("/embarques", NewEmbarqueHandler(&stubEmbarqueService{total: 45}, validatorForTest()).GetEmbarques)

	resp, body := doJSON(t, app, http.MethodGet, "/embarques?page=2&limit=20", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, ok := body.Data.(map[string]interface{})
	if assert.True(t, ok) {
		pagination := data["pagination"].(map[string]interface{})
		assert.EqualValues(t, 3, pagination["total_pages"])
		assert.EqualValues(t, 2, pagination["page"])
	}
}

func TestGetEmbarquesDefaultLimit(t *testing.T) {
	app := newTestApp()
	app.Get("/embarques", NewEmbarqueHandler(&stubEmbarqueService{total: 25}, validatorForTest()).GetEmbarques)

	_, body := doJSON(t, app, http.MethodGet, "/embarques", nil)

	data := body.Data.(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, domain.DefaultPageLimit, pagination["limit"])
	assert.EqualValues(t, 3, pagination["total_pages"])
}

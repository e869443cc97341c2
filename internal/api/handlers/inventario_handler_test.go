package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"galeana-pepper/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventarioService struct {
	exportErr error
}

func (s *stubInventarioService) GetProcesados(context.Context) ([]*domain.InventarioItem, error) {
	return []*domain.InventarioItem{{Folio: 1}}, nil
}

func (s *stubInventarioService) ExportXML(_ context.Context, w io.Writer) error {
	if s.exportErr != nil {
		return s.exportErr
	}
	_, err := io.WriteString(w, "<InventarioProcesado></InventarioProcesado>")
	return err
}

func (s *stubInventarioService) ExportCSV(_ context.Context, w io.Writer) error {
	if s.exportErr != nil {
		return s.exportErr
	}
	_, err := io.WriteString(w, "Folio\n0001\n")
	return err
}

func TestInventarioExports(t *testing.T) {
	app := newTestApp()
	h := NewInventarioHandler(&stubInventarioService{})
	app.Get("/inventario/export.xml", h.ExportXML)
	app.Get("/inventario/export.csv", h.ExportCSV)

	cases := []struct {
		target      string
		contentType string
		filename    string
		body        string
	}{
		{"/inventario/export.xml", "application/xml; charset=utf-8", domain.InventarioXMLFilename, "<InventarioProcesado></InventarioProcesado>"},
		{"/inventario/export.csv", "text/csv; charset=utf-8", domain.InventarioCSVFilename, "Folio\n0001\n"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.target, nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tc.contentType, resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, `attachment; filename="`+tc.filename+`"`, resp.Header.Get(fiber.HeaderContentDisposition))
		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, tc.body, string(raw))
	}
}

func TestInventarioExportFailure(t *testing.T) {
	app := newTestApp()
	app.Get("/inventario/export.xml", NewInventarioHandler(&stubInventarioService{exportErr: errors.New("db down")}).ExportXML)

	resp, body := doJSON(t, app, http.MethodGet, "/inventario/export.xml", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, domain.MessageFailedExportar, body.Message)
}

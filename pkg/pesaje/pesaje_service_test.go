package pesaje

import (
	"context"
	"testing"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto/productotest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestService(now *time.Time) (*pesajeService, *productotest.Repository) {
	repo := productotest.New()
	svc := NewPesajeService(repo, zap.NewNop(), time.UTC).(*pesajeService)
	svc.now = func() time.Time { return *now }
	return svc, repo
}

func TestPrimerPesajeWithStart(t *testing.T) {
	now := t0.Add(30 * time.Minute)
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoEsperaPesaje, FechaIngreso: t0})

	_, err := svc.IniciarPrimerPesaje(context.Background(), 1, "op-1")
	require.NoError(t, err)

	now = now.Add(5*time.Minute + 10*time.Second)
	resp, err := svc.RegistrarPrimerPesaje(context.Background(), 1, domain.PesajeRequest{PesoKg: 12000}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoSegundoPesaje, resp.Estado)
	assert.Equal(t, "00:30:00", resp.TiempoAntesPesaje)
	assert.Equal(t, int64(1800), resp.TiempoAntesPesajeSegundos)
	assert.Equal(t, int64(310), resp.DuracionPesaje)
	assert.Equal(t, "26455.44", resp.PesoBrutoLb.StringFixed(2))

	stored := repo.Get(1)
	require.NotNil(t, stored.FinPesaje)
	assert.Equal(t, now, *stored.FinPesaje)
	assert.Equal(t, int64(1800), stored.TiempoEnFila)
}

func TestPrimerPesajeWithoutStart(t *testing.T) {
	now := t0.Add(2*time.Hour + 3*time.Second)
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoEsperaPesaje, FechaIngreso: t0})

	resp, err := svc.RegistrarPrimerPesaje(context.Background(), 1, domain.PesajeRequest{PesoLb: 2204.62}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, "02:00:03", resp.TiempoAntesPesaje)
	assert.Equal(t, int64(0), resp.DuracionPesaje)
	assert.Equal(t, "1000.00", resp.PesoBrutoKg.StringFixed(2))
}

func TestPrimerPesajeWrongState(t *testing.T) {
	now := t0
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoIngreso, FechaIngreso: t0})

	_, err := svc.RegistrarPrimerPesaje(context.Background(), 1, domain.PesajeRequest{PesoKg: 10}, "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidProductState)

	_, err = svc.IniciarPrimerPesaje(context.Background(), 1, "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidProductState)

	_, err = svc.RegistrarPrimerPesaje(context.Background(), 42, domain.PesajeRequest{PesoKg: 10}, "op-1")
	assert.ErrorIs(t, err, domain.ErrProductoNotFound)
}

func TestSegundoPesaje(t *testing.T) {
	now := t0
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{
		Estado:       entities.EstadoSegundoPesaje,
		FechaIngreso: t0,
		PesoBrutoKg:  decimal.RequireFromString("12000.00"),
		PesoBrutoLb:  decimal.RequireFromString("26455.44"),
	})

	resp, err := svc.RegistrarSegundoPesaje(context.Background(), 1, domain.PesajeRequest{PesoKg: 4000}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoDescargar, resp.Estado)
	assert.Equal(t, "8000.00", resp.PesoNetoKg.StringFixed(2))
	assert.Equal(t, "8818.48", resp.PesoTaraLb.StringFixed(2))
	assert.Equal(t, "17636.96", resp.PesoNetoLb.StringFixed(2))
}

func TestSegundoPesajeTareExceedsGross(t *testing.T) {
	now := t0
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{
		Estado:      entities.EstadoSegundoPesaje,
		PesoBrutoKg: decimal.NewFromInt(100),
		PesoBrutoLb: decimal.RequireFromString("220.46"),
	})

	_, err := svc.RegistrarSegundoPesaje(context.Background(), 1, domain.PesajeRequest{PesoKg: 100.5}, "op-1")
	assert.ErrorIs(t, err, domain.ErrTareExceedsGross)
	assert.Equal(t, entities.EstadoSegundoPesaje, repo.Get(1).Estado)
}

func TestColaPrimerPesajeFormatsWait(t *testing.T) {
	now := t0.Add(26*time.Hour + 5*time.Minute)
	svc, repo := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoEsperaPesaje, FechaIngreso: t0})
	repo.Add(&entities.Producto{Estado: entities.EstadoPrimerPesaje, FechaIngreso: t0.Add(25 * time.Hour)})
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})

	cola, err := svc.ColaPrimerPesaje(context.Background())
	require.NoError(t, err)
	require.Len(t, cola, 2)
	assert.Equal(t, "1d 02h 05m", cola[0].TiempoEspera)
	assert.Equal(t, "01h 05m", cola[1].TiempoEspera)
}

package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto/productotest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepository struct {
	peso        decimal.Decimal
	procesados  int64
	segundos    int64
	registrados int64
	err         error

	from, to time.Time
}

func (s *stubDashboardRepository) SumPesoNetoProcesado(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	s.from, s.to = from, to
	return s.peso, nil
}

func (s *stubDashboardRepository) ResumenDuracionProceso(context.Context, time.Time, time.Time) (int64, int64, error) {
	return s.procesados, s.segundos, nil
}

func (s *stubDashboardRepository) CountRegistrados(context.Context, time.Time, time.Time) (int64, error) {
	return s.registrados, s.err
}

func newTestService(repo DashboardRepository, productos *productotest.Repository, now time.Time) *dashboardService {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		panic(err)
	}
	svc := NewDashboardService(repo, productos, loc).(*dashboardService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCategoria(t *testing.T) {
	assert.Equal(t, domain.CategoriaRojo, Categoria(0))
	assert.Equal(t, domain.CategoriaRojo, Categoria(0.29))
	assert.Equal(t, domain.CategoriaNaranja, Categoria(0.3))
	assert.Equal(t, domain.CategoriaNaranja, Categoria(0.69))
	assert.Equal(t, domain.CategoriaEsmeralda, Categoria(0.7))
	assert.Equal(t, domain.CategoriaEsmeralda, Categoria(1))
}

func TestGetMetricas(t *testing.T) {
	repo := &stubDashboardRepository{
		peso:        decimal.RequireFromString("1500.00"),
		procesados:  3,
		segundos:    3 * 5400,
		registrados: 6,
	}
	// 01:30 UTC is still the previous day in Mexico City
	now := time.Date(2025, 3, 11, 1, 30, 0, 0, time.UTC)
	svc := newTestService(repo, productotest.New(), now)

	m, err := svc.GetMetricas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", m.Fecha)
	assert.Equal(t, 24*time.Hour, repo.to.Sub(repo.from))

	assert.Equal(t, "1.50 t", m.ToneladasProcesadas.Texto)
	assert.Equal(t, 1.0, m.ToneladasProcesadas.Valor)
	assert.Equal(t, domain.CategoriaEsmeralda, m.ToneladasProcesadas.Categoria)

	assert.Equal(t, "01:30:00", m.TiempoPromedioProceso.Texto)
	assert.Equal(t, "3 proceso(s)", m.TiempoPromedioProceso.Fraccion)
	assert.InDelta(t, 1.5, m.TiempoPromedioProceso.Valor, 1e-9)

	assert.Equal(t, "50.0%", m.Cumplimiento.Texto)
	assert.Equal(t, "3/6", m.Cumplimiento.Fraccion)
	assert.Equal(t, domain.CategoriaNaranja, m.Cumplimiento.Categoria)
}

func TestGetMetricasEmptyDay(t *testing.T) {
	svc := newTestService(&stubDashboardRepository{}, productotest.New(), time.Now())

	m, err := svc.GetMetricas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00 t", m.ToneladasProcesadas.Texto)
	assert.Equal(t, "00:00:00", m.TiempoPromedioProceso.Texto)
	assert.Equal(t, "0", m.TiempoPromedioProceso.Fraccion)
	assert.Equal(t, "0.0%", m.Cumplimiento.Texto)
	assert.Equal(t, domain.CategoriaRojo, m.Cumplimiento.Categoria)
}

func TestGetMetricasPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestService(&stubDashboardRepository{err: boom}, productotest.New(), time.Now())

	_, err := svc.GetMetricas(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGetAuditoria(t *testing.T) {
	productos := productotest.New()
	for i := 0; i < 23; i++ {
		productos.Add(&entities.Producto{Estado: entities.EstadoIngreso, FechaIngreso: time.Now()})
	}
	svc := newTestService(&stubDashboardRepository{}, productos, time.Now())

	page, err := svc.GetAuditoria(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 10)
	assert.Equal(t, uint(23), page.Items[0].Folio)
	assert.Equal(t, int64(3), page.Pagination.TotalPages)

	last, err := svc.GetAuditoria(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Len(t, last.Items, 3)

	found, err := svc.GetAuditoria(context.Background(), 0, "2")
	require.NoError(t, err)
	// 2, 12, 20, 21, 22, 23
	assert.Equal(t, int64(6), found.Pagination.Total)
	assert.Equal(t, 1, found.Pagination.Page)
}

func TestGetAuditoriaHugePage(t *testing.T) {
	productos := productotest.New()
	for i := 0; i < 3; i++ {
		productos.Add(&entities.Producto{Estado: entities.EstadoIngreso, FechaIngreso: time.Now()})
	}
	svc := newTestService(&stubDashboardRepository{}, productos, time.Now())

	page, err := svc.GetAuditoria(context.Background(), math.MaxInt, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, domain.MaxPage, page.Pagination.Page)
	assert.Equal(t, int64(3), page.Pagination.Total)
}

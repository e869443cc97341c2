package descarga

import (
	"context"
	"testing"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto/productotest"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	folios      []uint
	comentarios []string
}

func (r *recordingNotifier) NotifyRechazo(folio uint, _ string, comentario string) {
	r.folios = append(r.folios, folio)
	r.comentarios = append(r.comentarios, comentario)
}

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestService(now *time.Time) (*descargaService, *productotest.Repository, *recordingNotifier) {
	repo := productotest.New()
	notifier := &recordingNotifier{}
	svc := NewDescargaService(repo, notifier, zap.NewNop(), time.UTC).(*descargaService)
	svc.now = func() time.Time { return *now }
	return svc, repo, notifier
}

func TestDescargaAceptada(t *testing.T) {
	now := t0
	svc, repo, _ := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})

	_, err := svc.DescargaActiva(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDescargaActiva)

	started, err := svc.IniciarDescarga(context.Background(), 1, "op-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoDescargar, started.Estado)
	require.NotNil(t, started.InicioDescarga)

	now = t0.Add(65*time.Minute + 4*time.Second)
	activa, err := svc.DescargaActiva(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), activa.Folio)
	assert.Equal(t, "1h 05m 04s", activa.Cronometro)

	resp, err := svc.AceptarDescarga(context.Background(), 1, "op-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoProcesar, resp.Estado)
	assert.Equal(t, int64(3904), resp.TiempoDescarga)

	_, err = svc.DescargaActiva(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDescargaActiva)
}

func TestOnlyOneDescargaAtATime(t *testing.T) {
	now := t0
	svc, repo, _ := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})

	_, err := svc.IniciarDescarga(context.Background(), 1, "op-1")
	require.NoError(t, err)

	_, err = svc.IniciarDescarga(context.Background(), 2, "op-2")
	assert.ErrorIs(t, err, domain.ErrDescargaEnCurso)

	_, err = svc.IniciarDescarga(context.Background(), 1, "op-1")
	assert.ErrorIs(t, err, domain.ErrDescargaEnCurso)
}

func TestIniciarDescargaUniqueIndexRace(t *testing.T) {
	now := t0
	svc, repo, _ := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})
	repo.TransitionErr = &pgconn.PgError{Code: "23505", ConstraintName: IndexDescargaActiva}

	_, err := svc.IniciarDescarga(context.Background(), 1, "op-1")
	assert.ErrorIs(t, err, domain.ErrDescargaEnCurso)
}

func TestAceptarDescargaRequiresStart(t *testing.T) {
	now := t0
	svc, repo, _ := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0})
	repo.Add(&entities.Producto{Estado: entities.EstadoProcesar, FechaIngreso: t0})

	_, err := svc.AceptarDescarga(context.Background(), 1, "op-1")
	assert.ErrorIs(t, err, domain.ErrDescargaNoIniciada)

	_, err = svc.AceptarDescarga(context.Background(), 2, "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidProductState)

	_, err = svc.IniciarDescarga(context.Background(), 2, "op-1")
	assert.ErrorIs(t, err, domain.ErrInvalidProductState)
}

func TestRechazarDescarga(t *testing.T) {
	now := t0
	svc, repo, notifier := newTestService(&now)
	repo.Add(&entities.Producto{Estado: entities.EstadoDescargar, FechaIngreso: t0, NumeroEconomicoProveedor: "P-001"})

	_, err := svc.IniciarDescarga(context.Background(), 1, "op-1")
	require.NoError(t, err)

	_, err = svc.RechazarDescarga(context.Background(), 1, domain.RechazarDescargaRequest{Comentario: "   "}, "op-1")
	assert.ErrorIs(t, err, domain.ErrComentarioRequerido)
	assert.Empty(t, notifier.folios)

	now = t0.Add(2 * time.Minute)
	resp, err := svc.RechazarDescarga(context.Background(), 1, domain.RechazarDescargaRequest{Comentario: " producto podrido "}, "op-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoRechazado, resp.Estado)
	assert.Equal(t, "producto podrido", resp.Comentarios)
	assert.Equal(t, int64(120), resp.TiempoDescarga)
	assert.Equal(t, []uint{1}, notifier.folios)
	assert.Equal(t, []string{"producto podrido"}, notifier.comentarios)
}

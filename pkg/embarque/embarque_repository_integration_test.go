//go:build integration

package embarque_test

import (
	"context"
	"os"
	"testing"
	"time"

	migration "galeana-pepper/cmd/database/migrate"
	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/embarque"
	"galeana-pepper/pkg/producto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run with GALEANA_TEST_DSN pointing at a disposable database:
//
//	go test -tags integration ./pkg/embarque/...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("GALEANA_TEST_DSN")
	if dsn == "" {
		t.Skip("GALEANA_TEST_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(context.Background(), db, zap.NewNop()))
	return db
}

func seedProducto(t *testing.T, db *gorm.DB, estado string) *entities.Producto {
	t.Helper()
	numero := "IT-" + uuid.NewString()[:8]
	require.NoError(t, db.Create(&entities.Proveedor{NumeroEconomico: numero, Nombre: "Prueba", Apellido: "Embarque"}).Error)

	p := &entities.Producto{
		NumeroEconomicoProveedor: numero,
		FechaIngreso:             time.Now(),
		Estado:                   entities.EstadoIngreso,
	}
	require.NoError(t, producto.NewProductoRepository(db).RegistrarIngreso(context.Background(),
		&entities.Camion{Placas: "IT-03", Tipo: entities.CamionTolva, Proveedor: numero}, p, "it"))
	require.NoError(t, db.Model(p).Update("estado", estado).Error)
	return p
}

func salida(folio uint) (*entities.Embarque, producto.Transicion) {
	return &entities.Embarque{
			ID:         uuid.NewString(),
			Folio:      folio,
			HoraSalida: "06:30",
			TipoCamion: entities.CamionTrailer,
			Actor:      "it",
		}, producto.Transicion{
			Folio: folio,
			Desde: []string{entities.EstadoProcesado},
			Hacia: entities.EstadoEmbarque,
			Actor: "it",
		}
}

func counts(t *testing.T, db *gorm.DB, folio uint) (embarques, eventos int64) {
	t.Helper()
	require.NoError(t, db.Model(&entities.Embarque{}).Where("folio = ?", folio).Count(&embarques).Error)
	require.NoError(t, db.Model(&entities.ProductoEvento{}).Where("folio = ?", folio).Count(&eventos).Error)
	return embarques, eventos
}

func TestRegistrarSalidaWrongStateWritesNothing(t *testing.T) {
	db := openTestDB(t)
	repo := embarque.NewEmbarqueRepository(db)
	p := seedProducto(t, db, entities.EstadoProcesar)
	_, eventos := counts(t, db, p.Folio)

	e, tr := salida(p.Folio)
	err := repo.RegistrarSalida(context.Background(), e, tr)
	require.ErrorIs(t, err, domain.ErrInvalidProductState)

	gotEmbarques, gotEventos := counts(t, db, p.Folio)
	assert.Zero(t, gotEmbarques)
	assert.Equal(t, eventos, gotEventos)
}

func TestRegistrarSalidaRollsBackTransitionOnInsertFailure(t *testing.T) {
	db := openTestDB(t)
	repo := embarque.NewEmbarqueRepository(db)
	p := seedProducto(t, db, entities.EstadoProcesado)

	// a shipment already stored for the folio makes the insert fail after the transition
	previo, _ := salida(p.Folio)
	require.NoError(t, db.Create(previo).Error)
	_, eventos := counts(t, db, p.Folio)

	e, tr := salida(p.Folio)
	require.Error(t, repo.RegistrarSalida(context.Background(), e, tr))

	var got entities.Producto
	require.NoError(t, db.First(&got, p.Folio).Error)
	assert.Equal(t, entities.EstadoProcesado, got.Estado)
	gotEmbarques, gotEventos := counts(t, db, p.Folio)
	assert.Equal(t, int64(1), gotEmbarques)
	assert.Equal(t, eventos, gotEventos)
}

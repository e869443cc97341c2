//go:build integration

package producto_test

import (
	"context"
	"os"
	"testing"
	"time"

	migration "galeana-pepper/cmd/database/migrate"
	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/descarga"
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
//	go test -tags integration ./pkg/producto/...
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

func seedIngreso(t *testing.T, db *gorm.DB, repo producto.ProductoRepository) *entities.Producto {
	t.Helper()
	ctx := context.Background()
	numero := "IT-" + uuid.NewString()[:8]
	require.NoError(t, db.Create(&entities.Proveedor{NumeroEconomico: numero, Nombre: "Prueba", Apellido: "Integración"}).Error)

	p := &entities.Producto{
		NumeroEconomicoProveedor: numero,
		FechaIngreso:             time.Now(),
		Estado:                   entities.EstadoIngreso,
	}
	require.NoError(t, repo.RegistrarIngreso(ctx, &entities.Camion{Placas: "IT-01", Tipo: entities.CamionDompe, Proveedor: numero}, p, "it"))
	require.NotZero(t, p.Folio)
	return p
}

func TestTransitionAgainstPostgres(t *testing.T) {
	db := openTestDB(t)
	repo := producto.NewProductoRepository(db)
	ctx := context.Background()
	p := seedIngreso(t, db, repo)

	updated, err := repo.Transition(ctx, producto.Transicion{
		Folio: p.Folio,
		Desde: []string{entities.EstadoIngreso},
		Hacia: entities.EstadoEsperaPesaje,
		Actor: "it",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoEsperaPesaje, updated.Estado)

	_, err = repo.Transition(ctx, producto.Transicion{
		Folio: p.Folio,
		Desde: []string{entities.EstadoIngreso},
		Hacia: entities.EstadoEsperaPesaje,
		Actor: "it",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProductState)

	eventos, err := repo.GetEventos(ctx, p.Folio)
	require.NoError(t, err)
	assert.Len(t, eventos, 2)
}

func TestSingleActiveUnloadIndex(t *testing.T) {
	db := openTestDB(t)
	repo := producto.NewProductoRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Exec("UPDATE productos SET inicio_descarga = NULL WHERE estado = ?", entities.EstadoDescargar).Error)

	start := func(p *entities.Producto) error {
		require.NoError(t, db.Model(p).Update("estado", entities.EstadoDescargar).Error)
		_, err := repo.Transition(ctx, producto.Transicion{
			Folio:   p.Folio,
			Desde:   []string{entities.EstadoDescargar},
			Hacia:   entities.EstadoDescargar,
			Cambios: map[string]interface{}{"inicio_descarga": time.Now()},
			Actor:   "it",
		})
		return err
	}

	require.NoError(t, start(seedIngreso(t, db, repo)))
	err := start(seedIngreso(t, db, repo))
	assert.True(t, utils.IsUniqueViolation(err, descarga.IndexDescargaActiva), "got %v", err)
}

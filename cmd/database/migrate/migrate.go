package migration

import (
	"context"
	"fmt"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/descarga"
	"galeana-pepper/pkg/tanque"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	db = db.WithContext(ctx)

	models := []interface{}{
		&entities.Proveedor{},
		&entities.Camion{},
		&entities.Producto{},
		&entities.ProductoEvento{},
		&entities.Tanque{},
		&entities.TanqueProducto{},
		&entities.Embarque{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	// at most one product may be mid-unload
	if err := db.Exec(fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON productos ((true)) WHERE estado = 'descargar' AND inicio_descarga IS NOT NULL",
		descarga.IndexDescargaActiva,
	)).Error; err != nil {
		return fmt.Errorf("creating active unload index: %w", err)
	}

	created, err := tanque.NewTanqueRepository(db).SeedTanques(ctx, domain.TanqueNombresDefault)
	if err != nil {
		return fmt.Errorf("seeding tanks: %w", err)
	}

	log.Info("database migration complete", zap.Int("tanques_creados", created))
	return nil
}

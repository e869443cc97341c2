package tanque

import (
	"context"
	"errors"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TanqueRepository interface {
		GetTanques(ctx context.Context) ([]*entities.Tanque, error)
		GetTanqueByID(ctx context.Context, id uint) (*entities.Tanque, error)
		CreateTanque(ctx context.Context, tanque *entities.Tanque) error
		SeedTanques(ctx context.Context, nombres []string) (int, error)
		ExistsAsignacion(ctx context.Context, folio uint) (bool, error)
		AsignarTanque(ctx context.Context, asignacion *entities.TanqueProducto, t producto.Transicion) (*entities.Tanque, error)
	}

	tanqueRepository struct {
		db *gorm.DB
	}
)

func NewTanqueRepository(db *gorm.DB) TanqueRepository {
	return &tanqueRepository{
		db: db,
	}
}

func (r *tanqueRepository) GetTanques(ctx context.Context) ([]*entities.Tanque, error) {
	var tanques []*entities.Tanque
	if err := r.db.WithContext(ctx).
		Order("nombre ASC").
		Find(&tanques).Error; err != nil {
		return nil, err
	}
	return tanques, nil
}

func (r *tanqueRepository) GetTanqueByID(ctx context.Context, id uint) (*entities.Tanque, error) {
	var tanque entities.Tanque
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tanque).Error; err != nil {
		return nil, err
	}
	return &tanque, nil
}

func (r *tanqueRepository) CreateTanque(ctx context.Context, tanque *entities.Tanque) error {
	return r.db.WithContext(ctx).Create(tanque).Error
}

// SeedTanques creates the named tanks when the table is empty and returns how many were created.
func (r *tanqueRepository) SeedTanques(ctx context.Context, nombres []string) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Tanque{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, nombre := range nombres {
			if err := tx.Create(&entities.Tanque{Nombre: nombre, Estado: entities.TanqueVerde}).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	return created, err
}

func (r *tanqueRepository) ExistsAsignacion(ctx context.Context, folio uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.TanqueProducto{}).
		Where("folio_producto = ?", folio).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AsignarTanque closes the product, records the assignment and updates the tank
// in one transaction. A missing tank is domain.ErrTanqueNotFound and a missing
// product domain.ErrProductoNotFound.
func (r *tanqueRepository) AsignarTanque(ctx context.Context, asignacion *entities.TanqueProducto, t producto.Transicion) (*entities.Tanque, error) {
	var tanque entities.Tanque
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", asignacion.IDTanque).
			First(&tanque).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTanqueNotFound
			}
			return err
		}

		if _, err := producto.TransitionTx(tx, t); err != nil {
			return producto.MapError(err)
		}

		if err := tx.Create(asignacion).Error; err != nil {
			return err
		}

		return tx.Model(&tanque).Updates(map[string]interface{}{
			"estado": asignacion.Estado,
			"litros": asignacion.Litros,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	tanque.Estado = asignacion.Estado
	tanque.Litros = asignacion.Litros
	return &tanque, nil
}

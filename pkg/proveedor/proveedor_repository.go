package proveedor

import (
	"context"

	"galeana-pepper/entities"

	"gorm.io/gorm"
)

type (
	ProveedorRepository interface {
		CreateProveedor(ctx context.Context, proveedor *entities.Proveedor) error
		GetProveedores(ctx context.Context) ([]*entities.Proveedor, error)
		GetProveedorByNumero(ctx context.Context, numero string) (*entities.Proveedor, error)
		ExistsProveedor(ctx context.Context, numero string) (bool, error)
		UpdateProveedor(ctx context.Context, numero string, proveedor *entities.Proveedor) error
		CountProductos(ctx context.Context, numero string) (int64, error)
		DeleteProveedor(ctx context.Context, numero string) error
		GetCamiones(ctx context.Context, numero string) ([]*entities.Camion, error)
	}

	proveedorRepository struct {
		db *gorm.DB
	}
)

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepository{
		db: db,
	}
}

func (r *proveedorRepository) CreateProveedor(ctx context.Context, proveedor *entities.Proveedor) error {
	return r.db.WithContext(ctx).Create(proveedor).Error
}

func (r *proveedorRepository) GetProveedores(ctx context.Context) ([]*entities.Proveedor, error) {
	var proveedores []*entities.Proveedor
	if err := r.db.WithContext(ctx).
		Order("numero_economico ASC").
		Find(&proveedores).Error; err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (r *proveedorRepository) GetProveedorByNumero(ctx context.Context, numero string) (*entities.Proveedor, error) {
	var proveedor entities.Proveedor
	if err := r.db.WithContext(ctx).
		Where("numero_economico = ?", numero).
		First(&proveedor).Error; err != nil {
		return nil, err
	}
	return &proveedor, nil
}

func (r *proveedorRepository) ExistsProveedor(ctx context.Context, numero string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Proveedor{}).
		Where("numero_economico = ?", numero).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateProveedor may rename the primary key; trucks and products follow through ON UPDATE CASCADE.
func (r *proveedorRepository) UpdateProveedor(ctx context.Context, numero string, proveedor *entities.Proveedor) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Proveedor{}).
		Where("numero_economico = ?", numero).
		Updates(map[string]interface{}{
			"numero_economico": proveedor.NumeroEconomico,
			"nombre":           proveedor.Nombre,
			"segundo_nombre":   proveedor.SegundoNombre,
			"apellido":         proveedor.Apellido,
			"apellido_materno": proveedor.ApellidoMaterno,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *proveedorRepository) CountProductos(ctx context.Context, numero string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Producto{}).
		Where("numero_economico_proveedor = ?", numero).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *proveedorRepository) DeleteProveedor(ctx context.Context, numero string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proveedor = ?", numero).Delete(&entities.Camion{}).Error; err != nil {
			return err
		}
		res := tx.Where("numero_economico = ?", numero).Delete(&entities.Proveedor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *proveedorRepository) GetCamiones(ctx context.Context, numero string) ([]*entities.Camion, error) {
	var camiones []*entities.Camion
	if err := r.db.WithContext(ctx).
		Where("proveedor = ?", numero).
		Order("numero_economico DESC").
		Find(&camiones).Error; err != nil {
		return nil, err
	}
	return camiones, nil
}

package embarque

import (
	"context"

	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto"

	"gorm.io/gorm"
)

type (
	EmbarqueRepository interface {
		RegistrarSalida(ctx context.Context, embarque *entities.Embarque, t producto.Transicion) error
		ExistsEmbarque(ctx context.Context, folio uint) (bool, error)
		GetEmbarques(ctx context.Context, page, limit int) ([]*entities.Embarque, int64, error)
	}

	embarqueRepository struct {
		db *gorm.DB
	}
)

func NewEmbarqueRepository(db *gorm.DB) EmbarqueRepository {
	return &embarqueRepository{
		db: db,
	}
}

func (r *embarqueRepository) RegistrarSalida(ctx context.Context, embarque *entities.Embarque, t producto.Transicion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := producto.TransitionTx(tx, t); err != nil {
			return err
		}
		return tx.Create(embarque).Error
	})
}

func (r *embarqueRepository) ExistsEmbarque(ctx context.Context, folio uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Embarque{}).
		Where("folio = ?", folio).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *embarqueRepository) GetEmbarques(ctx context.Context, page, limit int) ([]*entities.Embarque, int64, error) {
	var (
		embarques []*entities.Embarque
		total     int64
	)
	query := r.db.WithContext(ctx).Model(&entities.Embarque{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&embarques).Error; err != nil {
		return nil, 0, err
	}
	return embarques, total, nil
}

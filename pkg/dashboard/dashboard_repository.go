package dashboard

import (
	"context"
	"time"

	"galeana-pepper/entities"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	DashboardRepository interface {
		SumPesoNetoProcesado(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
		ResumenDuracionProceso(ctx context.Context, from, to time.Time) (int64, int64, error)
		CountRegistrados(ctx context.Context, from, to time.Time) (int64, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// SumPesoNetoProcesado sums the net kilograms of products whose processing finished in [from, to).
func (r *dashboardRepository) SumPesoNetoProcesado(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entities.Producto{}).
		Select("COALESCE(SUM(peso_neto_kg), 0)").
		Where("fin_proceso >= ? AND fin_proceso < ?", from, to).
		Row().
		Scan(&total)
	return total, err
}

// ResumenDuracionProceso returns how many processes finished in [from, to) and their summed seconds.
func (r *dashboardRepository) ResumenDuracionProceso(ctx context.Context, from, to time.Time) (int64, int64, error) {
	var count, seconds int64
	err := r.db.WithContext(ctx).
		Model(&entities.Producto{}).
		Select("COUNT(*), COALESCE(SUM(duracion_proceso), 0)").
		Where("fin_proceso >= ? AND fin_proceso < ?", from, to).
		Row().
		Scan(&count, &seconds)
	return count, seconds, err
}

func (r *dashboardRepository) CountRegistrados(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Producto{}).
		Where("fecha_ingreso >= ? AND fecha_ingreso < ?", from, to).
		Count(&count).Error
	return count, err
}

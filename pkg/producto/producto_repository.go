package producto

import (
	"context"
	"strings"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActiveStates are the states a product passes through before it is processed.
var ActiveStates = []string{
	entities.EstadoIngreso,
	entities.EstadoEsperaPesaje,
	entities.EstadoPrimerPesaje,
	entities.EstadoSegundoPesaje,
	entities.EstadoDescargar,
	entities.EstadoProcesar,
}

type (
	// Transicion moves one product from any of Desde to Hacia, applying Cambios
	// in the same update.
	Transicion struct {
		Folio   uint
		Desde   []string
		Hacia   string
		Cambios map[string]interface{}
		Actor   string
		Detalle string
	}

	ProductoRepository interface {
		RegistrarIngreso(ctx context.Context, camion *entities.Camion, producto *entities.Producto, actor string) error
		GetProductoByFolio(ctx context.Context, folio uint) (*entities.Producto, error)
		GetProductosByEstado(ctx context.Context, estados ...string) ([]*entities.Producto, error)
		GetProductos(ctx context.Context, search string, page, limit int) ([]*entities.Producto, int64, error)
		GetDescargaActiva(ctx context.Context) (*entities.Producto, error)
		Transition(ctx context.Context, t Transicion) (*entities.Producto, error)
		UpdateFotoURL(ctx context.Context, folio uint, url string) error
		GetEventos(ctx context.Context, folio uint) ([]*entities.ProductoEvento, error)
	}

	productoRepository struct {
		db *gorm.DB
	}
)

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{
		db: db,
	}
}

// RegistrarIngreso creates the truck and the product it brought in one transaction.
func (r *productoRepository) RegistrarIngreso(ctx context.Context, camion *entities.Camion, producto *entities.Producto, actor string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(camion).Error; err != nil {
			return err
		}
		producto.NumeroEconomicoCamion = camion.NumeroEconomico
		if err := tx.Create(producto).Error; err != nil {
			return err
		}
		return tx.Create(&entities.ProductoEvento{
			ID:          uuid.NewString(),
			Folio:       producto.Folio,
			EstadoNuevo: producto.Estado,
			Actor:       actor,
			Detalle:     producto.Comentarios,
		}).Error
	})
}

func (r *productoRepository) GetProductoByFolio(ctx context.Context, folio uint) (*entities.Producto, error) {
	var producto entities.Producto
	if err := r.db.WithContext(ctx).
		Where("folio = ?", folio).
		First(&producto).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) GetProductosByEstado(ctx context.Context, estados ...string) ([]*entities.Producto, error) {
	var productos []*entities.Producto
	if err := r.db.WithContext(ctx).
		Where("estado IN ?", estados).
		Order("fecha_ingreso ASC, folio ASC").
		Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}

// GetProductos pages every product newest folio first. search filters by folio substring.
func (r *productoRepository) GetProductos(ctx context.Context, search string, page, limit int) ([]*entities.Producto, int64, error) {
	var (
		productos []*entities.Producto
		total     int64
	)

	query := r.db.WithContext(ctx).Model(&entities.Producto{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("CAST(folio AS TEXT) LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("folio DESC").
		Offset(offset).
		Limit(limit).
		Find(&productos).Error; err != nil {
		return nil, 0, err
	}
	return productos, total, nil
}

func (r *productoRepository) GetDescargaActiva(ctx context.Context) (*entities.Producto, error) {
	var producto entities.Producto
	if err := r.db.WithContext(ctx).
		Where("estado = ? AND inicio_descarga IS NOT NULL", entities.EstadoDescargar).
		Order("inicio_descarga ASC").
		First(&producto).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) Transition(ctx context.Context, t Transicion) (*entities.Producto, error) {
	var updated *entities.Producto
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := TransitionTx(tx, t)
		if err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// TransitionTx applies t inside an open transaction and records the ledger
// event. It returns domain.ErrInvalidProductState when the row is no longer in
// an allowed source state.
func TransitionTx(tx *gorm.DB, t Transicion) (*entities.Producto, error) {
	var current entities.Producto
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("folio", "estado").
		Where("folio = ?", t.Folio).
		First(&current).Error; err != nil {
		return nil, err
	}
	if !Allowed(current.Estado, t.Desde) {
		return nil, domain.ErrInvalidProductState
	}

	cambios := map[string]interface{}{
		"estado":     t.Hacia,
		"updated_at": time.Now(),
	}
	for k, v := range t.Cambios {
		cambios[k] = v
	}

	res := tx.Model(&entities.Producto{}).
		Where("folio = ? AND estado IN ?", t.Folio, t.Desde).
		Updates(cambios)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrInvalidProductState
	}

	if err := tx.Create(&entities.ProductoEvento{
		ID:             uuid.NewString(),
		Folio:          t.Folio,
		EstadoAnterior: current.Estado,
		EstadoNuevo:    t.Hacia,
		Actor:          t.Actor,
		Detalle:        t.Detalle,
	}).Error; err != nil {
		return nil, err
	}

	var updated entities.Producto
	if err := tx.Where("folio = ?", t.Folio).First(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *productoRepository) UpdateFotoURL(ctx context.Context, folio uint, url string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Producto{}).
		Where("folio = ?", folio).
		Update("foto_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepository) GetEventos(ctx context.Context, folio uint) ([]*entities.ProductoEvento, error) {
	var eventos []*entities.ProductoEvento
	if err := r.db.WithContext(ctx).
		Where("folio = ?", folio).
		Order("created_at ASC").
		Find(&eventos).Error; err != nil {
		return nil, err
	}
	return eventos, nil
}

// Allowed reports whether estado is one of desde.
func Allowed(estado string, desde []string) bool {
	for _, d := range desde {
		if d == estado {
			return true
		}
	}
	return false
}

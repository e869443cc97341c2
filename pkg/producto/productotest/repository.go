// Package productotest provides an in-memory ProductoRepository for service tests.
package productotest

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/pkg/producto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository struct {
	mu         sync.Mutex
	productos  map[uint]*entities.Producto
	camiones   []*entities.Camion
	eventos    []*entities.ProductoEvento
	nextFolio  uint
	nextCamion uint

	// TransitionErr, when set, is returned by Transition instead of applying it.
	TransitionErr error
}

var _ producto.ProductoRepository = (*Repository)(nil)

func New() *Repository {
	return &Repository{productos: map[uint]*entities.Producto{}}
}

// Add stores p, assigning the next folio when p has none.
func (r *Repository) Add(p *entities.Producto) *entities.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.Folio == 0 {
		r.nextFolio++
		p.Folio = r.nextFolio
	} else if p.Folio > r.nextFolio {
		r.nextFolio = p.Folio
	}
	cp := *p
	r.productos[p.Folio] = &cp
	return p
}

// Remove deletes the product, as if another request removed it mid-operation.
func (r *Repository) Remove(folio uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.productos, folio)
}

// Get returns a copy of the stored product.
func (r *Repository) Get(folio uint) *entities.Producto {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[folio]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (r *Repository) Eventos() []*entities.ProductoEvento {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.ProductoEvento(nil), r.eventos...)
}

func (r *Repository) Camiones() []*entities.Camion {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.Camion(nil), r.camiones...)
}

func (r *Repository) RegistrarIngreso(_ context.Context, camion *entities.Camion, p *entities.Producto, actor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextCamion++
	camion.NumeroEconomico = r.nextCamion
	r.camiones = append(r.camiones, camion)

	r.nextFolio++
	p.Folio = r.nextFolio
	p.NumeroEconomicoCamion = camion.NumeroEconomico
	cp := *p
	r.productos[p.Folio] = &cp
	r.eventos = append(r.eventos, &entities.ProductoEvento{
		ID: uuid.NewString(), Folio: p.Folio, EstadoNuevo: p.Estado, Actor: actor, Detalle: p.Comentarios,
	})
	return nil
}

func (r *Repository) GetProductoByFolio(_ context.Context, folio uint) (*entities.Producto, error) {
	if p := r.Get(folio); p != nil {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Repository) GetProductosByEstado(_ context.Context, estados ...string) ([]*entities.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Producto
	for _, p := range r.productos {
		if producto.Allowed(p.Estado, estados) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Folio < out[j].Folio })
	return out, nil
}

func (r *Repository) GetProductos(_ context.Context, search string, page, limit int) ([]*entities.Producto, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entities.Producto
	for _, p := range r.productos {
		if search != "" && !strings.Contains(strconv.FormatUint(uint64(p.Folio), 10), search) {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Folio > all[j].Folio })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []*entities.Producto{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *Repository) GetDescargaActiva(_ context.Context) (*entities.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.Estado == entities.EstadoDescargar && p.InicioDescarga != nil {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *Repository) Transition(_ context.Context, t producto.Transicion) (*entities.Producto, error) {
	if r.TransitionErr != nil {
		return nil, r.TransitionErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitionLocked(t)
}

// ApplyTransition is Transition for fakes of other repositories that wrap it in their own transaction.
func (r *Repository) ApplyTransition(t producto.Transicion) (*entities.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transitionLocked(t)
}

func (r *Repository) transitionLocked(t producto.Transicion) (*entities.Producto, error) {
	p, ok := r.productos[t.Folio]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !producto.Allowed(p.Estado, t.Desde) {
		return nil, domain.ErrInvalidProductState
	}
	anterior := p.Estado
	next := *p
	next.Estado = t.Hacia
	for column, value := range t.Cambios {
		apply(&next, column, value)
	}
	r.productos[t.Folio] = &next
	r.eventos = append(r.eventos, &entities.ProductoEvento{
		ID: uuid.NewString(), Folio: t.Folio, EstadoAnterior: anterior, EstadoNuevo: t.Hacia,
		Actor: t.Actor, Detalle: t.Detalle,
	})
	cp := next
	return &cp, nil
}

func (r *Repository) UpdateFotoURL(_ context.Context, folio uint, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[folio]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.FotoURL = url
	return nil
}

func (r *Repository) GetEventos(_ context.Context, folio uint) ([]*entities.ProductoEvento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.ProductoEvento
	for _, e := range r.eventos {
		if e.Folio == folio {
			out = append(out, e)
		}
	}
	return out, nil
}

func apply(p *entities.Producto, column string, value interface{}) {
	switch column {
	case "updated_at":
	case "peso_bruto_kg":
		p.PesoBrutoKg = value.(decimal.Decimal)
	case "peso_bruto_lb":
		p.PesoBrutoLb = value.(decimal.Decimal)
	case "peso_tara_kg":
		p.PesoTaraKg = value.(decimal.Decimal)
	case "peso_tara_lb":
		p.PesoTaraLb = value.(decimal.Decimal)
	case "peso_neto_kg":
		p.PesoNetoKg = value.(decimal.Decimal)
	case "peso_neto_lb":
		p.PesoNetoLb = value.(decimal.Decimal)
	case "porcentaje_sal":
		p.PorcentajeSal = value.(decimal.Decimal)
	case "inicio_pesaje":
		p.InicioPesaje = timePtr(value)
	case "fin_pesaje":
		p.FinPesaje = timePtr(value)
	case "inicio_descarga":
		p.InicioDescarga = timePtr(value)
	case "fin_descarga":
		p.FinDescarga = timePtr(value)
	case "inicio_proceso":
		p.InicioProceso = timePtr(value)
	case "fin_proceso":
		p.FinProceso = timePtr(value)
	case "tiempo_en_fila":
		p.TiempoEnFila = value.(int64)
	case "duracion_pesaje":
		p.DuracionPesaje = value.(int64)
	case "tiempo_descarga":
		p.TiempoDescarga = value.(int64)
	case "duracion_proceso":
		p.DuracionProceso = value.(int64)
	case "comentarios":
		p.Comentarios = value.(string)
	default:
		panic(fmt.Sprintf("productotest: unknown column %q", column))
	}
}

func timePtr(v interface{}) *time.Time {
	t := v.(time.Time)
	return &t
}

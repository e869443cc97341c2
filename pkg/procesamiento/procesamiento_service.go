package procesamiento

import (
	"context"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type (
	ProcesamientoService interface {
		ColaProceso(ctx context.Context) ([]*domain.ProductoResponse, error)
		IniciarProceso(ctx context.Context, folio uint, actor string) (*domain.ProcesoResponse, error)
		RegistrarProceso(ctx context.Context, folio uint, req domain.RegistrarProcesoRequest, actor string) (*domain.ProcesoResponse, error)
	}

	procesamientoService struct {
		productoRepository producto.ProductoRepository
		logger             *zap.Logger
		loc                *time.Location
		now                func() time.Time
	}
)

func NewProcesamientoService(productoRepository producto.ProductoRepository, logger *zap.Logger, loc *time.Location) ProcesamientoService {
	return &procesamientoService{
		productoRepository: productoRepository,
		logger:             logger,
		loc:                loc,
		now:                time.Now,
	}
}

// ValidarSal accepts 0 to 22 percent in steps of 0.1.
func ValidarSal(v float64) (decimal.Decimal, error) {
	sal := decimal.NewFromFloat(v)
	if sal.IsNegative() || sal.GreaterThan(domain.PorcentajeSalMaximo) || !sal.Equal(sal.Round(1)) {
		return decimal.Zero, domain.ErrPorcentajeSalInvalido
	}
	return sal.Round(1), nil
}

func (s *procesamientoService) ColaProceso(ctx context.Context) ([]*domain.ProductoResponse, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, entities.EstadoProcesar)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resp := producto.ToResponse(p, now, s.loc)
		if p.InicioProceso != nil {
			resp.TiempoEspera = utils.FormatCronometro(utils.SecondsBetween(*p.InicioProceso, now))
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *procesamientoService) IniciarProceso(ctx context.Context, folio uint, actor string) (*domain.ProcesoResponse, error) {
	current, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if current.Estado != entities.EstadoProcesar {
		return nil, domain.ErrInvalidProductState
	}
	if current.InicioProceso != nil {
		return toResponse(current), nil
	}

	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio:   folio,
		Desde:   []string{entities.EstadoProcesar},
		Hacia:   entities.EstadoProcesar,
		Cambios: map[string]interface{}{"inicio_proceso": s.now()},
		Actor:   actor,
		Detalle: "inicio de proceso",
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("processing started", zap.Uint("folio", folio))
	return toResponse(p), nil
}

func (s *procesamientoService) RegistrarProceso(ctx context.Context, folio uint, req domain.RegistrarProcesoRequest, actor string) (*domain.ProcesoResponse, error) {
	if req.PorcentajeSal == nil {
		return nil, domain.ErrPorcentajeSalInvalido
	}
	sal, err := ValidarSal(*req.PorcentajeSal)
	if err != nil {
		return nil, err
	}

	current, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if current.Estado != entities.EstadoProcesar {
		return nil, domain.ErrInvalidProductState
	}
	if current.InicioProceso == nil {
		return nil, domain.ErrProcesoNoIniciado
	}

	now := s.now()
	duracion := utils.SecondsBetween(*current.InicioProceso, now)
	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio: folio,
		Desde: []string{entities.EstadoProcesar},
		Hacia: entities.EstadoProcesado,
		Cambios: map[string]interface{}{
			"porcentaje_sal":   sal,
			"fin_proceso":      now,
			"duracion_proceso": duracion,
		},
		Actor:   actor,
		Detalle: "sal " + sal.StringFixed(1) + "%",
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("processing registered",
		zap.Uint("folio", folio),
		zap.String("porcentaje_sal", sal.StringFixed(1)),
		zap.Int64("duracion_proceso", duracion),
	)
	return toResponse(p), nil
}

func toResponse(p *entities.Producto) *domain.ProcesoResponse {
	return &domain.ProcesoResponse{
		Folio:           p.Folio,
		FolioDisplay:    utils.FormatFolio(p.Folio),
		Estado:          p.Estado,
		PorcentajeSal:   p.PorcentajeSal,
		InicioProceso:   p.InicioProceso,
		FinProceso:      p.FinProceso,
		DuracionProceso: p.DuracionProceso,
		Duracion:        utils.FormatHHMMSS(p.DuracionProceso),
	}
}

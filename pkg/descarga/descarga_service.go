package descarga

import (
	"context"
	"errors"
	"strings"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IndexDescargaActiva is the partial unique index that allows a single unload in progress.
const IndexDescargaActiva = "idx_productos_descarga_activa"

type (
	DescargaService interface {
		ColaDescarga(ctx context.Context) ([]*domain.ProductoResponse, error)
		DescargaActiva(ctx context.Context) (*domain.DescargaActivaResponse, error)
		IniciarDescarga(ctx context.Context, folio uint, actor string) (*domain.DescargaResponse, error)
		AceptarDescarga(ctx context.Context, folio uint, actor string) (*domain.DescargaResponse, error)
		RechazarDescarga(ctx context.Context, folio uint, req domain.RechazarDescargaRequest, actor string) (*domain.DescargaResponse, error)
	}

	descargaService struct {
		productoRepository producto.ProductoRepository
		notifier           Notifier
		logger             *zap.Logger
		loc                *time.Location
		now                func() time.Time
	}
)

func NewDescargaService(productoRepository producto.ProductoRepository, notifier Notifier, logger *zap.Logger, loc *time.Location) DescargaService {
	return &descargaService{
		productoRepository: productoRepository,
		notifier:           notifier,
		logger:             logger,
		loc:                loc,
		now:                time.Now,
	}
}

func (s *descargaService) ColaDescarga(ctx context.Context) ([]*domain.ProductoResponse, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, entities.EstadoDescargar)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		result = append(result, producto.ToResponse(p, now, s.loc))
	}
	return result, nil
}

func (s *descargaService) DescargaActiva(ctx context.Context) (*domain.DescargaActivaResponse, error) {
	p, err := s.productoRepository.GetDescargaActiva(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoDescargaActiva
		}
		return nil, err
	}

	segundos := utils.SecondsBetween(*p.InicioDescarga, s.now())
	return &domain.DescargaActivaResponse{
		Folio:          p.Folio,
		FolioDisplay:   utils.FormatFolio(p.Folio),
		Proveedor:      p.NumeroEconomicoProveedor,
		InicioDescarga: *p.InicioDescarga,
		Segundos:       segundos,
		Cronometro:     utils.FormatCronometro(segundos),
	}, nil
}

func (s *descargaService) IniciarDescarga(ctx context.Context, folio uint, actor string) (*domain.DescargaResponse, error) {
	activa, err := s.productoRepository.GetDescargaActiva(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if activa != nil {
		return nil, domain.ErrDescargaEnCurso
	}

	now := s.now()
	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio:   folio,
		Desde:   []string{entities.EstadoDescargar},
		Hacia:   entities.EstadoDescargar,
		Cambios: map[string]interface{}{"inicio_descarga": now},
		Actor:   actor,
		Detalle: "inicio de descarga",
	})
	if err != nil {
		if utils.IsUniqueViolation(err, IndexDescargaActiva) {
			return nil, domain.ErrDescargaEnCurso
		}
		return nil, producto.MapError(err)
	}

	s.logger.Info("unload started", zap.Uint("folio", folio))
	return toResponse(p), nil
}

func (s *descargaService) AceptarDescarga(ctx context.Context, folio uint, actor string) (*domain.DescargaResponse, error) {
	current, err := s.iniciada(ctx, folio)
	if err != nil {
		return nil, err
	}

	now := s.now()
	segundos := utils.SecondsBetween(*current.InicioDescarga, now)
	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio: folio,
		Desde: []string{entities.EstadoDescargar},
		Hacia: entities.EstadoProcesar,
		Cambios: map[string]interface{}{
			"fin_descarga":    now,
			"tiempo_descarga": segundos,
		},
		Actor:   actor,
		Detalle: "descarga aceptada en " + utils.FormatHHMMSS(segundos),
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("unload accepted", zap.Uint("folio", folio), zap.Int64("tiempo_descarga", segundos))
	return toResponse(p), nil
}

func (s *descargaService) RechazarDescarga(ctx context.Context, folio uint, req domain.RechazarDescargaRequest, actor string) (*domain.DescargaResponse, error) {
	comentario := strings.TrimSpace(req.Comentario)
	if comentario == "" {
		return nil, domain.ErrComentarioRequerido
	}

	current, err := s.iniciada(ctx, folio)
	if err != nil {
		return nil, err
	}

	now := s.now()
	segundos := utils.SecondsBetween(*current.InicioDescarga, now)
	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio: folio,
		Desde: []string{entities.EstadoDescargar},
		Hacia: entities.EstadoRechazado,
		Cambios: map[string]interface{}{
			"fin_descarga":    now,
			"tiempo_descarga": segundos,
			"comentarios":     comentario,
		},
		Actor:   actor,
		Detalle: comentario,
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("unload rejected", zap.Uint("folio", folio), zap.String("comentario", comentario))
	s.notifier.NotifyRechazo(p.Folio, p.NumeroEconomicoProveedor, comentario)
	return toResponse(p), nil
}

// iniciada loads the product and checks its unload has been started.
func (s *descargaService) iniciada(ctx context.Context, folio uint) (*entities.Producto, error) {
	current, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if current.Estado != entities.EstadoDescargar {
		return nil, domain.ErrInvalidProductState
	}
	if current.InicioDescarga == nil {
		return nil, domain.ErrDescargaNoIniciada
	}
	return current, nil
}

func toResponse(p *entities.Producto) *domain.DescargaResponse {
	return &domain.DescargaResponse{
		Folio:          p.Folio,
		FolioDisplay:   utils.FormatFolio(p.Folio),
		Estado:         p.Estado,
		InicioDescarga: p.InicioDescarga,
		FinDescarga:    p.FinDescarga,
		TiempoDescarga: p.TiempoDescarga,
		Comentarios:    p.Comentarios,
	}
}

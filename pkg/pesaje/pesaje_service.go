package pesaje

import (
	"context"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"go.uber.org/zap"
)

type (
	PesajeService interface {
		ColaPrimerPesaje(ctx context.Context) ([]*domain.ProductoResponse, error)
		ColaSegundoPesaje(ctx context.Context) ([]*domain.ProductoResponse, error)
		IniciarPrimerPesaje(ctx context.Context, folio uint, actor string) (*domain.ProductoResponse, error)
		RegistrarPrimerPesaje(ctx context.Context, folio uint, req domain.PesajeRequest, actor string) (*domain.PrimerPesajeResponse, error)
		RegistrarSegundoPesaje(ctx context.Context, folio uint, req domain.PesajeRequest, actor string) (*domain.SegundoPesajeResponse, error)
	}

	pesajeService struct {
		productoRepository producto.ProductoRepository
		logger             *zap.Logger
		loc                *time.Location
		now                func() time.Time
	}
)

var primerPesajeDesde = []string{entities.EstadoEsperaPesaje, entities.EstadoPrimerPesaje}

func NewPesajeService(productoRepository producto.ProductoRepository, logger *zap.Logger, loc *time.Location) PesajeService {
	return &pesajeService{
		productoRepository: productoRepository,
		logger:             logger,
		loc:                loc,
		now:                time.Now,
	}
}

func (s *pesajeService) ColaPrimerPesaje(ctx context.Context) ([]*domain.ProductoResponse, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, primerPesajeDesde...)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resp := producto.ToResponse(p, now, s.loc)
		resp.TiempoEspera = utils.FormatEspera(now.Sub(p.FechaIngreso))
		result = append(result, resp)
	}
	return result, nil
}

func (s *pesajeService) ColaSegundoPesaje(ctx context.Context) ([]*domain.ProductoResponse, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, entities.EstadoSegundoPesaje)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resp := producto.ToResponse(p, now, s.loc)
		if p.FinPesaje != nil {
			resp.TiempoEspera = utils.FormatEspera(now.Sub(*p.FinPesaje))
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *pesajeService) IniciarPrimerPesaje(ctx context.Context, folio uint, actor string) (*domain.ProductoResponse, error) {
	now := s.now()
	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio:   folio,
		Desde:   []string{entities.EstadoEsperaPesaje},
		Hacia:   entities.EstadoPrimerPesaje,
		Cambios: map[string]interface{}{"inicio_pesaje": now},
		Actor:   actor,
	})
	if err != nil {
		return nil, producto.MapError(err)
	}
	return producto.ToResponse(p, now, s.loc), nil
}

func (s *pesajeService) RegistrarPrimerPesaje(ctx context.Context, folio uint, req domain.PesajeRequest, actor string) (*domain.PrimerPesajeResponse, error) {
	kg, lb, err := ResolverPeso(req.PesoKg, req.PesoLb)
	if err != nil {
		return nil, err
	}

	current, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if !producto.Allowed(current.Estado, primerPesajeDesde) {
		return nil, domain.ErrInvalidProductState
	}

	now := s.now()
	inicio := now
	if current.InicioPesaje != nil {
		inicio = *current.InicioPesaje
	}
	enFila := utils.SecondsBetween(current.FechaIngreso, inicio)
	duracion := utils.SecondsBetween(inicio, now)

	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio: folio,
		Desde: primerPesajeDesde,
		Hacia: entities.EstadoSegundoPesaje,
		Cambios: map[string]interface{}{
			"peso_bruto_kg":   kg,
			"peso_bruto_lb":   lb,
			"inicio_pesaje":   inicio,
			"fin_pesaje":      now,
			"tiempo_en_fila":  enFila,
			"duracion_pesaje": duracion,
		},
		Actor:   actor,
		Detalle: "peso bruto " + kg.StringFixed(2) + " kg",
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("first weighing registered",
		zap.Uint("folio", folio),
		zap.String("peso_bruto_kg", kg.StringFixed(2)),
		zap.Int64("tiempo_en_fila", enFila),
	)

	return &domain.PrimerPesajeResponse{
		Folio:                     p.Folio,
		Estado:                    p.Estado,
		PesoBrutoKg:               p.PesoBrutoKg,
		PesoBrutoLb:               p.PesoBrutoLb,
		TiempoAntesPesaje:         utils.FormatHHMMSS(enFila),
		TiempoAntesPesajeSegundos: enFila,
		DuracionPesaje:            duracion,
	}, nil
}

func (s *pesajeService) RegistrarSegundoPesaje(ctx context.Context, folio uint, req domain.PesajeRequest, actor string) (*domain.SegundoPesajeResponse, error) {
	taraKg, taraLb, err := ResolverPeso(req.PesoKg, req.PesoLb)
	if err != nil {
		return nil, err
	}

	current, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if current.Estado != entities.EstadoSegundoPesaje {
		return nil, domain.ErrInvalidProductState
	}
	if taraKg.GreaterThan(current.PesoBrutoKg) {
		return nil, domain.ErrTareExceedsGross
	}

	netoKg := current.PesoBrutoKg.Sub(taraKg)
	netoLb := current.PesoBrutoLb.Sub(taraLb)
	if netoLb.IsNegative() {
		netoLb = KgToLb(netoKg)
	}

	p, err := s.productoRepository.Transition(ctx, producto.Transicion{
		Folio: folio,
		Desde: []string{entities.EstadoSegundoPesaje},
		Hacia: entities.EstadoDescargar,
		Cambios: map[string]interface{}{
			"peso_tara_kg": taraKg,
			"peso_tara_lb": taraLb,
			"peso_neto_kg": netoKg,
			"peso_neto_lb": netoLb,
		},
		Actor:   actor,
		Detalle: "peso neto " + netoKg.StringFixed(2) + " kg",
	})
	if err != nil {
		return nil, producto.MapError(err)
	}

	s.logger.Info("second weighing registered",
		zap.Uint("folio", folio),
		zap.String("peso_neto_kg", netoKg.StringFixed(2)),
	)

	return &domain.SegundoPesajeResponse{
		Folio:       p.Folio,
		Estado:      p.Estado,
		PesoBrutoKg: p.PesoBrutoKg,
		PesoBrutoLb: p.PesoBrutoLb,
		PesoTaraKg:  p.PesoTaraKg,
		PesoTaraLb:  p.PesoTaraLb,
		PesoNetoKg:  p.PesoNetoKg,
		PesoNetoLb:  p.PesoNetoLb,
	}, nil
}

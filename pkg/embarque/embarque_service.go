package embarque

import (
	"context"
	"strings"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	EmbarqueService interface {
		RegistrarSalida(ctx context.Context, req domain.RegistrarSalidaRequest, actor string) (*domain.EmbarqueResponse, error)
		GetEmbarques(ctx context.Context, page, limit int) ([]*domain.EmbarqueResponse, int64, error)
	}

	embarqueService struct {
		embarqueRepository EmbarqueRepository
		productoRepository producto.ProductoRepository
		logger             *zap.Logger
	}
)

func NewEmbarqueService(embarqueRepository EmbarqueRepository, productoRepository producto.ProductoRepository, logger *zap.Logger) EmbarqueService {
	return &embarqueService{
		embarqueRepository: embarqueRepository,
		productoRepository: productoRepository,
		logger:             logger,
	}
}

func (s *embarqueService) RegistrarSalida(ctx context.Context, req domain.RegistrarSalidaRequest, actor string) (*domain.EmbarqueResponse, error) {
	hora, err := time.Parse(domain.HoraSalidaLayout, strings.TrimSpace(req.HoraSalida))
	if err != nil {
		return nil, domain.ErrHoraSalidaInvalida
	}
	// always stored zero-padded
	req.HoraSalida = hora.Format(domain.HoraSalidaLayout)

	current, err := s.productoRepository.GetProductoByFolio(ctx, req.Folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if current.Estado == entities.EstadoEmbarque {
		return nil, domain.ErrEmbarqueAlreadyExists
	}
	if current.Estado != entities.EstadoProcesado {
		return nil, domain.ErrInvalidProductState
	}

	exists, err := s.embarqueRepository.ExistsEmbarque(ctx, req.Folio)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmbarqueAlreadyExists
	}

	embarque := &entities.Embarque{
		ID:            uuid.NewString(),
		Folio:         req.Folio,
		HoraSalida:    req.HoraSalida,
		TipoCamion:    req.TipoCamion,
		SelloSuperior: strings.TrimSpace(req.SelloSuperior),
		SelloInferior: strings.TrimSpace(req.SelloInferior),
		SelloExtra:    strings.TrimSpace(req.SelloExtra),
		Actor:         actor,
	}
	err = s.embarqueRepository.RegistrarSalida(ctx, embarque, producto.Transicion{
		Folio:   req.Folio,
		Desde:   []string{entities.EstadoProcesado},
		Hacia:   entities.EstadoEmbarque,
		Actor:   actor,
		Detalle: "salida " + req.HoraSalida + " en " + req.TipoCamion,
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrEmbarqueAlreadyExists
		}
		return nil, producto.MapError(err)
	}

	s.logger.Info("shipment registered",
		zap.Uint("folio", req.Folio),
		zap.String("tipo_camion", req.TipoCamion),
		zap.String("hora_salida", req.HoraSalida),
	)
	return toResponse(embarque), nil
}

func (s *embarqueService) GetEmbarques(ctx context.Context, page, limit int) ([]*domain.EmbarqueResponse, int64, error) {
	embarques, total, err := s.embarqueRepository.GetEmbarques(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.EmbarqueResponse, 0, len(embarques))
	for _, e := range embarques {
		result = append(result, toResponse(e))
	}
	return result, total, nil
}

func toResponse(e *entities.Embarque) *domain.EmbarqueResponse {
	return &domain.EmbarqueResponse{
		ID:            e.ID,
		Folio:         e.Folio,
		FolioDisplay:  utils.FormatFolio(e.Folio),
		HoraSalida:    e.HoraSalida,
		TipoCamion:    e.TipoCamion,
		SelloSuperior: e.SelloSuperior,
		SelloInferior: e.SelloInferior,
		SelloExtra:    e.SelloExtra,
		Actor:         e.Actor,
		CreatedAt:     e.CreatedAt,
	}
}

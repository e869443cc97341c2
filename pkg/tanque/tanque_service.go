package tanque

import (
	"context"
	"errors"
	"strings"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	TanqueService interface {
		GetTanques(ctx context.Context) ([]*domain.TanqueResponse, error)
		CreateTanque(ctx context.Context, req domain.CreateTanqueRequest) (*domain.TanqueResponse, error)
		AsignarTanque(ctx context.Context, req domain.AsignarTanqueRequest, actor string) (*domain.AsignacionResponse, error)
		Subscribe() (<-chan domain.TanqueResponse, func())
	}

	tanqueService struct {
		tanqueRepository   TanqueRepository
		productoRepository producto.ProductoRepository
		hub                *Hub
		logger             *zap.Logger
	}
)

var asignableDesde = []string{entities.EstadoProcesar, entities.EstadoProcesado}

func NewTanqueService(tanqueRepository TanqueRepository, productoRepository producto.ProductoRepository, hub *Hub, logger *zap.Logger) TanqueService {
	return &tanqueService{
		tanqueRepository:   tanqueRepository,
		productoRepository: productoRepository,
		hub:                hub,
		logger:             logger,
	}
}

func (s *tanqueService) GetTanques(ctx context.Context) ([]*domain.TanqueResponse, error) {
	tanques, err := s.tanqueRepository.GetTanques(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.TanqueResponse, 0, len(tanques))
	for _, t := range tanques {
		resp := ToResponse(t)
		result = append(result, &resp)
	}
	return result, nil
}

func (s *tanqueService) CreateTanque(ctx context.Context, req domain.CreateTanqueRequest) (*domain.TanqueResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, domain.ErrCamposRequeridos
	}
	if req.Litros < 0 {
		return nil, domain.ErrLitrosInvalidos
	}
	estado := req.Estado
	if estado == "" {
		estado = entities.TanqueVerde
	}

	tanque := &entities.Tanque{
		Nombre: nombre,
		Estado: estado,
		Litros: decimal.NewFromFloat(req.Litros).Round(2),
	}
	if err := s.tanqueRepository.CreateTanque(ctx, tanque); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrTanqueAlreadyExists
		}
		return nil, err
	}

	resp := ToResponse(tanque)
	s.hub.Publish(resp)
	return &resp, nil
}

func (s *tanqueService) AsignarTanque(ctx context.Context, req domain.AsignarTanqueRequest, actor string) (*domain.AsignacionResponse, error) {
	if _, ok := domain.TanqueEstadoDescripcion[req.Estado]; !ok {
		return nil, domain.ErrInvalidEstado
	}
	litros := decimal.NewFromFloat(req.Litros).Round(2)
	if !litros.IsPositive() {
		return nil, domain.ErrLitrosInvalidos
	}

	current, err := s.productoRepository.GetProductoByFolio(ctx, req.Folio)
	if err != nil {
		return nil, producto.MapError(err)
	}
	if !producto.Allowed(current.Estado, asignableDesde) {
		return nil, domain.ErrInvalidProductState
	}

	destino, err := s.tanqueRepository.GetTanqueByID(ctx, req.TanqueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTanqueNotFound
		}
		return nil, err
	}

	assigned, err := s.tanqueRepository.ExistsAsignacion(ctx, req.Folio)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, domain.ErrTanqueAlreadyAssigned
	}

	asignacion := &entities.TanqueProducto{
		ID:            uuid.NewString(),
		FolioProducto: req.Folio,
		IDTanque:      req.TanqueID,
		Litros:        litros,
		Estado:        req.Estado,
	}
	tanque, err := s.tanqueRepository.AsignarTanque(ctx, asignacion, producto.Transicion{
		Folio:   req.Folio,
		Desde:   asignableDesde,
		Hacia:   entities.EstadoProcesado,
		Actor:   actor,
		Detalle: "asignado a " + destino.Nombre,
	})
	if err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrTanqueAlreadyAssigned
		}
		return nil, err
	}

	resp := ToResponse(tanque)
	s.hub.Publish(resp)
	s.logger.Info("tank assigned",
		zap.Uint("folio", req.Folio),
		zap.Uint("tanque", tanque.ID),
		zap.String("estado", req.Estado),
		zap.String("litros", litros.StringFixed(2)),
	)

	return &domain.AsignacionResponse{
		ID:     asignacion.ID,
		Folio:  asignacion.FolioProducto,
		Estado: asignacion.Estado,
		Litros: asignacion.Litros,
		Tanque: resp,
	}, nil
}

func (s *tanqueService) Subscribe() (<-chan domain.TanqueResponse, func()) {
	return s.hub.Subscribe()
}

func ToResponse(t *entities.Tanque) domain.TanqueResponse {
	return domain.TanqueResponse{
		ID:                t.ID,
		Nombre:            t.Nombre,
		Estado:            t.Estado,
		EstadoDescripcion: domain.TanqueEstadoDescripcion[t.Estado],
		Litros:            t.Litros,
	}
}

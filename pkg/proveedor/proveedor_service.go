package proveedor

import (
	"context"
	"errors"
	"strings"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	ProveedorService interface {
		CreateProveedor(ctx context.Context, req domain.CreateProveedorRequest) (*domain.ProveedorResponse, error)
		GetProveedores(ctx context.Context) ([]*domain.ProveedorResponse, error)
		GetProveedor(ctx context.Context, numero string) (*domain.ProveedorResponse, error)
		UpdateProveedor(ctx context.Context, numero string, req domain.UpdateProveedorRequest) (*domain.ProveedorResponse, error)
		DeleteProveedor(ctx context.Context, numero string) error
		GetCamiones(ctx context.Context, numero string) ([]*domain.CamionResponse, error)
	}

	proveedorService struct {
		proveedorRepository ProveedorRepository
		logger              *zap.Logger
	}
)

func NewProveedorService(proveedorRepository ProveedorRepository, logger *zap.Logger) ProveedorService {
	return &proveedorService{
		proveedorRepository: proveedorRepository,
		logger:              logger,
	}
}

func (s *proveedorService) CreateProveedor(ctx context.Context, req domain.CreateProveedorRequest) (*domain.ProveedorResponse, error) {
	proveedor := &entities.Proveedor{
		NumeroEconomico: strings.TrimSpace(req.NumeroEconomico),
		Nombre:          strings.TrimSpace(req.Nombre),
		SegundoNombre:   strings.TrimSpace(req.SegundoNombre),
		Apellido:        strings.TrimSpace(req.Apellido),
		ApellidoMaterno: strings.TrimSpace(req.ApellidoMaterno),
	}
	if proveedor.NumeroEconomico == "" || proveedor.Nombre == "" ||
		proveedor.SegundoNombre == "" || proveedor.Apellido == "" {
		return nil, domain.ErrCamposRequeridos
	}

	exists, err := s.proveedorRepository.ExistsProveedor(ctx, proveedor.NumeroEconomico)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProveedorAlreadyExists
	}

	if err := s.proveedorRepository.CreateProveedor(ctx, proveedor); err != nil {
		// a concurrent insert can still win the race past the pre-check
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrProveedorAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("supplier registered", zap.String("numero_economico", proveedor.NumeroEconomico))
	return toResponse(proveedor), nil
}

func (s *proveedorService) GetProveedores(ctx context.Context) ([]*domain.ProveedorResponse, error) {
	proveedores, err := s.proveedorRepository.GetProveedores(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		result = append(result, toResponse(p))
	}
	return result, nil
}

func (s *proveedorService) GetProveedor(ctx context.Context, numero string) (*domain.ProveedorResponse, error) {
	proveedor, err := s.proveedorRepository.GetProveedorByNumero(ctx, strings.TrimSpace(numero))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProveedorNotFound
		}
		return nil, err
	}
	return toResponse(proveedor), nil
}

func (s *proveedorService) UpdateProveedor(ctx context.Context, numero string, req domain.UpdateProveedorRequest) (*domain.ProveedorResponse, error) {
	numero = strings.TrimSpace(numero)
	proveedor := &entities.Proveedor{
		NumeroEconomico: strings.TrimSpace(req.NumeroEconomico),
		Nombre:          strings.TrimSpace(req.Nombre),
		SegundoNombre:   strings.TrimSpace(req.SegundoNombre),
		Apellido:        strings.TrimSpace(req.Apellido),
		ApellidoMaterno: strings.TrimSpace(req.ApellidoMaterno),
	}
	if proveedor.NumeroEconomico == "" || proveedor.Nombre == "" || proveedor.Apellido == "" {
		return nil, domain.ErrCamposRequeridos
	}

	if proveedor.NumeroEconomico != numero {
		exists, err := s.proveedorRepository.ExistsProveedor(ctx, proveedor.NumeroEconomico)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrProveedorAlreadyExists
		}
	}

	if err := s.proveedorRepository.UpdateProveedor(ctx, numero, proveedor); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, domain.ErrProveedorNotFound
		case utils.IsUniqueViolation(err):
			return nil, domain.ErrProveedorAlreadyExists
		}
		return nil, err
	}

	s.logger.Info("supplier updated",
		zap.String("numero_economico", numero),
		zap.String("nuevo_numero_economico", proveedor.NumeroEconomico),
	)
	return toResponse(proveedor), nil
}

func (s *proveedorService) DeleteProveedor(ctx context.Context, numero string) error {
	numero = strings.TrimSpace(numero)
	count, err := s.proveedorRepository.CountProductos(ctx, numero)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProveedorInUse
	}

	if err := s.proveedorRepository.DeleteProveedor(ctx, numero); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return domain.ErrProveedorNotFound
		case utils.IsForeignKeyViolation(err):
			return domain.ErrProveedorInUse
		}
		return err
	}

	s.logger.Info("supplier deleted", zap.String("numero_economico", numero))
	return nil
}

func (s *proveedorService) GetCamiones(ctx context.Context, numero string) ([]*domain.CamionResponse, error) {
	numero = strings.TrimSpace(numero)
	exists, err := s.proveedorRepository.ExistsProveedor(ctx, numero)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProveedorNotFound
	}

	camiones, err := s.proveedorRepository.GetCamiones(ctx, numero)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CamionResponse, 0, len(camiones))
	for _, c := range camiones {
		result = append(result, &domain.CamionResponse{
			NumeroEconomico: c.NumeroEconomico,
			Placas:          c.Placas,
			Tipo:            c.Tipo,
			Proveedor:       c.Proveedor,
		})
	}
	return result, nil
}

func toResponse(p *entities.Proveedor) *domain.ProveedorResponse {
	return &domain.ProveedorResponse{
		NumeroEconomico:  p.NumeroEconomico,
		Nombre:           p.Nombre,
		SegundoNombre:    p.SegundoNombre,
		Apellido:         p.Apellido,
		ApellidoMaterno:  p.ApellidoMaterno,
		NombreCompleto:   utils.JoinNonEmpty(p.Nombre, p.SegundoNombre),
		ApellidoCompleto: utils.JoinNonEmpty(p.Apellido, p.ApellidoMaterno),
	}
}

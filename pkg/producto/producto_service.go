package producto

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/internal/utils/storage"
	"galeana-pepper/pkg/proveedor"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	ProductoService interface {
		RegistrarIngreso(ctx context.Context, req domain.RegistrarIngresoRequest, actor string) (*domain.IngresoResponse, error)
		EnviarAPesaje(ctx context.Context, folio uint, actor string) (*domain.ProductoResponse, error)
		ListaEspera(ctx context.Context) ([]*domain.ProductoResponse, error)
		ListByEstado(ctx context.Context, estado string) ([]*domain.ProductoResponse, error)
		GetProducto(ctx context.Context, folio uint) (*domain.ProductoResponse, error)
		SubirFoto(ctx context.Context, folio uint, file *multipart.FileHeader) (*domain.ProductoResponse, error)
		GetEventos(ctx context.Context, folio uint) ([]*domain.ProductoEventoResponse, error)
	}

	productoService struct {
		productoRepository  ProductoRepository
		proveedorRepository proveedor.ProveedorRepository
		s3                  storage.AwsS3
		logger              *zap.Logger
		loc                 *time.Location
		now                 func() time.Time
	}
)

func NewProductoService(
	productoRepository ProductoRepository,
	proveedorRepository proveedor.ProveedorRepository,
	s3 storage.AwsS3,
	logger *zap.Logger,
	loc *time.Location,
) ProductoService {
	return &productoService{
		productoRepository:  productoRepository,
		proveedorRepository: proveedorRepository,
		s3:                  s3,
		logger:              logger,
		loc:                 loc,
		now:                 time.Now,
	}
}

func (s *productoService) RegistrarIngreso(ctx context.Context, req domain.RegistrarIngresoRequest, actor string) (*domain.IngresoResponse, error) {
	numero := strings.TrimSpace(req.NumeroEconomico)
	exists, err := s.proveedorRepository.ExistsProveedor(ctx, numero)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrProveedorNotFound
	}

	basura := decimal.NewFromFloat(req.PorcentajeBasura).Round(2)
	verde := decimal.NewFromFloat(req.PorcentajeChileVerde).Round(2)
	muerto := decimal.NewFromFloat(req.PorcentajeChileMuerto).Round(2)

	camion := &entities.Camion{
		Placas:    strings.ToUpper(strings.TrimSpace(req.Placas)),
		Tipo:      req.TipoCamion,
		Proveedor: numero,
	}
	producto := &entities.Producto{
		NumeroEconomicoProveedor: numero,
		FechaIngreso:             s.now(),
		Estado:                   EstadoInicial(basura, verde, muerto),
		PorcentajeBasura:         basura,
		PorcentajeChileVerde:     verde,
		PorcentajeChileMuerto:    muerto,
		Comentarios:              strings.TrimSpace(req.Comentario),
	}

	if err := s.productoRepository.RegistrarIngreso(ctx, camion, producto, actor); err != nil {
		return nil, err
	}

	s.logger.Info("intake registered",
		zap.Uint("folio", producto.Folio),
		zap.String("proveedor", numero),
		zap.String("estado", producto.Estado),
	)

	return &domain.IngresoResponse{
		Folio:                 producto.Folio,
		FolioDisplay:          utils.FormatFolio(producto.Folio),
		Estado:                producto.Estado,
		NumeroEconomicoCamion: camion.NumeroEconomico,
		FechaIngreso:          producto.FechaIngreso,
	}, nil
}

// EstadoInicial rejects a load on arrival when any waste share is over its threshold.
func EstadoInicial(basura, verde, muerto decimal.Decimal) string {
	if basura.GreaterThan(domain.UmbralBasura) ||
		verde.GreaterThan(domain.UmbralChileVerde) ||
		muerto.GreaterThan(domain.UmbralChileMuerto) {
		return entities.EstadoRechazado
	}
	return entities.EstadoIngreso
}

func (s *productoService) EnviarAPesaje(ctx context.Context, folio uint, actor string) (*domain.ProductoResponse, error) {
	p, err := s.productoRepository.Transition(ctx, Transicion{
		Folio: folio,
		Desde: []string{entities.EstadoIngreso},
		Hacia: entities.EstadoEsperaPesaje,
		Actor: actor,
	})
	if err != nil {
		return nil, MapError(err)
	}
	return ToResponse(p, s.now(), s.loc), nil
}

func (s *productoService) ListaEspera(ctx context.Context) ([]*domain.ProductoResponse, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, ActiveStates...)
	if err != nil {
		return nil, err
	}
	return s.toResponses(productos), nil
}

func (s *productoService) ListByEstado(ctx context.Context, estado string) ([]*domain.ProductoResponse, error) {
	if !IsEstado(estado) {
		return nil, domain.ErrInvalidEstado
	}
	productos, err := s.productoRepository.GetProductosByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	return s.toResponses(productos), nil
}

func (s *productoService) GetProducto(ctx context.Context, folio uint) (*domain.ProductoResponse, error) {
	p, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, MapError(err)
	}
	return ToResponse(p, s.now(), s.loc), nil
}

func (s *productoService) SubirFoto(ctx context.Context, folio uint, file *multipart.FileHeader) (*domain.ProductoResponse, error) {
	if file == nil {
		return nil, domain.ErrFotoRequerida
	}
	p, err := s.productoRepository.GetProductoByFolio(ctx, folio)
	if err != nil {
		return nil, MapError(err)
	}

	objectKey, err := s.s3.UploadFile(
		ctx,
		fmt.Sprintf("folio-%s-%d", utils.FormatFolio(folio), s.now().Unix()),
		file,
		"productos",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}
	url := s.s3.GetPublicLinkKey(objectKey)

	if err := s.productoRepository.UpdateFotoURL(ctx, folio, url); err != nil {
		_ = s.s3.DeleteFile(ctx, objectKey)
		return nil, MapError(err)
	}

	if oldKey := s.s3.GetObjectKeyFromLink(p.FotoURL); oldKey != "" {
		if err := s.s3.DeleteFile(ctx, oldKey); err != nil {
			s.logger.Warn("failed to delete previous photo", zap.Uint("folio", folio), zap.Error(err))
		}
	}

	p.FotoURL = url
	return ToResponse(p, s.now(), s.loc), nil
}

func (s *productoService) GetEventos(ctx context.Context, folio uint) ([]*domain.ProductoEventoResponse, error) {
	if _, err := s.productoRepository.GetProductoByFolio(ctx, folio); err != nil {
		return nil, MapError(err)
	}
	eventos, err := s.productoRepository.GetEventos(ctx, folio)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ProductoEventoResponse, 0, len(eventos))
	for _, e := range eventos {
		result = append(result, ToEventoResponse(e))
	}
	return result, nil
}

func (s *productoService) toResponses(productos []*entities.Producto) []*domain.ProductoResponse {
	now := s.now()
	result := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		result = append(result, ToResponse(p, now, s.loc))
	}
	return result
}

// MapError turns a missing row into domain.ErrProductoNotFound.
func MapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProductoNotFound
	}
	return err
}

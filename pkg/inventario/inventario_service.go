package inventario

import (
	"context"
	"encoding/csv"
	"encoding/xml"
	"io"
	"strconv"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"
)

type (
	InventarioService interface {
		GetProcesados(ctx context.Context) ([]*domain.InventarioItem, error)
		ExportXML(ctx context.Context, w io.Writer) error
		ExportCSV(ctx context.Context, w io.Writer) error
	}

	inventarioService struct {
		productoRepository producto.ProductoRepository
		loc                *time.Location
	}
)

var csvHeader = []string{"Folio", "Proveedor", "FechaIngreso", "InicioProceso", "Duracion", "PorcentajeSal"}

func NewInventarioService(productoRepository producto.ProductoRepository, loc *time.Location) InventarioService {
	return &inventarioService{
		productoRepository: productoRepository,
		loc:                loc,
	}
}

func (s *inventarioService) GetProcesados(ctx context.Context) ([]*domain.InventarioItem, error) {
	productos, err := s.productoRepository.GetProductosByEstado(ctx, entities.EstadoProcesado)
	if err != nil {
		return nil, err
	}
	items := make([]*domain.InventarioItem, 0, len(productos))
	for _, p := range productos {
		items = append(items, s.toItem(p))
	}
	return items, nil
}

func (s *inventarioService) ExportXML(ctx context.Context, w io.Writer) error {
	items, err := s.GetProcesados(ctx)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(domain.InventarioXML{Productos: items}); err != nil {
		return err
	}
	return enc.Flush()
}

func (s *inventarioService) ExportCSV(ctx context.Context, w io.Writer) error {
	items, err := s.GetProcesados(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range items {
		if err := cw.Write([]string{
			strconv.FormatUint(uint64(it.Folio), 10),
			it.Proveedor,
			it.FechaIngreso,
			it.InicioProceso,
			it.Duracion,
			it.PorcentajeSal.StringFixed(1),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *inventarioService) toItem(p *entities.Producto) *domain.InventarioItem {
	item := &domain.InventarioItem{
		Folio:         p.Folio,
		Proveedor:     p.NumeroEconomicoProveedor,
		FechaIngreso:  p.FechaIngreso.In(s.loc).Format("2006-01-02 15:04:05"),
		Duracion:      utils.FormatHHMMSS(p.DuracionProceso),
		PorcentajeSal: p.PorcentajeSal,
	}
	if p.InicioProceso != nil {
		item.InicioProceso = p.InicioProceso.In(s.loc).Format("2006-01-02 15:04:05")
	}
	return item
}

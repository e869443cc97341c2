package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/internal/utils"
	"galeana-pepper/pkg/producto"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type (
	DashboardService interface {
		GetMetricas(ctx context.Context) (*domain.MetricasResponse, error)
		GetAuditoria(ctx context.Context, page int, search string) (*domain.AuditoriaResponse, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
		productoRepository  producto.ProductoRepository
		loc                 *time.Location
		now                 func() time.Time
	}
)

var mil = decimal.NewFromInt(1000)

func NewDashboardService(dashboardRepository DashboardRepository, productoRepository producto.ProductoRepository, loc *time.Location) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		productoRepository:  productoRepository,
		loc:                 loc,
		now:                 time.Now,
	}
}

// Categoria buckets a normalized indicator value.
func Categoria(v float64) string {
	switch {
	case v < 0.3:
		return domain.CategoriaRojo
	case v < 0.7:
		return domain.CategoriaNaranja
	default:
		return domain.CategoriaEsmeralda
	}
}

// Dia returns the bounds of the plant-local day containing t.
func Dia(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func (s *dashboardService) GetMetricas(ctx context.Context) (*domain.MetricasResponse, error) {
	from, to := Dia(s.now(), s.loc)

	var (
		pesoKg      decimal.Decimal
		procesados  int64
		segundos    int64
		registrados int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pesoKg, err = s.dashboardRepository.SumPesoNetoProcesado(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		procesados, segundos, err = s.dashboardRepository.ResumenDuracionProceso(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		registrados, err = s.dashboardRepository.CountRegistrados(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.MetricasResponse{
		Fecha:                 from.Format("2006-01-02"),
		ToneladasProcesadas:   toneladas(pesoKg),
		TiempoPromedioProceso: tiempoPromedio(procesados, segundos),
		Cumplimiento:          cumplimiento(procesados, registrados),
	}, nil
}

func toneladas(kg decimal.Decimal) domain.Metrica {
	t := kg.Div(mil)
	valor := math.Min(t.InexactFloat64(), 1)
	return domain.Metrica{
		Etiqueta:  "Toneladas procesadas",
		Valor:     valor,
		Texto:     t.StringFixed(2) + " t",
		Fraccion:  kg.StringFixed(2) + " kg",
		Categoria: Categoria(valor),
	}
}

func tiempoPromedio(procesados, segundos int64) domain.Metrica {
	var promedio float64
	if procesados > 0 {
		promedio = float64(segundos) / float64(procesados)
	}
	fraccion := "0"
	if procesados > 0 {
		fraccion = fmt.Sprintf("%d proceso(s)", procesados)
	}
	valor := promedio / 3600
	return domain.Metrica{
		Etiqueta:  "Tiempo promedio de procesamiento",
		Valor:     valor,
		Texto:     utils.FormatHHMMSS(int64(math.Round(promedio))),
		Fraccion:  fraccion,
		Categoria: Categoria(valor),
	}
}

func cumplimiento(procesados, registrados int64) domain.Metrica {
	var valor float64
	if registrados > 0 {
		valor = float64(procesados) / float64(registrados)
	}
	return domain.Metrica{
		Etiqueta:  "Porcentaje de cumplimiento",
		Valor:     valor,
		Texto:     fmt.Sprintf("%.1f%%", valor*100),
		Fraccion:  fmt.Sprintf("%d/%d", procesados, registrados),
		Categoria: Categoria(valor),
	}
}

func (s *dashboardService) GetAuditoria(ctx context.Context, page int, search string) (*domain.AuditoriaResponse, error) {
	page = domain.ClampPage(page)
	productos, total, err := s.productoRepository.GetProductos(ctx, search, page, domain.AuditoriaPageSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]*domain.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, producto.ToResponse(p, now, s.loc))
	}
	return &domain.AuditoriaResponse{
		Items:      items,
		Pagination: domain.NewPagination(page, domain.AuditoriaPageSize, total),
	}, nil
}

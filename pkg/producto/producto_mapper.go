package producto

import (
	"time"

	"galeana-pepper/domain"
	"galeana-pepper/entities"
	"galeana-pepper/internal/utils"
)

// ToResponse renders p for the API, with elapsed time measured at now in the plant's zone.
func ToResponse(p *entities.Producto, now time.Time, loc *time.Location) *domain.ProductoResponse {
	ingreso := p.FechaIngreso.In(loc)
	return &domain.ProductoResponse{
		Folio:                    p.Folio,
		FolioDisplay:             utils.FormatFolio(p.Folio),
		NumeroEconomicoProveedor: p.NumeroEconomicoProveedor,
		NumeroEconomicoCamion:    p.NumeroEconomicoCamion,
		FechaIngreso:             ingreso.Format("2006-01-02"),
		HoraIngreso:              ingreso.Format("15:04:05"),
		Estado:                   p.Estado,

		PesoBrutoKg: p.PesoBrutoKg,
		PesoBrutoLb: p.PesoBrutoLb,
		PesoTaraKg:  p.PesoTaraKg,
		PesoTaraLb:  p.PesoTaraLb,
		PesoNetoKg:  p.PesoNetoKg,
		PesoNetoLb:  p.PesoNetoLb,

		PorcentajeBasura:      p.PorcentajeBasura,
		PorcentajeChileVerde:  p.PorcentajeChileVerde,
		PorcentajeChileMuerto: p.PorcentajeChileMuerto,
		PorcentajeSal:         p.PorcentajeSal,

		InicioPesaje:   p.InicioPesaje,
		FinPesaje:      p.FinPesaje,
		InicioDescarga: p.InicioDescarga,
		FinDescarga:    p.FinDescarga,
		InicioProceso:  p.InicioProceso,
		FinProceso:     p.FinProceso,

		TiempoEnFila:    p.TiempoEnFila,
		DuracionPesaje:  p.DuracionPesaje,
		TiempoDescarga:  p.TiempoDescarga,
		DuracionProceso: p.DuracionProceso,

		Comentarios: p.Comentarios,
		FotoURL:     p.FotoURL,

		TiempoTranscurrido: utils.FormatHHMMSS(utils.SecondsBetween(p.FechaIngreso, now)),
	}
}

func ToEventoResponse(e *entities.ProductoEvento) *domain.ProductoEventoResponse {
	return &domain.ProductoEventoResponse{
		ID:             e.ID,
		Folio:          e.Folio,
		EstadoAnterior: e.EstadoAnterior,
		EstadoNuevo:    e.EstadoNuevo,
		Actor:          e.Actor,
		Detalle:        e.Detalle,
		CreatedAt:      e.CreatedAt,
	}
}

// IsEstado reports whether s is a known product state.
func IsEstado(s string) bool {
	switch s {
	case entities.EstadoIngreso, entities.EstadoEsperaPesaje, entities.EstadoPrimerPesaje,
		entities.EstadoSegundoPesaje, entities.EstadoDescargar, entities.EstadoProcesar,
		entities.EstadoProcesado, entities.EstadoEmbarque, entities.EstadoRechazado:
		return true
	}
	return false
}

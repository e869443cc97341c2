package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product states, in the order a batch normally walks through them.
const (
	EstadoIngreso       = "ingreso"
	EstadoEsperaPesaje  = "espera_pesaje"
	EstadoPrimerPesaje  = "primer_pesaje"
	EstadoSegundoPesaje = "segundo_pesaje"
	EstadoDescargar     = "descargar"
	EstadoProcesar      = "procesar"
	EstadoProcesado     = "procesado"
	EstadoEmbarque      = "embarque"
	EstadoRechazado     = "rechazado"
)

// Producto is one intake batch. Folio is the plant's sequential ticket number.
type Producto struct {
	Folio                    uint      `gorm:"primaryKey;autoIncrement" json:"folio"`
	NumeroEconomicoProveedor string    `gorm:"type:varchar(50);index;not null" json:"numero_economico_proveedor"`
	NumeroEconomicoCamion    uint      `gorm:"index" json:"numero_economico_camion"`
	FechaIngreso             time.Time `gorm:"type:timestamp with time zone;index;not null" json:"fecha_ingreso"`
	Estado                   string    `gorm:"type:varchar(20);index;not null" json:"estado"`

	PesoBrutoKg decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_bruto_kg"`
	PesoBrutoLb decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_bruto_lb"`
	PesoTaraKg  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_tara_kg"`
	PesoTaraLb  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_tara_lb"`
	PesoNetoKg  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_neto_kg"`
	PesoNetoLb  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"peso_neto_lb"`

	PorcentajeBasura      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"porcentaje_basura"`
	PorcentajeChileVerde  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"porcentaje_chile_verde"`
	PorcentajeChileMuerto decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"porcentaje_chile_muerto"`
	PorcentajeSal         decimal.Decimal `gorm:"type:numeric(4,1);not null;default:0" json:"porcentaje_sal"`

	InicioPesaje   *time.Time `gorm:"type:timestamp with time zone" json:"inicio_pesaje,omitempty"`
	FinPesaje      *time.Time `gorm:"type:timestamp with time zone" json:"fin_pesaje,omitempty"`
	InicioDescarga *time.Time `gorm:"type:timestamp with time zone" json:"inicio_descarga,omitempty"`
	FinDescarga    *time.Time `gorm:"type:timestamp with time zone" json:"fin_descarga,omitempty"`
	InicioProceso  *time.Time `gorm:"type:timestamp with time zone" json:"inicio_proceso,omitempty"`
	FinProceso     *time.Time `gorm:"type:timestamp with time zone;index" json:"fin_proceso,omitempty"`

	// Stage durations, in seconds.
	TiempoEnFila    int64 `gorm:"not null;default:0" json:"tiempo_en_fila"`
	DuracionPesaje  int64 `gorm:"not null;default:0" json:"duracion_pesaje"`
	TiempoDescarga  int64 `gorm:"not null;default:0" json:"tiempo_descarga"`
	DuracionProceso int64 `gorm:"not null;default:0" json:"duracion_proceso"`

	Comentarios string `gorm:"type:text" json:"comentarios"`
	FotoURL     string `gorm:"type:text" json:"foto_url,omitempty"`

	Proveedor *Proveedor `gorm:"foreignKey:NumeroEconomicoProveedor;references:NumeroEconomico;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Camion    *Camion    `gorm:"foreignKey:NumeroEconomicoCamion;references:NumeroEconomico" json:"-"`
	Timestamp
}

func (Producto) TableName() string { return "productos" }

// ProductoEvento is one row of the product's state ledger.
type ProductoEvento struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	Folio          uint   `gorm:"index;not null" json:"folio"`
	EstadoAnterior string `gorm:"type:varchar(20)" json:"estado_anterior"`
	EstadoNuevo    string `gorm:"type:varchar(20);not null" json:"estado_nuevo"`
	Actor          string `gorm:"type:varchar(100)" json:"actor"`
	Detalle        string `gorm:"type:text" json:"detalle,omitempty"`

	Producto *Producto `gorm:"foreignKey:Folio;references:Folio" json:"-"`
	Timestamp
}

func (ProductoEvento) TableName() string { return "producto_eventos" }

package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessRegistrarIngreso = "intake registered successfully"
	MessageSuccessEnviarAPesaje    = "product sent to the weighing queue"
	MessageSuccessGetProductos     = "products retrieved successfully"
	MessageSuccessGetProducto      = "product retrieved successfully"
	MessageSuccessUploadFoto       = "photo uploaded successfully"
	MessageSuccessGetEventos       = "product events retrieved successfully"

	MessageFailedRegistrarIngreso = "failed to register intake"
	MessageFailedEnviarAPesaje    = "failed to send product to the weighing queue"
	MessageFailedGetProductos     = "failed to retrieve products"
	MessageFailedGetProducto      = "failed to retrieve product"
	MessageFailedUploadFoto       = "failed to upload photo"
	MessageFailedGetEventos       = "failed to retrieve product events"

	ErrInvalidEstado = errors.New("invalid product state")
	ErrFotoRequerida = errors.New("photo file is required")

	// Waste thresholds above which an intake is rejected on arrival.
	UmbralBasura      = decimal.NewFromInt(25)
	UmbralChileVerde  = decimal.NewFromInt(35)
	UmbralChileMuerto = decimal.NewFromInt(15)
)

type (
	RegistrarIngresoRequest struct {
		NumeroEconomico       string  `json:"numero_economico" validate:"required,max=50"`
		Placas                string  `json:"placas" validate:"required,max=20"`
		TipoCamion            string  `json:"tipo_camion" validate:"required,oneof=dompe trailer tolva liquidos"`
		Comentario            string  `json:"comentario" validate:"max=1000"`
		PorcentajeBasura      float64 `json:"porcentaje_basura" validate:"gte=0,lte=100"`
		PorcentajeChileVerde  float64 `json:"porcentaje_chile_verde" validate:"gte=0,lte=100"`
		PorcentajeChileMuerto float64 `json:"porcentaje_chile_muerto" validate:"gte=0,lte=100"`
	}

	IngresoResponse struct {
		Folio                 uint      `json:"folio"`
		FolioDisplay          string    `json:"folio_display"`
		Estado                string    `json:"estado"`
		NumeroEconomicoCamion uint      `json:"numero_economico_camion"`
		FechaIngreso          time.Time `json:"fecha_ingreso"`
	}

	ProductoResponse struct {
		Folio                    uint   `json:"folio"`
		FolioDisplay             string `json:"folio_display"`
		NumeroEconomicoProveedor string `json:"numero_economico_proveedor"`
		NumeroEconomicoCamion    uint   `json:"numero_economico_camion"`
		FechaIngreso             string `json:"fecha_ingreso"`
		HoraIngreso              string `json:"hora_ingreso"`
		Estado                   string `json:"estado"`

		PesoBrutoKg decimal.Decimal `json:"peso_bruto_kg"`
		PesoBrutoLb decimal.Decimal `json:"peso_bruto_lb"`
		PesoTaraKg  decimal.Decimal `json:"peso_tara_kg"`
		PesoTaraLb  decimal.Decimal `json:"peso_tara_lb"`
		PesoNetoKg  decimal.Decimal `json:"peso_neto_kg"`
		PesoNetoLb  decimal.Decimal `json:"peso_neto_lb"`

		PorcentajeBasura      decimal.Decimal `json:"porcentaje_basura"`
		PorcentajeChileVerde  decimal.Decimal `json:"porcentaje_chile_verde"`
		PorcentajeChileMuerto decimal.Decimal `json:"porcentaje_chile_muerto"`
		PorcentajeSal         decimal.Decimal `json:"porcentaje_sal"`

		InicioPesaje   *time.Time `json:"inicio_pesaje,omitempty"`
		FinPesaje      *time.Time `json:"fin_pesaje,omitempty"`
		InicioDescarga *time.Time `json:"inicio_descarga,omitempty"`
		FinDescarga    *time.Time `json:"fin_descarga,omitempty"`
		InicioProceso  *time.Time `json:"inicio_proceso,omitempty"`
		FinProceso     *time.Time `json:"fin_proceso,omitempty"`

		TiempoEnFila    int64 `json:"tiempo_en_fila"`
		DuracionPesaje  int64 `json:"duracion_pesaje"`
		TiempoDescarga  int64 `json:"tiempo_descarga"`
		DuracionProceso int64 `json:"duracion_proceso"`

		Comentarios string `json:"comentarios,omitempty"`
		FotoURL     string `json:"foto_url,omitempty"`

		// Time since intake, HH:MM:SS.
		TiempoTranscurrido string `json:"tiempo_transcurrido"`
		TiempoEspera       string `json:"tiempo_espera,omitempty"`
	}

	ProductoEventoResponse struct {
		ID             string    `json:"id"`
		Folio          uint      `json:"folio"`
		EstadoAnterior string    `json:"estado_anterior"`
		EstadoNuevo    string    `json:"estado_nuevo"`
		Actor          string    `json:"actor"`
		Detalle        string    `json:"detalle,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)

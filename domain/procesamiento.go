package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessIniciarProceso   = "processing started"
	MessageSuccessRegistrarProceso = "processing registered successfully"

	MessageFailedIniciarProceso   = "failed to start processing"
	MessageFailedRegistrarProceso = "failed to register processing"

	ErrProcesoNoIniciado     = errors.New("processing has not been started")
	ErrPorcentajeSalInvalido = errors.New("salt percentage must be between 0 and 22 with at most one decimal")

	PorcentajeSalMaximo = decimal.NewFromInt(22)
)

type (
	RegistrarProcesoRequest struct {
		PorcentajeSal *float64 `json:"porcentaje_sal" validate:"required,gte=0,lte=22"`
	}

	ProcesoResponse struct {
		Folio           uint            `json:"folio"`
		FolioDisplay    string          `json:"folio_display"`
		Estado          string          `json:"estado"`
		PorcentajeSal   decimal.Decimal `json:"porcentaje_sal"`
		InicioProceso   *time.Time      `json:"inicio_proceso,omitempty"`
		FinProceso      *time.Time      `json:"fin_proceso,omitempty"`
		DuracionProceso int64           `json:"duracion_proceso"`
		Duracion        string          `json:"duracion"`
	}
)

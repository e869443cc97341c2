package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessIniciarPesaje = "weighing started"
	MessageSuccessPrimerPesaje  = "first weighing registered successfully"
	MessageSuccessSegundoPesaje = "second weighing registered successfully"
	MessageSuccessGetColaPesaje = "weighing queue retrieved successfully"

	MessageFailedIniciarPesaje = "failed to start weighing"
	MessageFailedPrimerPesaje  = "failed to register first weighing"
	MessageFailedSegundoPesaje = "failed to register second weighing"
	MessageFailedGetColaPesaje = "failed to retrieve weighing queue"

	ErrPesoInvalido     = errors.New("weight must be greater than zero")
	ErrTareExceedsGross = errors.New("tare weight exceeds gross weight")

	LibrasPorKilo = decimal.RequireFromString("2.20462")
)

type (
	// PesajeRequest carries a scale reading; either side may be omitted and is derived.
	PesajeRequest struct {
		PesoKg float64 `json:"peso_kg" validate:"required_without=PesoLb,omitempty,gt=0"`
		PesoLb float64 `json:"peso_lb" validate:"required_without=PesoKg,omitempty,gt=0"`
	}

	PrimerPesajeResponse struct {
		Folio                     uint            `json:"folio"`
		Estado                    string          `json:"estado"`
		PesoBrutoKg               decimal.Decimal `json:"peso_bruto_kg"`
		PesoBrutoLb               decimal.Decimal `json:"peso_bruto_lb"`
		TiempoAntesPesaje         string          `json:"tiempo_antes_pesaje"`
		TiempoAntesPesajeSegundos int64           `json:"tiempo_antes_pesaje_segundos"`
		DuracionPesaje            int64           `json:"duracion_pesaje"`
	}

	SegundoPesajeResponse struct {
		Folio       uint            `json:"folio"`
		Estado      string          `json:"estado"`
		PesoBrutoKg decimal.Decimal `json:"peso_bruto_kg"`
		PesoBrutoLb decimal.Decimal `json:"peso_bruto_lb"`
		PesoTaraKg  decimal.Decimal `json:"peso_tara_kg"`
		PesoTaraLb  decimal.Decimal `json:"peso_tara_lb"`
		PesoNetoKg  decimal.Decimal `json:"peso_neto_kg"`
		PesoNetoLb  decimal.Decimal `json:"peso_neto_lb"`
	}
)

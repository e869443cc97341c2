package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetTanques    = "tanks retrieved successfully"
	MessageSuccessCreateTanque  = "tank created successfully"
	MessageSuccessAsignarTanque = "tank assigned successfully"

	MessageFailedGetTanques    = "failed to retrieve tanks"
	MessageFailedCreateTanque  = "failed to create tank"
	MessageFailedAsignarTanque = "failed to assign tank"

	ErrTanqueNotFound        = errors.New("tank not found")
	ErrTanqueAlreadyExists   = errors.New("a tank with that name already exists")
	ErrTanqueAlreadyAssigned = errors.New("product is already assigned to a tank")
	ErrLitrosInvalidos       = errors.New("liters must be greater than zero")

	TanqueNombresDefault = []string{"Tanque A", "Tanque B", "Tanque C", "Tanque D"}

	TanqueEstadoDescripcion = map[string]string{
		"verde":    "listo",
		"amarillo": "inspección",
		"rojo":     "retrabajo",
	}
)

type (
	CreateTanqueRequest struct {
		Nombre string  `json:"nombre" validate:"required,max=50"`
		Estado string  `json:"estado" validate:"omitempty,oneof=verde amarillo rojo"`
		Litros float64 `json:"litros" validate:"gte=0"`
	}

	AsignarTanqueRequest struct {
		Folio    uint    `json:"folio" validate:"required"`
		TanqueID uint    `json:"tanque_id" validate:"required"`
		Estado   string  `json:"estado" validate:"required,oneof=verde amarillo rojo"`
		Litros   float64 `json:"litros" validate:"required,gt=0"`
	}

	TanqueResponse struct {
		ID                uint            `json:"id"`
		Nombre            string          `json:"nombre"`
		Estado            string          `json:"estado"`
		EstadoDescripcion string          `json:"estado_descripcion"`
		Litros            decimal.Decimal `json:"litros"`
	}

	AsignacionResponse struct {
		ID     string          `json:"id"`
		Folio  uint            `json:"folio"`
		Estado string          `json:"estado"`
		Litros decimal.Decimal `json:"litros"`
		Tanque TanqueResponse  `json:"tanque"`
	}
)

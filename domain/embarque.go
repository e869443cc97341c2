package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegistrarSalida = "shipment registered successfully"
	MessageSuccessGetEmbarques    = "shipments retrieved successfully"

	MessageFailedRegistrarSalida = "failed to register shipment"
	MessageFailedGetEmbarques    = "failed to retrieve shipments"

	ErrEmbarqueAlreadyExists = errors.New("product has already been shipped")
	ErrHoraSalidaInvalida    = errors.New("departure time must be HH:MM")
)

// HoraSalidaLayout is the 24h clock layout of a departure time.
const HoraSalidaLayout = "15:04"

type (
	RegistrarSalidaRequest struct {
		Folio         uint   `json:"folio" validate:"required"`
		HoraSalida    string `json:"hora_salida" validate:"required,datetime=15:04"`
		TipoCamion    string `json:"tipo_camion" validate:"required,oneof=trailer liquidos dompe"`
		SelloSuperior string `json:"sello_superior" validate:"max=50"`
		SelloInferior string `json:"sello_inferior" validate:"max=50"`
		SelloExtra    string `json:"sello_extra" validate:"max=50"`
	}

	EmbarqueResponse struct {
		ID            string    `json:"id"`
		Folio         uint      `json:"folio"`
		FolioDisplay  string    `json:"folio_display"`
		HoraSalida    string    `json:"hora_salida"`
		TipoCamion    string    `json:"tipo_camion"`
		SelloSuperior string    `json:"sello_superior"`
		SelloInferior string    `json:"sello_inferior"`
		SelloExtra    string    `json:"sello_extra"`
		Actor         string    `json:"actor"`
		CreatedAt     time.Time `json:"created_at"`
	}
)

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessIniciarDescarga  = "unload started"
	MessageSuccessAceptarDescarga  = "unload accepted"
	MessageSuccessRechazarDescarga = "unload rejected"
	MessageSuccessDescargaActiva   = "active unload retrieved successfully"

	MessageFailedIniciarDescarga  = "failed to start unload"
	MessageFailedAceptarDescarga  = "failed to accept unload"
	MessageFailedRechazarDescarga = "failed to reject unload"
	MessageFailedDescargaActiva   = "failed to retrieve active unload"

	ErrDescargaEnCurso     = errors.New("another unload is already in progress")
	ErrDescargaNoIniciada  = errors.New("unload has not been started")
	ErrNoDescargaActiva    = errors.New("no unload in progress")
	ErrComentarioRequerido = errors.New("a comment is required to reject an unload")
)

type (
	RechazarDescargaRequest struct {
		Comentario string `json:"comentario" validate:"required,max=1000"`
	}

	DescargaResponse struct {
		Folio          uint       `json:"folio"`
		FolioDisplay   string     `json:"folio_display"`
		Estado         string     `json:"estado"`
		InicioDescarga *time.Time `json:"inicio_descarga,omitempty"`
		FinDescarga    *time.Time `json:"fin_descarga,omitempty"`
		TiempoDescarga int64      `json:"tiempo_descarga"`
		Comentarios    string     `json:"comentarios,omitempty"`
	}

	DescargaActivaResponse struct {
		Folio          uint      `json:"folio"`
		FolioDisplay   string    `json:"folio_display"`
		Proveedor      string    `json:"proveedor"`
		InicioDescarga time.Time `json:"inicio_descarga"`
		Segundos       int64     `json:"segundos"`
		Cronometro     string    `json:"cronometro"`
	}
)

package domain

var (
	MessageSuccessGetMetricas  = "metrics retrieved successfully"
	MessageSuccessGetAuditoria = "audit retrieved successfully"

	MessageFailedGetMetricas  = "failed to retrieve metrics"
	MessageFailedGetAuditoria = "failed to retrieve audit"
)

const (
	CategoriaRojo      = "red"
	CategoriaNaranja   = "orange"
	CategoriaEsmeralda = "emerald"

	AuditoriaPageSize = 10
)

type (
	// Metrica is one dashboard card. Valor is normalized to drive the indicator.
	Metrica struct {
		Etiqueta  string  `json:"etiqueta"`
		Valor     float64 `json:"valor"`
		Texto     string  `json:"texto"`
		Fraccion  string  `json:"fraccion"`
		Categoria string  `json:"categoria"`
	}

	MetricasResponse struct {
		Fecha                 string  `json:"fecha"`
		ToneladasProcesadas   Metrica `json:"toneladas_procesadas"`
		TiempoPromedioProceso Metrica `json:"tiempo_promedio_proceso"`
		Cumplimiento          Metrica `json:"cumplimiento"`
	}

	AuditoriaResponse struct {
		Items      []*ProductoResponse `json:"items"`
		Pagination Pagination          `json:"pagination"`
	}
)

package domain

import (
	"encoding/xml"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetInventario = "inventory retrieved successfully"
	MessageFailedGetInventario  = "failed to retrieve inventory"
	MessageFailedExportar       = "failed to export inventory"
)

const (
	InventarioXMLFilename = "inventario_procesado.xml"
	InventarioCSVFilename = "inventario_procesado.csv"
)

type (
	InventarioItem struct {
		XMLName       xml.Name        `json:"-" xml:"Producto"`
		Folio         uint            `json:"folio" xml:"Folio"`
		Proveedor     string          `json:"proveedor" xml:"Proveedor"`
		FechaIngreso  string          `json:"fecha_ingreso" xml:"FechaIngreso"`
		InicioProceso string          `json:"inicio_proceso" xml:"InicioProceso"`
		Duracion      string          `json:"duracion" xml:"Duracion"`
		PorcentajeSal decimal.Decimal `json:"porcentaje_sal" xml:"PorcentajeSal"`
	}

	InventarioXML struct {
		XMLName   xml.Name          `xml:"InventarioProcesado"`
		Productos []*InventarioItem `xml:"Producto"`
	}
)

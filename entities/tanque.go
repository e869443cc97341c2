package entities

import "github.com/shopspring/decimal"

// Tank traffic-light states.
const (
	TanqueVerde    = "verde"    // listo
	TanqueAmarillo = "amarillo" // inspección
	TanqueRojo     = "rojo"     // retrabajo
)

type Tanque struct {
	ID     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"nombre"`
	Estado string          `gorm:"type:varchar(10);not null;default:'verde'" json:"estado"`
	Litros decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"litros"`

	Timestamp
}

func (Tanque) TableName() string { return "tanques" }

type TanqueProducto struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	FolioProducto uint            `gorm:"uniqueIndex;not null" json:"folio_producto"`
	IDTanque      uint            `gorm:"column:id_tanque;index;not null" json:"id_tanque"`
	Litros        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"litros"`
	Estado        string          `gorm:"type:varchar(10);not null" json:"estado"`

	Producto *Producto `gorm:"foreignKey:FolioProducto;references:Folio"`
	Tanque   *Tanque   `gorm:"foreignKey:IDTanque"`
	Timestamp
}

func (TanqueProducto) TableName() string { return "tanque_productos" }

package entities

const (
	CamionDompe    = "dompe"
	CamionTrailer  = "trailer"
	CamionTolva    = "tolva"
	CamionLiquidos = "liquidos"
)

type Camion struct {
	NumeroEconomico uint   `gorm:"column:numero_economico;primaryKey;autoIncrement" json:"numero_economico"`
	Placas          string `gorm:"type:varchar(20);not null" json:"placas"`
	Tipo            string `gorm:"type:varchar(20);not null" json:"tipo"` // dompe, trailer, tolva, liquidos
	Proveedor       string `gorm:"type:varchar(50);index;not null" json:"proveedor"`

	Timestamp
}

func (Camion) TableName() string { return "camiones" }

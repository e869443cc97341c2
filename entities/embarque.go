package entities

// Embarque is the outbound shipment of one processed folio.
type Embarque struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	Folio         uint   `gorm:"uniqueIndex;not null" json:"folio"`
	HoraSalida    string `gorm:"type:varchar(5);not null" json:"hora_salida"` // HH:MM
	TipoCamion    string `gorm:"type:varchar(20);not null" json:"tipo_camion"`
	SelloSuperior string `gorm:"type:varchar(50)" json:"sello_superior"`
	SelloInferior string `gorm:"type:varchar(50)" json:"sello_inferior"`
	SelloExtra    string `gorm:"type:varchar(50)" json:"sello_extra"`
	Actor         string `gorm:"type:varchar(100)" json:"actor"`

	Producto *Producto `gorm:"foreignKey:Folio;references:Folio" json:"-"`
	Timestamp
}

func (Embarque) TableName() string { return "embarques" }

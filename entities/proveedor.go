package entities

// Proveedor is a pepper supplier, keyed by its economic number.
type Proveedor struct {
	NumeroEconomico string `gorm:"column:numero_economico;primaryKey;type:varchar(50)" json:"numero_economico"`
	Nombre          string `gorm:"type:varchar(100);not null" json:"nombre"`
	SegundoNombre   string `gorm:"type:varchar(100)" json:"segundo_nombre"`
	Apellido        string `gorm:"type:varchar(100);not null" json:"apellido"`
	ApellidoMaterno string `gorm:"type:varchar(100)" json:"apellido_materno"`

	Camiones []*Camion `gorm:"foreignKey:Proveedor;references:NumeroEconomico;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Timestamp
}

func (Proveedor) TableName() string { return "proveedores" }

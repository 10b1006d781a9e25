package model

import "time"

// Sugerencia is an unreviewed candidate listing submitted by the public.
// There is no status column: a row in the table is a pending suggestion,
// and both approval and rejection end in the row being deleted.
type Sugerencia struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nombre      string `gorm:"not null" json:"nombre"`
	Direccion   string `gorm:"not null" json:"direccion"`
	Descripcion string `gorm:"not null" json:"descripcion"`
	Localidad   string `gorm:"not null" json:"localidad"`
	Ciudad      string `gorm:"not null" json:"ciudad"`
	Provincia   string `gorm:"not null" json:"provincia"`

	NombreContacto string  `gorm:"not null" json:"nombreContacto"`
	EmailContacto  *string `json:"emailContacto"`
	Comentarios    *string `json:"comentarios"`

	Slug string `gorm:"not null" json:"slug"`

	ZonaAmplia           bool `gorm:"not null;default:false" json:"zonaAmplia"`
	ParqueCercano        bool `gorm:"not null;default:false" json:"parqueCercano"`
	ZonaInfantil         bool `gorm:"not null;default:false" json:"zonaInfantil"`
	MenuInfantil         bool `gorm:"not null;default:false" json:"menuInfantil"`
	TronaDisponible      bool `gorm:"not null;default:false" json:"tronaDisponible"`
	CambiadorDisponible  bool `gorm:"not null;default:false" json:"cambiadorDisponible"`
	SitioParaCarrito     bool `gorm:"not null;default:false" json:"sitioParaCarrito"`
	TerrazaSegura        bool `gorm:"not null;default:false" json:"terrazaSegura"`
	AmbienteFamiliar     bool `gorm:"not null;default:false" json:"ambienteFamiliar"`
	SinPantallas         bool `gorm:"not null;default:false" json:"sinPantallas"`
	AptoVegetariano      bool `gorm:"not null;default:false" json:"aptoVegetariano"`
	AptoVegano           bool `gorm:"not null;default:false" json:"aptoVegano"`
	ActividadesParaNinos bool `gorm:"not null;default:false" json:"actividadesParaNinos"`
	AccesibleConCarrito  bool `gorm:"not null;default:false" json:"accesibleConCarrito"`

	CreadaEn time.Time `gorm:"autoCreateTime;column:creada_en" json:"creadaEn"`
}

func (Sugerencia) TableName() string { return "sugerencias" }

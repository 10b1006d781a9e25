package model

import (
	"time"

	"github.com/lib/pq"
)

// Restaurante is a published listing in the directory.
// Slug is derived from Nombre and recomputed whenever Nombre changes.
type Restaurante struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"not null" json:"nombre"`
	Direccion   string  `gorm:"not null" json:"direccion"`
	Ciudad      string  `gorm:"not null" json:"ciudad"`
	Provincia   string  `gorm:"not null" json:"provincia"`
	Localidad   *string `json:"localidad"`
	Descripcion string  `gorm:"not null" json:"descripcion"`

	TelefonoRestaurante *string `json:"telefonoRestaurante"`
	EmailRestaurante    *string `json:"emailRestaurante"`

	Slug     string         `gorm:"uniqueIndex;not null" json:"slug"`
	Imagenes pq.StringArray `gorm:"type:text[]" json:"imagenes"`

	Activo     bool `gorm:"not null;default:true" json:"activo"`
	Verificado bool `gorm:"not null;default:false" json:"verificado"`

	// Amenity flags (family-friendliness). Fixed set shared with Sugerencia.
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Restaurante) TableName() string { return "restaurantes" }

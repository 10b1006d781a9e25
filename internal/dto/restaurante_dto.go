package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// Amenidades groups the fixed set of family-friendliness flags shared by
// restaurant and suggestion submissions.
type Amenidades struct {
	ZonaAmplia           *FlexBool `json:"zonaAmplia"`
	ParqueCercano        *FlexBool `json:"parqueCercano"`
	ZonaInfantil         *FlexBool `json:"zonaInfantil"`
	MenuInfantil         *FlexBool `json:"menuInfantil"`
	TronaDisponible      *FlexBool `json:"tronaDisponible"`
	CambiadorDisponible  *FlexBool `json:"cambiadorDisponible"`
	SitioParaCarrito     *FlexBool `json:"sitioParaCarrito"`
	TerrazaSegura        *FlexBool `json:"terrazaSegura"`
	AmbienteFamiliar     *FlexBool `json:"ambienteFamiliar"`
	SinPantallas         *FlexBool `json:"sinPantallas"`
	AptoVegetariano      *FlexBool `json:"aptoVegetariano"`
	AptoVegano           *FlexBool `json:"aptoVegano"`
	ActividadesParaNinos *FlexBool `json:"actividadesParaNinos"`
	AccesibleConCarrito  *FlexBool `json:"accesibleConCarrito"`
}

type CrearRestauranteRequest struct {
	Nombre              string   `json:"nombre"`
	Direccion           string   `json:"direccion"`
	Ciudad              string   `json:"ciudad"`
	Provincia           string   `json:"provincia"`
	Localidad           *string  `json:"localidad"`
	Descripcion         string   `json:"descripcion"`
	TelefonoRestaurante *string  `json:"telefonoRestaurante"`
	EmailRestaurante    *string  `json:"emailRestaurante"`
	Imagenes            []string `json:"imagenes"`

	Activo     *FlexBool `json:"activo"`
	Verificado *FlexBool `json:"verificado"`
	Amenidades
}

// ActualizarRestauranteRequest is a partial patch: a nil field was omitted
// from the request body and must leave the stored value untouched.
type ActualizarRestauranteRequest struct {
	Nombre              *string   `json:"nombre"`
	Direccion           *string   `json:"direccion"`
	Ciudad              *string   `json:"ciudad"`
	Provincia           *string   `json:"provincia"`
	Localidad           *string   `json:"localidad"`
	Descripcion         *string   `json:"descripcion"`
	TelefonoRestaurante *string   `json:"telefonoRestaurante"`
	EmailRestaurante    *string   `json:"emailRestaurante"`
	Imagenes            *[]string `json:"imagenes"`

	Activo     *FlexBool `json:"activo"`
	Verificado *FlexBool `json:"verificado"`
	Amenidades
}

// ── Filters ───────────────────────────────────────────────────────────────────

// RestauranteFiltros carries the parsed query-string filters for the public
// listing. Text fields match as case-insensitive substrings; booleans match
// by equality. A nil field means the filter was not requested, while an
// explicit false (?activo=false) matches unpublished rows.
type RestauranteFiltros struct {
	Direccion *string
	Ciudad    *string
	Provincia *string
	Localidad *string

	Activo     *bool
	Verificado *bool

	ZonaAmplia           *bool
	ParqueCercano        *bool
	ZonaInfantil         *bool
	MenuInfantil         *bool
	TronaDisponible      *bool
	CambiadorDisponible  *bool
	SitioParaCarrito     *bool
	TerrazaSegura        *bool
	AmbienteFamiliar     *bool
	SinPantallas         *bool
	AptoVegetariano      *bool
	AptoVegano           *bool
	ActividadesParaNinos *bool
	AccesibleConCarrito  *bool
}

package repository

import (
	"context"

	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/model"

	"gorm.io/gorm"
)

type RestauranteRepository interface {
	// Crear inserts the record. tx may be nil outside a transaction.
	Crear(ctx context.Context, tx *gorm.DB, r *model.Restaurante) error
	Listar(ctx context.Context, filtros dto.RestauranteFiltros) ([]model.Restaurante, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Restaurante, error)
	ObtenerPorSlug(ctx context.Context, slug string) (*model.Restaurante, error)
	Actualizar(ctx context.Context, r *model.Restaurante) error
	Eliminar(ctx context.Context, id uint) error
}

type restauranteRepo struct{ db *gorm.DB }

func NewRestauranteRepository(db *gorm.DB) RestauranteRepository {
	return &restauranteRepo{db: db}
}

func (r *restauranteRepo) Crear(ctx context.Context, tx *gorm.DB, rest *model.Restaurante) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(rest).Error
}

func (r *restauranteRepo) Listar(ctx context.Context, f dto.RestauranteFiltros) ([]model.Restaurante, error) {
	q := r.db.WithContext(ctx).Model(&model.Restaurante{})

	// Text filters: case-insensitive substring containment
	if f.Direccion != nil {
		q = q.Where("direccion ILIKE ?", "%"+*f.Direccion+"%")
	}
	if f.Ciudad != nil {
		q = q.Where("ciudad ILIKE ?", "%"+*f.Ciudad+"%")
	}
	if f.Provincia != nil {
		q = q.Where("provincia ILIKE ?", "%"+*f.Provincia+"%")
	}
	if f.Localidad != nil {
		q = q.Where("localidad ILIKE ?", "%"+*f.Localidad+"%")
	}

	// Boolean filters: exact equality, applied only when requested
	for col, v := range map[string]*bool{
		"activo":                 f.Activo,
		"verificado":             f.Verificado,
		"zona_amplia":            f.ZonaAmplia,
		"parque_cercano":         f.ParqueCercano,
		"zona_infantil":          f.ZonaInfantil,
		"menu_infantil":          f.MenuInfantil,
		"trona_disponible":       f.TronaDisponible,
		"cambiador_disponible":   f.CambiadorDisponible,
		"sitio_para_carrito":     f.SitioParaCarrito,
		"terraza_segura":         f.TerrazaSegura,
		"ambiente_familiar":      f.AmbienteFamiliar,
		"sin_pantallas":          f.SinPantallas,
		"apto_vegetariano":       f.AptoVegetariano,
		"apto_vegano":            f.AptoVegano,
		"actividades_para_ninos": f.ActividadesParaNinos,
		"accesible_con_carrito":  f.AccesibleConCarrito,
	} {
		if v != nil {
			q = q.Where(col+" = ?", *v)
		}
	}

	var list []model.Restaurante
	err := q.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *restauranteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Restaurante, error) {
	var rest model.Restaurante
	err := r.db.WithContext(ctx).First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restauranteRepo) ObtenerPorSlug(ctx context.Context, slug string) (*model.Restaurante, error) {
	var rest model.Restaurante
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restauranteRepo) Actualizar(ctx context.Context, rest *model.Restaurante) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

func (r *restauranteRepo) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Restaurante{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

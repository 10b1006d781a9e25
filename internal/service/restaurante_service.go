package service

import (
	"context"
	"errors"

	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/model"
	"github.com/Saquero/dndcomhoy/internal/repository"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RestauranteService interface {
	Crear(ctx context.Context, req dto.CrearRestauranteRequest) (*model.Restaurante, error)
	Listar(ctx context.Context, filtros dto.RestauranteFiltros) ([]model.Restaurante, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Restaurante, error)
	ObtenerPorSlug(ctx context.Context, s string) (*model.Restaurante, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarRestauranteRequest) (*model.Restaurante, error)
	Eliminar(ctx context.Context, id uint) error
}

type restauranteService struct {
	repo repository.RestauranteRepository
}

func NewRestauranteService(repo repository.RestauranteRepository) RestauranteService {
	return &restauranteService{repo: repo}
}

func (s *restauranteService) Crear(ctx context.Context, req dto.CrearRestauranteRequest) (*model.Restaurante, error) {
	imagenes := pq.StringArray{}
	if req.Imagenes != nil {
		imagenes = pq.StringArray(req.Imagenes)
	}

	// A listing created by an admin is published unless stated otherwise.
	activo := true
	if req.Activo != nil {
		activo = req.Activo.Bool()
	}

	rest := &model.Restaurante{
		Nombre:              req.Nombre,
		Direccion:           req.Direccion,
		Ciudad:              req.Ciudad,
		Provincia:           req.Provincia,
		Localidad:           req.Localidad,
		Descripcion:         req.Descripcion,
		TelefonoRestaurante: req.TelefonoRestaurante,
		EmailRestaurante:    req.EmailRestaurante,
		Slug:                slug.Make(req.Nombre),
		Imagenes:            imagenes,
		Activo:              activo,
		Verificado:          req.Verificado.Bool(),

		ZonaAmplia:           req.ZonaAmplia.Bool(),
		ParqueCercano:        req.ParqueCercano.Bool(),
		ZonaInfantil:         req.ZonaInfantil.Bool(),
		MenuInfantil:         req.MenuInfantil.Bool(),
		TronaDisponible:      req.TronaDisponible.Bool(),
		CambiadorDisponible:  req.CambiadorDisponible.Bool(),
		SitioParaCarrito:     req.SitioParaCarrito.Bool(),
		TerrazaSegura:        req.TerrazaSegura.Bool(),
		AmbienteFamiliar:     req.AmbienteFamiliar.Bool(),
		SinPantallas:         req.SinPantallas.Bool(),
		AptoVegetariano:      req.AptoVegetariano.Bool(),
		AptoVegano:           req.AptoVegano.Bool(),
		ActividadesParaNinos: req.ActividadesParaNinos.Bool(),
		AccesibleConCarrito:  req.AccesibleConCarrito.Bool(),
	}

	if err := s.repo.Crear(ctx, nil, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *restauranteService) Listar(ctx context.Context, filtros dto.RestauranteFiltros) ([]model.Restaurante, error) {
	return s.repo.Listar(ctx, filtros)
}

func (s *restauranteService) ObtenerPorID(ctx context.Context, id uint) (*model.Restaurante, error) {
	rest, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestauranteNoEncontrado
		}
		return nil, err
	}
	return rest, nil
}

func (s *restauranteService) ObtenerPorSlug(ctx context.Context, slg string) (*model.Restaurante, error) {
	rest, err := s.repo.ObtenerPorSlug(ctx, slg)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestauranteNoEncontrado
		}
		return nil, err
	}
	return rest, nil
}

func (s *restauranteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarRestauranteRequest) (*model.Restaurante, error) {
	rest, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestauranteNoEncontrado
		}
		return nil, err
	}

	// Partial patch: nil fields were omitted and stay untouched.
	if req.Nombre != nil {
		rest.Nombre = *req.Nombre
		rest.Slug = slug.Make(*req.Nombre)
	}
	if req.Direccion != nil {
		rest.Direccion = *req.Direccion
	}
	if req.Ciudad != nil {
		rest.Ciudad = *req.Ciudad
	}
	if req.Provincia != nil {
		rest.Provincia = *req.Provincia
	}
	if req.Localidad != nil {
		rest.Localidad = req.Localidad
	}
	if req.Descripcion != nil {
		rest.Descripcion = *req.Descripcion
	}
	if req.TelefonoRestaurante != nil {
		rest.TelefonoRestaurante = req.TelefonoRestaurante
	}
	if req.EmailRestaurante != nil {
		rest.EmailRestaurante = req.EmailRestaurante
	}
	if req.Imagenes != nil {
		rest.Imagenes = pq.StringArray(*req.Imagenes)
	}
	if req.Activo != nil {
		rest.Activo = req.Activo.Bool()
	}
	if req.Verificado != nil {
		rest.Verificado = req.Verificado.Bool()
	}

	if req.ZonaAmplia != nil {
		rest.ZonaAmplia = req.ZonaAmplia.Bool()
	}
	if req.ParqueCercano != nil {
		rest.ParqueCercano = req.ParqueCercano.Bool()
	}
	if req.ZonaInfantil != nil {
		rest.ZonaInfantil = req.ZonaInfantil.Bool()
	}
	if req.MenuInfantil != nil {
		rest.MenuInfantil = req.MenuInfantil.Bool()
	}
	if req.TronaDisponible != nil {
		rest.TronaDisponible = req.TronaDisponible.Bool()
	}
	if req.CambiadorDisponible != nil {
		rest.CambiadorDisponible = req.CambiadorDisponible.Bool()
	}
	if req.SitioParaCarrito != nil {
		rest.SitioParaCarrito = req.SitioParaCarrito.Bool()
	}
	if req.TerrazaSegura != nil {
		rest.TerrazaSegura = req.TerrazaSegura.Bool()
	}
	if req.AmbienteFamiliar != nil {
		rest.AmbienteFamiliar = req.AmbienteFamiliar.Bool()
	}
	if req.SinPantallas != nil {
		rest.SinPantallas = req.SinPantallas.Bool()
	}
	if req.AptoVegetariano != nil {
		rest.AptoVegetariano = req.AptoVegetariano.Bool()
	}
	if req.AptoVegano != nil {
		rest.AptoVegano = req.AptoVegano.Bool()
	}
	if req.ActividadesParaNinos != nil {
		rest.ActividadesParaNinos = req.ActividadesParaNinos.Bool()
	}
	if req.AccesibleConCarrito != nil {
		rest.AccesibleConCarrito = req.AccesibleConCarrito.Bool()
	}

	if err := s.repo.Actualizar(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *restauranteService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Eliminar(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestauranteNoEncontrado
		}
		return err
	}
	return nil
}

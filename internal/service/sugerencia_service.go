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

type SugerenciaService interface {
	Crear(ctx context.Context, req dto.CrearSugerenciaRequest) (*model.Sugerencia, error)
	Listar(ctx context.Context) ([]model.Sugerencia, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Sugerencia, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarSugerenciaRequest) (*model.Sugerencia, error)
	Aprobar(ctx context.Context, id uint) (*model.Restaurante, error)
	Eliminar(ctx context.Context, id uint) error
}

type sugerenciaService struct {
	repo         repository.SugerenciaRepository
	restaurantes repository.RestauranteRepository
}

func NewSugerenciaService(repo repository.SugerenciaRepository, restaurantes repository.RestauranteRepository) SugerenciaService {
	return &sugerenciaService{repo: repo, restaurantes: restaurantes}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *sugerenciaService) Crear(ctx context.Context, req dto.CrearSugerenciaRequest) (*model.Sugerencia, error) {
	// Public submitters are not required to state every amenity: anything
	// absent is stored as an explicit false, never null.
	sug := &model.Sugerencia{
		Nombre:      req.Nombre,
		Direccion:   req.Direccion,
		Descripcion: req.Descripcion,
		Localidad:   req.Localidad,
		Ciudad:      req.Ciudad,
		Provincia:   req.Provincia,

		NombreContacto: req.NombreContacto,
		EmailContacto:  req.EmailContacto,
		Comentarios:    req.Comentarios,

		Slug: slug.Make(req.Nombre),

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

	if err := s.repo.Crear(ctx, sug); err != nil {
		return nil, err
	}
	return sug, nil
}

func (s *sugerenciaService) Listar(ctx context.Context) ([]model.Sugerencia, error) {
	return s.repo.Listar(ctx)
}

func (s *sugerenciaService) ObtenerPorID(ctx context.Context, id uint) (*model.Sugerencia, error) {
	sug, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSugerenciaNoEncontrada
		}
		return nil, err
	}
	return sug, nil
}

func (s *sugerenciaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarSugerenciaRequest) (*model.Sugerencia, error) {
	sug, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSugerenciaNoEncontrada
		}
		return nil, err
	}

	if req.Nombre != nil {
		sug.Nombre = *req.Nombre
		sug.Slug = slug.Make(*req.Nombre)
	}
	if req.Direccion != nil {
		sug.Direccion = *req.Direccion
	}
	if req.Descripcion != nil {
		sug.Descripcion = *req.Descripcion
	}
	if req.Localidad != nil {
		sug.Localidad = *req.Localidad
	}
	if req.Ciudad != nil {
		sug.Ciudad = *req.Ciudad
	}
	if req.Provincia != nil {
		sug.Provincia = *req.Provincia
	}
	if req.NombreContacto != nil {
		sug.NombreContacto = *req.NombreContacto
	}
	if req.EmailContacto != nil {
		sug.EmailContacto = req.EmailContacto
	}
	if req.Comentarios != nil {
		sug.Comentarios = req.Comentarios
	}

	if req.ZonaAmplia != nil {
		sug.ZonaAmplia = req.ZonaAmplia.Bool()
	}
	if req.ParqueCercano != nil {
		sug.ParqueCercano = req.ParqueCercano.Bool()
	}
	if req.ZonaInfantil != nil {
		sug.ZonaInfantil = req.ZonaInfantil.Bool()
	}
	if req.MenuInfantil != nil {
		sug.MenuInfantil = req.MenuInfantil.Bool()
	}
	if req.TronaDisponible != nil {
		sug.TronaDisponible = req.TronaDisponible.Bool()
	}
	if req.CambiadorDisponible != nil {
		sug.CambiadorDisponible = req.CambiadorDisponible.Bool()
	}
	if req.SitioParaCarrito != nil {
		sug.SitioParaCarrito = req.SitioParaCarrito.Bool()
	}
	if req.TerrazaSegura != nil {
		sug.TerrazaSegura = req.TerrazaSegura.Bool()
	}
	if req.AmbienteFamiliar != nil {
		sug.AmbienteFamiliar = req.AmbienteFamiliar.Bool()
	}
	if req.SinPantallas != nil {
		sug.SinPantallas = req.SinPantallas.Bool()
	}
	if req.AptoVegetariano != nil {
		sug.AptoVegetariano = req.AptoVegetariano.Bool()
	}
	if req.AptoVegano != nil {
		sug.AptoVegano = req.AptoVegano.Bool()
	}
	if req.ActividadesParaNinos != nil {
		sug.ActividadesParaNinos = req.ActividadesParaNinos.Bool()
	}
	if req.AccesibleConCarrito != nil {
		sug.AccesibleConCarrito = req.AccesibleConCarrito.Bool()
	}

	if err := s.repo.Actualizar(ctx, sug); err != nil {
		return nil, err
	}
	return sug, nil
}

// Aprobar promotes a suggestion into a published, verified restaurant and
// discards the suggestion. Both writes run in one transaction with the
// suggestion row locked, so a crash or a concurrent approval can never
// leave a duplicate restaurant or an orphaned suggestion behind.
func (s *sugerenciaService) Aprobar(ctx context.Context, id uint) (*model.Restaurante, error) {
	var rest *model.Restaurante

	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		sug, err := s.repo.ObtenerParaAprobar(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSugerenciaNoEncontrada
			}
			return err
		}

		// The slug is derived fresh from the name here, not copied from
		// the suggestion.
		rest = &model.Restaurante{
			Nombre:      sug.Nombre,
			Direccion:   sug.Direccion,
			Descripcion: sug.Descripcion,
			Slug:        slug.Make(sug.Nombre),
			Imagenes:    pq.StringArray{},

			// An approved suggestion is immediately live and marked reviewed.
			Activo:     true,
			Verificado: true,

			ZonaAmplia:           sug.ZonaAmplia,
			ParqueCercano:        sug.ParqueCercano,
			ZonaInfantil:         sug.ZonaInfantil,
			MenuInfantil:         sug.MenuInfantil,
			TronaDisponible:      sug.TronaDisponible,
			CambiadorDisponible:  sug.CambiadorDisponible,
			SitioParaCarrito:     sug.SitioParaCarrito,
			TerrazaSegura:        sug.TerrazaSegura,
			AmbienteFamiliar:     sug.AmbienteFamiliar,
			SinPantallas:         sug.SinPantallas,
			AptoVegetariano:      sug.AptoVegetariano,
			AptoVegano:           sug.AptoVegano,
			ActividadesParaNinos: sug.ActividadesParaNinos,
			AccesibleConCarrito:  sug.AccesibleConCarrito,
		}

		if err := s.restaurantes.Crear(ctx, tx, rest); err != nil {
			return err
		}
		return s.repo.Eliminar(ctx, tx, sug.ID)
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *sugerenciaService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Eliminar(ctx, nil, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSugerenciaNoEncontrada
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/model"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubRestauranteRepo struct {
	restaurantes   map[uint]*model.Restaurante
	nextID         uint
	ultimosFiltros dto.RestauranteFiltros
}

func newStubRestauranteRepo() *stubRestauranteRepo {
	return &stubRestauranteRepo{restaurantes: make(map[uint]*model.Restaurante)}
}

func (r *stubRestauranteRepo) Crear(_ context.Context, _ *gorm.DB, rest *model.Restaurante) error {
	r.nextID++
	rest.ID = r.nextID
	copia := *rest
	r.restaurantes[rest.ID] = &copia
	return nil
}

func (r *stubRestauranteRepo) Listar(_ context.Context, f dto.RestauranteFiltros) ([]model.Restaurante, error) {
	r.ultimosFiltros = f
	list := make([]model.Restaurante, 0, len(r.restaurantes))
	for _, rest := range r.restaurantes {
		list = append(list, *rest)
	}
	return list, nil
}

func (r *stubRestauranteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Restaurante, error) {
	rest, ok := r.restaurantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *rest
	return &copia, nil
}

func (r *stubRestauranteRepo) ObtenerPorSlug(_ context.Context, s string) (*model.Restaurante, error) {
	for _, rest := range r.restaurantes {
		if rest.Slug == s {
			copia := *rest
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRestauranteRepo) Actualizar(_ context.Context, rest *model.Restaurante) error {
	if _, ok := r.restaurantes[rest.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *rest
	r.restaurantes[rest.ID] = &copia
	return nil
}

func (r *stubRestauranteRepo) Eliminar(_ context.Context, id uint) error {
	if _, ok := r.restaurantes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.restaurantes, id)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func flexPtr(b bool) *dto.FlexBool {
	f := dto.FlexBool(b)
	return &f
}

// ── Tests: slug derivation ────────────────────────────────────────────────────

func TestCrear_SlugDeterministaYMinusculas(t *testing.T) {
	repo := newStubRestauranteRepo()
	svc := NewRestauranteService(repo)

	rest, err := svc.Crear(context.Background(), dto.CrearRestauranteRequest{
		Nombre:      "Casa Pepe Ñoño",
		Direccion:   "Calle Mayor 1",
		Ciudad:      "Madrid",
		Provincia:   "Madrid",
		Descripcion: "Terraza amplia",
	})
	require.NoError(t, err)

	assert.Equal(t, slug.Make("Casa Pepe Ñoño"), rest.Slug)
	assert.Equal(t, strings.ToLower(rest.Slug), rest.Slug)
	assert.NotContains(t, rest.Slug, " ")

	// Pure function: the same name always yields the same slug
	assert.Equal(t, slug.Make("Casa Pepe Ñoño"), slug.Make("Casa Pepe Ñoño"))
}

func TestCrear_ImagenesPorDefectoVacias(t *testing.T) {
	repo := newStubRestauranteRepo()
	svc := NewRestauranteService(repo)

	rest, err := svc.Crear(context.Background(), dto.CrearRestauranteRequest{
		Nombre: "Sin Fotos", Direccion: "d", Ciudad: "c", Provincia: "p", Descripcion: "x",
	})
	require.NoError(t, err)
	assert.NotNil(t, rest.Imagenes)
	assert.Empty(t, rest.Imagenes)
	assert.True(t, rest.Activo, "un alta de admin queda publicada por defecto")
	assert.False(t, rest.Verificado)
}

// ── Tests: partial update ─────────────────────────────────────────────────────

func TestActualizar_ParcheParcialNoTocaOtrosCampos(t *testing.T) {
	repo := newStubRestauranteRepo()
	svc := NewRestauranteService(repo)

	creado, err := svc.Crear(context.Background(), dto.CrearRestauranteRequest{
		Nombre: "Casa Pepe", Direccion: "Calle Mayor 1", Ciudad: "Madrid",
		Provincia: "Madrid", Descripcion: "vieja descripcion",
	})
	require.NoError(t, err)

	actualizado, err := svc.Actualizar(context.Background(), creado.ID,
		dto.ActualizarRestauranteRequest{Descripcion: strPtr("nueva descripcion")})
	require.NoError(t, err)

	assert.Equal(t, "nueva descripcion", actualizado.Descripcion)
	assert.Equal(t, creado.Nombre, actualizado.Nombre)
	assert.Equal(t, creado.Slug, actualizado.Slug)
	assert.Equal(t, creado.Direccion, actualizado.Direccion)
	assert.Equal(t, creado.Ciudad, actualizado.Ciudad)
}

func TestActualizar_NombreRecalculaSlug(t *testing.T) {
	repo := newStubRestauranteRepo()
	svc := NewRestauranteService(repo)

	creado, err := svc.Crear(context.Background(), dto.CrearRestauranteRequest{
		Nombre: "Casa Pepe", Direccion: "d", Ciudad: "c", Provincia: "p", Descripcion: "x",
	})
	require.NoError(t, err)
	require.Equal(t, "casa-pepe", creado.Slug)

	actualizado, err := svc.Actualizar(context.Background(), creado.ID,
		dto.ActualizarRestauranteRequest{Nombre: strPtr("La Parrilla Feliz")})
	require.NoError(t, err)
	assert.Equal(t, "la-parrilla-feliz", actualizado.Slug)
}

func TestActualizar_AmenidadExplicitaFalse(t *testing.T) {
	repo := newStubRestauranteRepo()
	svc := NewRestauranteService(repo)

	creado, err := svc.Crear(context.Background(), dto.CrearRestauranteRequest{
		Nombre: "Con Zona", Direccion: "d", Ciudad: "c", Provincia: "p", Descripcion: "x",
		Amenidades: dto.Amenidades{ZonaInfantil: flexPtr(true)},
	})
	require.NoError(t, err)
	require.True(t, creado.ZonaInfantil)

	actualizado, err := svc.Actualizar(context.Background(), creado.ID,
		dto.ActualizarRestauranteRequest{Amenidades: dto.Amenidades{ZonaInfantil: flexPtr(false)}})
	require.NoError(t, err)
	assert.False(t, actualizado.ZonaInfantil)
}

func TestActualizar_NoExiste(t *testing.T) {
	svc := NewRestauranteService(newStubRestauranteRepo())

	_, err := svc.Actualizar(context.Background(), 9999,
		dto.ActualizarRestauranteRequest{Descripcion: strPtr("da igual")})
	assert.ErrorIs(t, err, ErrRestauranteNoEncontrado)
}

func TestEliminar_NoExiste(t *testing.T) {
	svc := NewRestauranteService(newStubRestauranteRepo())
	assert.ErrorIs(t, svc.Eliminar(context.Background(), 123), ErrRestauranteNoEncontrado)
}

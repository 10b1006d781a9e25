package service

import (
	"context"
	"testing"

	"github.com/Saquero/dndcomhoy/internal/config"
	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubAdminRepo struct {
	admins map[uint]*model.Admin
	nextID uint
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[uint]*model.Admin)}
}

func (r *stubAdminRepo) Crear(_ context.Context, a *model.Admin) error {
	r.nextID++
	a.ID = r.nextID
	copia := *a
	r.admins[a.ID] = &copia
	return nil
}

func (r *stubAdminRepo) ObtenerPorID(_ context.Context, id uint) (*model.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *a
	return &copia, nil
}

func (r *stubAdminRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Email != nil && *a.Email == email {
			copia := *a
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Listar(_ context.Context) ([]model.Admin, error) {
	list := make([]model.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		list = append(list, *a)
	}
	return list, nil
}

func (r *stubAdminRepo) Actualizar(_ context.Context, a *model.Admin) error {
	if _, ok := r.admins[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *a
	r.admins[a.ID] = &copia
	return nil
}

func (r *stubAdminRepo) Eliminar(_ context.Context, id uint) error {
	if _, ok := r.admins[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.admins, id)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "clave-de-prueba", JWTExpirationHours: 4}
}

func seedAdmin(t *testing.T, repo *stubAdminRepo, email, password string, activo bool) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	require.NoError(t, err)
	admin := &model.Admin{Email: &email, Password: string(hash), Activo: activo}
	require.NoError(t, repo.Crear(context.Background(), admin))
	return admin
}

// ── Tests: login ──────────────────────────────────────────────────────────────

func TestLogin_TokenFirmadoConClaims(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo, "ana@dndcomhoy.com", "secreta123", true)
	svc := NewAdminService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@dndcomhoy.com", Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("clave-de-prueba"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(admin.ID), claims["adminId"])
	assert.Equal(t, "ana@dndcomhoy.com", claims["email"])
	assert.Contains(t, claims, "exp")
}

func TestLogin_CredencialesIndistinguibles(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "ana@dndcomhoy.com", "secreta123", true)
	svc := NewAdminService(repo, testConfig())

	// Neither a wrong password nor an unknown email may be told apart.
	_, errPassword := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@dndcomhoy.com", Password: "equivocada",
	})
	_, errEmail := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@dndcomhoy.com", Password: "secreta123",
	})

	assert.ErrorIs(t, errPassword, ErrCredencialesInvalidas)
	assert.ErrorIs(t, errEmail, ErrCredencialesInvalidas)
	assert.Equal(t, errPassword.Error(), errEmail.Error())
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "baja@dndcomhoy.com", "secreta123", false)
	svc := NewAdminService(repo, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "baja@dndcomhoy.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, ErrCuentaInactiva)
}

// ── Tests: registration ───────────────────────────────────────────────────────

func TestRegistrar_EmailDuplicado(t *testing.T) {
	repo := newStubAdminRepo()
	seedAdmin(t, repo, "ana@dndcomhoy.com", "secreta123", true)
	svc := NewAdminService(repo, testConfig())

	_, err := svc.Registrar(context.Background(), dto.RegistrarAdminRequest{
		Email: strPtr("ana@dndcomhoy.com"), Password: "otra456",
	})
	assert.ErrorIs(t, err, ErrEmailRegistrado)
}

func TestRegistrar_DatosIncompletos(t *testing.T) {
	svc := NewAdminService(newStubAdminRepo(), testConfig())

	_, err := svc.Registrar(context.Background(), dto.RegistrarAdminRequest{
		Email: strPtr("ana@dndcomhoy.com"),
	})
	assert.ErrorIs(t, err, ErrRegistroIncompleto, "sin contraseña")

	_, err = svc.Registrar(context.Background(), dto.RegistrarAdminRequest{Password: "secreta123"})
	assert.ErrorIs(t, err, ErrRegistroIncompleto, "sin email ni nombre")
}

func TestRegistrar_GuardaHashNoTextoPlano(t *testing.T) {
	repo := newStubAdminRepo()
	svc := NewAdminService(repo, testConfig())

	admin, err := svc.Registrar(context.Background(), dto.RegistrarAdminRequest{
		Email: strPtr("nueva@dndcomhoy.com"), Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secreta123")))
	assert.True(t, admin.Activo)
}

// ── Tests: update ─────────────────────────────────────────────────────────────

func TestActualizarAdmin_RehashSoloConPasswordNueva(t *testing.T) {
	repo := newStubAdminRepo()
	admin := seedAdmin(t, repo, "ana@dndcomhoy.com", "secreta123", true)
	hashOriginal := admin.Password
	svc := NewAdminService(repo, testConfig())

	nombre := "Ana"
	_, err := svc.Actualizar(context.Background(), admin.ID, dto.ActualizarAdminRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.admins[admin.ID].Password)

	vacia := ""
	_, err = svc.Actualizar(context.Background(), admin.ID, dto.ActualizarAdminRequest{Password: &vacia})
	require.NoError(t, err)
	assert.Equal(t, hashOriginal, repo.admins[admin.ID].Password)

	nueva := "otra456"
	_, err = svc.Actualizar(context.Background(), admin.ID, dto.ActualizarAdminRequest{Password: &nueva})
	require.NoError(t, err)
	assert.NotEqual(t, hashOriginal, repo.admins[admin.ID].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.admins[admin.ID].Password), []byte("otra456")))

	// A password change must keep logins working with the new secret.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "ana@dndcomhoy.com", Password: "otra456"})
	assert.NoError(t, err)
}

func TestObtenerAdmin_NoExiste(t *testing.T) {
	svc := NewAdminService(newStubAdminRepo(), testConfig())
	_, err := svc.ObtenerPorID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAdminNoEncontrado)
}

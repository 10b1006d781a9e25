package service

import (
	"context"
	"errors"
	"time"

	"github.com/Saquero/dndcomhoy/internal/config"
	"github.com/Saquero/dndcomhoy/internal/dto"
	"github.com/Saquero/dndcomhoy/internal/model"
	"github.com/Saquero/dndcomhoy/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is fixed and not caller-tunable.
const bcryptCost = 10

type AdminService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Registrar(ctx context.Context, req dto.RegistrarAdminRequest) (*model.Admin, error)
	Listar(ctx context.Context) ([]dto.AdminResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.AdminResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarAdminRequest) (*dto.AdminResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type adminService struct {
	repo repository.AdminRepository
	cfg  *config.Config
}

func NewAdminService(repo repository.AdminRepository, cfg *config.Config) AdminService {
	return &adminService{repo: repo, cfg: cfg}
}

// mapAdmin projects a model onto the read DTO, dropping the password hash.
func mapAdmin(a model.Admin) dto.AdminResponse {
	return dto.AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Nombre:    a.Nombre,
		Activo:    a.Activo,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *adminService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.repo.ObtenerPorEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}
	if !admin.Activo {
		return nil, ErrCuentaInactiva
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	claims := jwt.MapClaims{
		"adminId": admin.ID,
		"email":   admin.Email,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: signed}, nil
}

func (s *adminService) Registrar(ctx context.Context, req dto.RegistrarAdminRequest) (*model.Admin, error) {
	if req.Password == "" || (req.Email == nil && req.Nombre == nil) {
		return nil, ErrRegistroIncompleto
	}

	if req.Email != nil {
		if _, err := s.repo.ObtenerPorEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailRegistrado
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	admin := &model.Admin{
		Email:    req.Email,
		Password: string(hash),
		Nombre:   req.Nombre,
		Activo:   activo,
	}
	if err := s.repo.Crear(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Listar(ctx context.Context) ([]dto.AdminResponse, error) {
	admins, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, mapAdmin(a))
	}
	return resp, nil
}

func (s *adminService) ObtenerPorID(ctx context.Context, id uint) (*dto.AdminResponse, error) {
	admin, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNoEncontrado
		}
		return nil, err
	}
	resp := mapAdmin(*admin)
	return &resp, nil
}

func (s *adminService) Actualizar(ctx context.Context, id uint, req dto.ActualizarAdminRequest) (*dto.AdminResponse, error) {
	admin, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNoEncontrado
		}
		return nil, err
	}

	if req.Email != nil {
		admin.Email = req.Email
	}
	if req.Nombre != nil {
		admin.Nombre = req.Nombre
	}
	if req.Activo != nil {
		admin.Activo = *req.Activo
	}
	// Absent or empty password leaves the stored hash untouched.
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.Password = string(hash)
	}

	if err := s.repo.Actualizar(ctx, admin); err != nil {
		return nil, err
	}
	resp := mapAdmin(*admin)
	return &resp, nil
}

func (s *adminService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Eliminar(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNoEncontrado
		}
		return err
	}
	return nil
}

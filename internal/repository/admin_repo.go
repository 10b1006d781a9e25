package repository

import (
	"context"

	"github.com/Saquero/dndcomhoy/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Crear(ctx context.Context, a *model.Admin) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Admin, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Admin, error)
	Listar(ctx context.Context) ([]model.Admin, error)
	Actualizar(ctx context.Context, a *model.Admin) error
	Eliminar(ctx context.Context, id uint) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

func (r *adminRepo) Crear(ctx context.Context, a *model.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Listar(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&admins).Error
	return admins, err
}

func (r *adminRepo) Actualizar(ctx context.Context, a *model.Admin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *adminRepo) Eliminar(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

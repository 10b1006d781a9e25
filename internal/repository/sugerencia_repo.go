package repository

import (
	"context"

	"github.com/Saquero/dndcomhoy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SugerenciaRepository interface {
	Crear(ctx context.Context, s *model.Sugerencia) error
	Listar(ctx context.Context) ([]model.Sugerencia, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Sugerencia, error)
	// ObtenerParaAprobar locks the row inside tx so that concurrent
	// approvals of the same suggestion serialize on it.
	ObtenerParaAprobar(ctx context.Context, tx *gorm.DB, id uint) (*model.Sugerencia, error)
	Actualizar(ctx context.Context, s *model.Sugerencia) error
	// Eliminar removes by id. tx may be nil outside a transaction.
	Eliminar(ctx context.Context, tx *gorm.DB, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type sugerenciaRepo struct{ db *gorm.DB }

func NewSugerenciaRepository(db *gorm.DB) SugerenciaRepository {
	return &sugerenciaRepo{db: db}
}

func (r *sugerenciaRepo) DB() *gorm.DB { return r.db }

func (r *sugerenciaRepo) Crear(ctx context.Context, s *model.Sugerencia) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sugerenciaRepo) Listar(ctx context.Context) ([]model.Sugerencia, error) {
	var list []model.Sugerencia
	err := r.db.WithContext(ctx).Order("creada_en desc").Find(&list).Error
	return list, err
}

func (r *sugerenciaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Sugerencia, error) {
	var s model.Sugerencia
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sugerenciaRepo) ObtenerParaAprobar(ctx context.Context, tx *gorm.DB, id uint) (*model.Sugerencia, error) {
	if tx == nil {
		tx = r.db
	}
	var s model.Sugerencia
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sugerenciaRepo) Actualizar(ctx context.Context, s *model.Sugerencia) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sugerenciaRepo) Eliminar(ctx context.Context, tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).Delete(&model.Sugerencia{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/usuario"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

var _ domain.Repository = (*UsuarioGormRepository)(nil)

func (r *UsuarioGormRepository) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("usuario_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioGormRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("usuario_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioGormRepository) List(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioGormRepository) Create(ctx context.Context, u *models.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsuarioGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Usuario{}, id).Error
}

package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
)

// IIdentityRepository kimlik veritabanı işlemleri için arayüz.
type IIdentityRepository interface {
	Create(ctx context.Context, identity *models.Identity) error
	FindByID(ctx context.Context, id string) (*models.Identity, error)
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
}

// IdentityRepository IIdentityRepository arayüzünü uygular.
type IdentityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository yeni bir IdentityRepository örneği oluşturur.
func NewIdentityRepository(db *gorm.DB) IIdentityRepository {
	return &IdentityRepository{db: db}
}

// NewIdentityRepositoryTx transaction'a bağlı repository döndürür.
func NewIdentityRepositoryTx(tx *gorm.DB) IIdentityRepository {
	return &IdentityRepository{db: tx}
}

func (r *IdentityRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir kimlik kaydı oluşturur. ID çağıran tarafından atanmış olmalı.
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	if identity == nil || identity.ID == "" {
		return errors.New("geçersiz kimlik verisi")
	}
	return r.getDB(ctx).Create(identity).Error
}

// FindByID kimliği UUID ile bulur.
func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	if id == "" {
		return nil, errors.New("geçersiz kimlik ID")
	}
	var identity models.Identity
	err := r.getDB(ctx).Where("id = ?", id).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("IdentityRepository.FindByID: DB hatası", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &identity, nil
}

// FindByEmail e-posta bağlı kimliği bulur (yönetici girişi).
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	if email == "" {
		return nil, errors.New("geçersiz e-posta")
	}
	var identity models.Identity
	err := r.getDB(ctx).Where("email = ?", email).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("IdentityRepository.FindByEmail: DB hatası", zap.Error(err))
		return nil, err
	}
	return &identity, nil
}

var _ IIdentityRepository = (*IdentityRepository)(nil)

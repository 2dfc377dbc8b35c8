package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/queryparams"
)

// IInviteRepository davet kodu defteri için veritabanı arayüzü.
type IInviteRepository interface {
	Create(ctx context.Context, invite *models.Invite) error
	FindByCode(ctx context.Context, code string) (*models.Invite, error)
	FindByID(ctx context.Context, id uint) (*models.Invite, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invite, int64, error)
	// MarkUsed kodu koşullu tek UPDATE ile kullanılmış işaretler.
	// Yarış altında tam olarak bir çağıran true alır; kaybeden false alır
	// ve nedeni FindByCode ile sınıflandırır.
	MarkUsed(ctx context.Context, code, identityID string, usedAt time.Time) (bool, error)
	SetEnabled(ctx context.Context, id uint, enabled bool) error
}

// InviteRepository IInviteRepository arayüzünü uygular.
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository yeni bir InviteRepository örneği oluşturur.
func NewInviteRepository(db *gorm.DB) IInviteRepository {
	return &InviteRepository{db: db}
}

// NewInviteRepositoryTx transaction'a bağlı repository döndürür.
func NewInviteRepositoryTx(tx *gorm.DB) IInviteRepository {
	return &InviteRepository{db: tx}
}

func (r *InviteRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir davet kodu oluşturur (açık ve kullanılmamış).
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	if invite == nil || invite.Code == "" {
		return errors.New("geçersiz davet kodu verisi")
	}
	return r.getDB(ctx).Create(invite).Error
}

// FindByCode kodu büyük/küçük harf duyarlı arar.
func (r *InviteRepository) FindByCode(ctx context.Context, code string) (*models.Invite, error) {
	if code == "" {
		return nil, errors.New("geçersiz kod")
	}
	var invite models.Invite
	err := r.getDB(ctx).Where("code = ?", code).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InviteRepository.FindByCode: DB hatası", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &invite, nil
}

// FindByID daveti ID ile bulur (admin işlemleri).
func (r *InviteRepository) FindByID(ctx context.Context, id uint) (*models.Invite, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Invite ID")
	}
	var invite models.Invite
	err := r.getDB(ctx).First(&invite, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InviteRepository.FindByID: DB hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &invite, nil
}

// FindAllPaginated davetleri sayfalayarak getirir (admin listesi).
func (r *InviteRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invite, int64, error) {
	var invites []models.Invite
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Invite{})
	if params.Name != "" {
		query = query.Where("code LIKE ?", "%"+params.Name+"%")
	}
	if params.Status != "" {
		query = query.Where("is_used = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("InviteRepository.FindAllPaginated: sayım hatası", zap.Error(err))
		return nil, 0, err
	}

	// Sıralamada yalnızca bilinen sütunlara izin verilir.
	allowedSortColumns := map[string]bool{"id": true, "code": true, "created_at": true, "is_used": true, "segment": true}
	sortBy := params.SortBy
	if !allowedSortColumns[sortBy] {
		if sortBy != "" {
			configslog.SLog.Warnf("Geçersiz davet sıralama alanı istendi: %s, varsayılan kullanılıyor.", sortBy)
		}
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.Offset()).
		Find(&invites).Error
	if err != nil {
		configslog.Log.Error("InviteRepository.FindAllPaginated: DB hatası", zap.Error(err))
		return nil, 0, err
	}
	return invites, totalCount, nil
}

// MarkUsed OPEN -> USED geçişini tek koşullu UPDATE ile yapar.
// WHERE koşulu enabled ve is_used = false içerdiğinden iki eşzamanlı
// deneme aynı anda başarılı olamaz; storage katmanındaki tek güvence budur.
func (r *InviteRepository) MarkUsed(ctx context.Context, code, identityID string, usedAt time.Time) (bool, error) {
	if code == "" || identityID == "" {
		return false, errors.New("geçersiz kod veya kimlik")
	}
	result := r.getDB(ctx).Model(&models.Invite{}).
		Where("code = ? AND enabled = ? AND is_used = ?", code, true, false).
		Updates(map[string]interface{}{
			"is_used": true,
			"used_by": identityID,
			"used_at": usedAt,
		})
	if result.Error != nil {
		configslog.Log.Error("InviteRepository.MarkUsed: DB hatası", zap.String("code", code), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// SetEnabled kodu açar/kapatır (admin).
func (r *InviteRepository) SetEnabled(ctx context.Context, id uint, enabled bool) error {
	if id == 0 {
		return errors.New("geçersiz Invite ID")
	}
	result := r.getDB(ctx).Model(&models.Invite{}).Where("id = ?", id).Update("enabled", enabled)
	if result.Error != nil {
		configslog.Log.Error("InviteRepository.SetEnabled: DB hatası", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IInviteRepository = (*InviteRepository)(nil)

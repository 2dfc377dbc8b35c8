package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
)

// IProfileRepository profil veritabanı işlemleri için arayüz.
// Silme işlemi yoktur; profil kaydı kimlikle birlikte yaşar.
type IProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	FindAll(ctx context.Context) ([]models.Profile, error)
	FindAllFiltered(ctx context.Context, nameFragment string, args []interface{}) ([]models.Profile, error)
	// UpdateFields verilen alanları günceller; satır yoksa ErrNotFound döner.
	UpdateFields(ctx context.Context, userID string, updates map[string]interface{}) error
	// SetSegment kod kullanımının yan etkisidir; claim transaction'ı içinde çağrılır.
	SetSegment(ctx context.Context, userID string, segment models.Segment) error
	SetRole(ctx context.Context, userID string, role models.UserRole) error
}

// ProfileRepository IProfileRepository arayüzünü uygular.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository yeni bir ProfileRepository örneği oluşturur.
func NewProfileRepository(db *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: db}
}

// NewProfileRepositoryTx transaction'a bağlı repository döndürür.
func NewProfileRepositoryTx(tx *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: tx}
}

func (r *ProfileRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create boş profil kaydını açar. Kimlik oluşturma transaction'ında çağrılır;
// böylece "profil satırı her zaman vardır" değişmezi görünür bir adımdır.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile == nil || profile.UserID == "" {
		return errors.New("geçersiz profil verisi")
	}
	if profile.Role == "" {
		profile.Role = models.RoleInvited
	}
	return r.getDB(ctx).Create(profile).Error
}

// FindByUserID profili kimlik UUID'si ile bulur.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var profile models.Profile
	err := r.getDB(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProfileRepository.FindByUserID: DB hatası", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// FindAll tüm profilleri getirir (admin masa yönetimi).
func (r *ProfileRepository) FindAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.getDB(ctx).Order("created_at asc").Find(&profiles).Error; err != nil {
		configslog.Log.Error("ProfileRepository.FindAll: DB hatası", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

// FindAllFiltered isim filtresiyle profilleri getirir. Fragment ve argümanlar
// pkg/textsearch.SQLFilter'dan gelir.
func (r *ProfileRepository) FindAllFiltered(ctx context.Context, nameFragment string, args []interface{}) ([]models.Profile, error) {
	var profiles []models.Profile
	query := r.getDB(ctx).Order("created_at asc")
	if nameFragment != "" {
		query = query.Where(nameFragment, args...)
	}
	if err := query.Find(&profiles).Error; err != nil {
		configslog.Log.Error("ProfileRepository.FindAllFiltered: DB hatası", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

// UpdateFields verilen alanları günceller.
func (r *ProfileRepository) UpdateFields(ctx context.Context, userID string, updates map[string]interface{}) error {
	if userID == "" || len(updates) == 0 {
		return errors.New("geçersiz güncelleme isteği")
	}
	result := r.getDB(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		configslog.Log.Error("ProfileRepository.UpdateFields: DB hatası", zap.String("userID", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSegment profil segmentini yazar.
func (r *ProfileRepository) SetSegment(ctx context.Context, userID string, segment models.Segment) error {
	return r.UpdateFields(ctx, userID, map[string]interface{}{"segment": segment})
}

// SetRole profil rolünü yazar. Normal akışta çağrılmaz; yalnızca seeder'ın
// sistem yöneticisi ataması kullanır.
func (r *ProfileRepository) SetRole(ctx context.Context, userID string, role models.UserRole) error {
	return r.UpdateFields(ctx, userID, map[string]interface{}{"role": role})
}

var _ IProfileRepository = (*ProfileRepository)(nil)

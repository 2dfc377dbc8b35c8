package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
)

// IRSVPRepository LCV veritabanı işlemleri için arayüz.
type IRSVPRepository interface {
	// Upsert kaydı bulursa günceller, yoksa oluşturur. Her gönderim tam bir
	// üzerine yazmadır; tarihçe tutulmaz.
	Upsert(ctx context.Context, rsvp *models.RSVP) error
	FindByUserID(ctx context.Context, userID string) (*models.RSVP, error)
	FindAll(ctx context.Context) ([]models.RSVP, error)
}

// RSVPRepository IRSVPRepository arayüzünü uygular.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository(db *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: db}
}

func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Upsert aynı kimliğe ait kaydı Assign ile günceller, yoksa oluşturur.
func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil || rsvp.UserID == "" {
		return errors.New("geçersiz RSVP verisi")
	}
	if rsvp.RespondedAt == nil {
		now := time.Now().UTC()
		rsvp.RespondedAt = &now
	}
	return r.getDB(ctx).Where(models.RSVP{UserID: rsvp.UserID}).
		Assign(models.RSVP{
			Status:      rsvp.Status,
			Note:        rsvp.Note,
			RespondedAt: rsvp.RespondedAt,
		}).FirstOrCreate(rsvp).Error
}

// FindByUserID kimliğin LCV kaydını bulur. Kayıt yoksa ErrNotFound döner;
// çağıran taraf bunu PENDING varsayılanına çevirir.
func (r *RSVPRepository) FindByUserID(ctx context.Context, userID string) (*models.RSVP, error) {
	if userID == "" {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var rsvp models.RSVP
	err := r.getDB(ctx).Where("user_id = ?", userID).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindByUserID: DB hatası", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindAll tüm LCV kayıtlarını getirir (admin masa yönetimi).
func (r *RSVPRepository) FindAll(ctx context.Context) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	if err := r.getDB(ctx).Find(&rsvps).Error; err != nil {
		configslog.Log.Error("RSVPRepository.FindAll: DB hatası", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)

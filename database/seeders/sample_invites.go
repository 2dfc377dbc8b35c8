package seeders

import (
	"errors"

	"gemma.link/configs/configslog"
	"gemma.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSampleInvites geliştirme ortamı için örnek davet kodları oluşturur.
// Production'da çağrılmaz.
func SeedSampleInvites(db *gorm.DB) error {
	invitesToSeed := []models.Invite{
		{Code: "G15-Y-1", Segment: models.SegmentYoung, Enabled: true},
		{Code: "G15-Y-2", Segment: models.SegmentYoung, Enabled: true},
		{Code: "G15-A-1", Segment: models.SegmentAdult, Enabled: true},
		{Code: "G15-A-2", Segment: models.SegmentAdult, Enabled: true},
	}

	var createdCount int64
	var errorOccurred bool

	configslog.SLog.Info("Örnek davet kodları seed işlemi başlıyor...")

	for _, inviteToSeed := range invitesToSeed {
		var existing models.Invite
		result := db.Where("code = ?", inviteToSeed.Code).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Davet kodu '%s' zaten mevcut, oluşturma atlanıyor.", inviteToSeed.Code)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Davet kodu kontrol edilirken veritabanı hatası",
				zap.String("code", inviteToSeed.Code), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		if err := db.Create(&inviteToSeed).Error; err != nil {
			configslog.Log.Error("Davet kodu oluşturulamadı",
				zap.String("code", inviteToSeed.Code), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet örnek davet kodu seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm örnek davet kodları zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("örnek davet kodları seed edilirken en az bir hata oluştu")
	}
	return nil
}

package seeders

import (
	"errors"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/eventtime"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedEventConfig tek satırlık etkinlik kaydını oluşturur. Tanılama sayfası
// bu kaydı bağlantı kontrolü olarak okur.
func SeedEventConfig(db *gorm.DB) error {
	var existing models.EventConfig
	result := db.First(&existing)
	if result.Error == nil {
		configslog.SLog.Debug("Etkinlik kaydı zaten mevcut, oluşturma atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Etkinlik kaydı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	youngStart, _, _ := eventtime.EventTimes()
	config := &models.EventConfig{EventDate: youngStart}

	configslog.SLog.Info("Etkinlik kaydı oluşturuluyor...")
	if err := db.Create(config).Error; err != nil {
		configslog.Log.Error("Etkinlik kaydı oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Etkinlik kaydı başarıyla oluşturuldu.")
	return nil
}

package seeders

import (
	"context"
	"errors"

	"gemma.link/configs/configslog"
	"gemma.link/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAdmin ADMIN_EMAIL / ADMIN_PASSWORD ortam değişkenlerinden sistem
// yöneticisini oluşturur. Admin rolü uygulama içinden atanmaz; tek yolu bu
// seeder'dır. Kimlik zaten varsa parola güncel tutulur.
func SeedSystemAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD tanımlı değil, sistem yöneticisi seed edilmeyecek.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici parolası hashlenemedi", zap.Error(err))
		return err
	}
	hashStr := string(hash)

	var existing models.Identity
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Sistem yöneticisi zaten mevcut (%s), parola güncelleniyor.", email)
		return db.Model(&existing).Update("password_hash", hashStr).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem yöneticisi kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        &email,
		PasswordHash: &hashStr,
		IsAnonymous:  false,
	}
	ctx := context.WithValue(context.Background(), models.ContextUserIDKey, identity.ID)

	configslog.SLog.Infof("Sistem yöneticisi oluşturuluyor: %s", email)
	if err := db.WithContext(ctx).Create(identity).Error; err != nil {
		configslog.Log.Error("Sistem yöneticisi oluşturulamadı", zap.Error(err))
		return err
	}

	profile := &models.Profile{
		UserID:    identity.ID,
		Email:     email,
		FirstName: "Sistem",
		LastName:  "Yöneticisi",
		Role:      models.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(profile).Error; err != nil {
		configslog.Log.Error("Yönetici profili oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem yöneticisi başarıyla oluşturuldu (ID: %s).", identity.ID)
	return nil
}

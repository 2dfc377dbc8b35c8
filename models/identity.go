package models

import (
	"time"

	"gorm.io/gorm"
)

// Identity oturum başına atanan anonim veya e-posta bağlı kimliktir.
// Misafirler anonim oluşturulur; yalnızca seed edilen sistem yöneticisinin
// e-posta + parola bilgisi vardır.
type Identity struct {
	ID           string         `gorm:"type:varchar(36);primaryKey"`
	Email        *string        `gorm:"type:varchar(150);uniqueIndex"`
	IsAnonymous  bool           `gorm:"default:true;index"`
	PasswordHash *string        `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Profile Profile `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan kimliğin UUID'sini context üzerinden taşır.
// BaseModel hook'ları audit kolonlarını bu değerden doldurur.
const ContextUserIDKey contextKey = "acting_identity_id"

// BaseModel tüm tablolarda ortak olan kolonları içerir.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *string        `gorm:"type:varchar(36)"`
	UpdatedBy *string        `gorm:"type:varchar(36)"`
	DeletedBy *string        `gorm:"type:varchar(36)"`
}

// actingIdentityID context'teki kimlik UUID'sini döndürür, yoksa nil.
func actingIdentityID(ctx context.Context) *string {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(ContextUserIDKey).(string); ok && id != "" {
		return &id
	}
	return nil
}

// BeforeCreate CreatedBy/UpdatedBy kolonlarını context'ten doldurur.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id := actingIdentityID(tx.Statement.Context); id != nil {
		b.CreatedBy = id
		b.UpdatedBy = id
	}
	return nil
}

// BeforeUpdate UpdatedBy kolonunu context'ten doldurur.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id := actingIdentityID(tx.Statement.Context); id != nil {
		b.UpdatedBy = id
	}
	return nil
}

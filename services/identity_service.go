package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/identityevents"
	"gemma.link/repositories"
)

// IdentityServiceError özel servis hataları.
type IdentityServiceError string

func (e IdentityServiceError) Error() string { return string(e) }

const (
	ErrIdentityNotFound       IdentityServiceError = "kimlik bulunamadı"
	ErrIdentityCreationFailed IdentityServiceError = "kimlik oluşturulamadı"
)

// IIdentityService kimlik çözümleme işlemleri için arayüz.
// Politika anonim-öncelikli: kimlik, ilk istekte anonim olarak oluşturulur
// ve davet defteri ona hemen bağlanabilir.
type IIdentityService interface {
	// Resolve session'daki UUID'den kimliği bulur.
	Resolve(ctx context.Context, identityID string) (*models.Identity, error)
	// CreateAnonymous yeni bir anonim kimlik ve boş profilini tek
	// transaction'da oluşturur.
	CreateAnonymous(ctx context.Context) (*models.Identity, error)
	// SignOut çıkış olayını duyurur; session'ı kapatmak handler'ın işidir.
	SignOut(identityID string)
	// Events kimlik değişim yayıncısını döndürür.
	Events() *identityevents.Hub
}

// IdentityService IIdentityService arayüzünü uygular.
type IdentityService struct {
	repo        repositories.IIdentityRepository
	profileRepo repositories.IProfileRepository
	hub         *identityevents.Hub
	db          *gorm.DB
}

// NewIdentityService bağımlılıkları dışarıdan alan yeni bir IdentityService oluşturur.
func NewIdentityService(db *gorm.DB, hub *identityevents.Hub) IIdentityService {
	return &IdentityService{
		repo:        repositories.NewIdentityRepository(db),
		profileRepo: repositories.NewProfileRepository(db),
		hub:         hub,
		db:          db,
	}
}

// Resolve kimliği bulur. Session'da bayat bir UUID kalmışsa ErrIdentityNotFound
// döner; altyapı hataları olduğu gibi yukarı taşınır ki çağıran taraf
// "kimlik yok" ile "bilinmiyor" durumlarını ayırt edebilsin.
func (s *IdentityService) Resolve(ctx context.Context, identityID string) (*models.Identity, error) {
	if identityID == "" {
		return nil, ErrIdentityNotFound
	}
	identity, err := s.repo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return identity, nil
}

// CreateAnonymous anonim kimliği ve boş profil satırını birlikte oluşturur.
// Profil satırının her zaman var olması bu adımın sorumluluğudur; sonraki
// profil kayıtları savunmacı upsert'e muhtaç kalmaz.
func (s *IdentityService) CreateAnonymous(ctx context.Context) (*models.Identity, error) {
	identity := &models.Identity{
		ID:          uuid.NewString(),
		IsAnonymous: true,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewIdentityRepositoryTx(tx).Create(ctx, identity); err != nil {
			return err
		}
		profile := &models.Profile{
			UserID: identity.ID,
			Role:   models.RoleInvited,
		}
		return repositories.NewProfileRepositoryTx(tx).Create(ctx, profile)
	})
	if txErr != nil {
		configslog.Log.Error("Anonim kimlik oluşturulamadı", zap.Error(txErr))
		return nil, ErrIdentityCreationFailed
	}

	s.hub.Publish(identityevents.Event{
		Type:       identityevents.EventSignedIn,
		IdentityID: identity.ID,
		At:         time.Now().UTC(),
	})
	configslog.SLog.Infof("Anonim kimlik oluşturuldu: %s", identity.ID)
	return identity, nil
}

// SignOut çıkışı yayınlar.
func (s *IdentityService) SignOut(identityID string) {
	if identityID == "" {
		return
	}
	s.hub.Publish(identityevents.Event{
		Type:       identityevents.EventSignedOut,
		IdentityID: identityID,
		At:         time.Now().UTC(),
	})
}

// Events yayın hub'ını döndürür.
func (s *IdentityService) Events() *identityevents.Hub {
	return s.hub
}

var _ IIdentityService = (*IdentityService)(nil)

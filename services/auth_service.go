package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/identityevents"
	"gemma.link/repositories"
)

// AuthServiceError özel servis hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "e-posta veya parola hatalı"
)

// IAuthService parola ile giriş içindir. Misafirler anonim kimlik kullanır;
// bu yol yalnızca seed edilen sistem yöneticisi içindir.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IIdentityRepository
	hub  *identityevents.Hub
}

// NewAuthService bağımlılıkları dışarıdan alan yeni bir AuthService oluşturur.
func NewAuthService(db *gorm.DB, hub *identityevents.Hub) IAuthService {
	return &AuthService{
		repo: repositories.NewIdentityRepository(db),
		hub:  hub,
	}
}

// Authenticate e-posta + parolayı doğrular. Hesabın var olup olmadığı
// dışarı sızdırılmaz; her başarısızlık aynı hatayı döndürür.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	identity, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Giriş sırasında DB hatası", zap.Error(err))
		return nil, err
	}
	if identity.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*identity.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.hub.Publish(identityevents.Event{
		Type:       identityevents.EventSignedIn,
		IdentityID: identity.ID,
		At:         time.Now().UTC(),
	})
	configslog.SLog.Infof("Yönetici girişi: %s", identity.ID)
	return identity, nil
}

var _ IAuthService = (*AuthService)(nil)

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/identityevents"
	"gemma.link/pkg/queryparams"
	"gemma.link/repositories"
)

// InviteServiceError özel servis hataları.
type InviteServiceError string

func (e InviteServiceError) Error() string { return string(e) }

const (
	ErrInviteNotFound     InviteServiceError = "davet kodu bulunamadı"
	ErrInviteDisabled     InviteServiceError = "davet kodu devre dışı"
	ErrInviteAlreadyUsed  InviteServiceError = "davet kodu zaten kullanılmış"
	ErrInviteInvalidInput InviteServiceError = "geçersiz davet verisi"
	ErrInviteCodeTaken    InviteServiceError = "bu kod zaten mevcut"
	ErrInviteClaimFailed  InviteServiceError = "davet kodu kullanılamadı"
)

// IInviteService davet defteri işlemleri için arayüz.
type IInviteService interface {
	// Claim kodu mevcut kimliğe bağlar. Başarıda aynı transaction içinde
	// profilin segmenti de yazılır; rol hiçbir zaman değişmez.
	Claim(ctx context.Context, code, identityID string) (*models.Invite, error)
	CreateInvite(ctx context.Context, code string, segment models.Segment) (*models.Invite, error)
	GetAllInvitesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ToggleEnabled(ctx context.Context, id uint) (*models.Invite, error)
}

// InviteService IInviteService arayüzünü uygular.
type InviteService struct {
	repo repositories.IInviteRepository
	hub  *identityevents.Hub
	db   *gorm.DB // Claim transaction'ı için
}

// NewInviteService bağımlılıkları dışarıdan alan yeni bir InviteService oluşturur.
func NewInviteService(db *gorm.DB, hub *identityevents.Hub) IInviteService {
	return &InviteService{
		repo: repositories.NewInviteRepository(db),
		hub:  hub,
		db:   db,
	}
}

// Claim koşullu UPDATE + segment yazımını tek transaction'da yapar.
// İki sekme aynı kodu aynı anda denediğinde tam olarak biri başarılı olur;
// kaybeden ErrInviteAlreadyUsed görür. Aynı kimliğin tekrar denemesi de
// reddedilir; kullanım idempotent değildir.
func (s *InviteService) Claim(ctx context.Context, code, identityID string) (*models.Invite, error) {
	code = strings.TrimSpace(code)
	if code == "" || identityID == "" {
		return nil, ErrInviteInvalidInput
	}

	var claimed *models.Invite
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		inviteRepoTx := repositories.NewInviteRepositoryTx(tx)

		won, err := inviteRepoTx.MarkUsed(ctx, code, identityID, time.Now().UTC())
		if err != nil {
			return err
		}
		if !won {
			// Koşul tutmadı; nedeni satırın güncel halinden sınıflandır.
			invite, findErr := inviteRepoTx.FindByCode(ctx, code)
			if findErr != nil {
				if errors.Is(findErr, repositories.ErrNotFound) {
					return ErrInviteNotFound
				}
				return findErr
			}
			if !invite.Enabled {
				return ErrInviteDisabled
			}
			return ErrInviteAlreadyUsed
		}

		invite, err := inviteRepoTx.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if err := repositories.NewProfileRepositoryTx(tx).SetSegment(ctx, identityID, invite.Segment); err != nil {
			return err
		}
		claimed = invite
		return nil
	})
	if txErr != nil {
		var serviceErr InviteServiceError
		if errors.As(txErr, &serviceErr) {
			return nil, serviceErr
		}
		configslog.Log.Error("Claim transaction hatası", zap.String("code", code), zap.String("identityID", identityID), zap.Error(txErr))
		return nil, ErrInviteClaimFailed
	}

	s.hub.Publish(identityevents.Event{
		Type:       identityevents.EventClaimed,
		IdentityID: identityID,
		At:         time.Now().UTC(),
	})
	configslog.SLog.Infof("Davet kodu kullanıldı: %s -> %s (segment: %s)", code, identityID, claimed.Segment)
	return claimed, nil
}

// CreateInvite yeni bir açık davet kodu oluşturur (admin).
func (s *InviteService) CreateInvite(ctx context.Context, code string, segment models.Segment) (*models.Invite, error) {
	code = strings.TrimSpace(code)
	if code == "" || !segment.IsValid() {
		return nil, ErrInviteInvalidInput
	}

	invite := &models.Invite{
		Code:    code,
		Segment: segment,
		Enabled: true,
		IsUsed:  false,
	}
	if err := s.repo.Create(ctx, invite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, ErrInviteCodeTaken
		}
		configslog.Log.Error("Davet kodu oluşturulamadı", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Davet kodu oluşturuldu: %s (segment: %s)", invite.Code, invite.Segment)
	return invite, nil
}

// GetAllInvitesPaginated davetleri sayfalayarak getirir (admin listesi).
func (s *InviteService) GetAllInvitesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	invites, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: invites,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// ToggleEnabled kodu açar/kapatır. Kullanılmış kod da kapatılabilir ama
// USED durumu asla geri alınmaz.
func (s *InviteService) ToggleEnabled(ctx context.Context, id uint) (*models.Invite, error) {
	invite, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}

	if err := s.repo.SetEnabled(ctx, id, !invite.Enabled); err != nil {
		return nil, err
	}
	invite.Enabled = !invite.Enabled
	return invite, nil
}

var _ IInviteService = (*InviteService)(nil)

package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/textsearch"
	"gemma.link/repositories"
)

// ProfileServiceError özel servis hataları.
type ProfileServiceError string

func (e ProfileServiceError) Error() string { return string(e) }

const (
	ErrProfileNotFound   ProfileServiceError = "profil bulunamadı"
	ErrProfileValidation ProfileServiceError = "ad ve soyad en az 2 karakter olmalı"
	ErrProfileSaveFailed ProfileServiceError = "profil kaydedilemedi"
)

// Profil kurulumundaki minimum isim uzunluğu.
const minNameLength = 2

// ProfileUpdate kısmi profil güncellemesidir. Nil alanlar dokunulmadan bırakılır.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	IsCeliac  *bool
	Email     *string
	AvatarURL *string
}

// GuestListEntry admin masa yönetimi için birleştirilmiş misafir satırıdır.
type GuestListEntry struct {
	Profile models.Profile
	RSVP    *models.RSVP
	Table   *models.TableAssignment
}

// IProfileService profil işlemleri için arayüz. Silme işlemi yoktur.
type IProfileService interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	// Save upsert'tür: satır yoksa verilen alanlarla oluşturur, varsa yalnızca
	// verilen alanları yazar. completeSetup true ise isim validasyonu yapılır.
	Save(ctx context.Context, userID string, update ProfileUpdate, completeSetup bool) (*models.Profile, error)
	// ListGuests profilleri LCV ve masa kayıtlarıyla birleştirir (admin).
	// search parametresi aksan duyarsız isim filtresidir.
	ListGuests(ctx context.Context, search string) ([]GuestListEntry, error)
}

// ProfileService IProfileService arayüzünü uygular.
type ProfileService struct {
	repo      repositories.IProfileRepository
	rsvpRepo  repositories.IRSVPRepository
	tableRepo repositories.ITableAssignmentRepository
	db        *gorm.DB
}

// NewProfileService bağımlılıkları dışarıdan alan yeni bir ProfileService oluşturur.
func NewProfileService(db *gorm.DB) IProfileService {
	return &ProfileService{
		repo:      repositories.NewProfileRepository(db),
		rsvpRepo:  repositories.NewRSVPRepository(db),
		tableRepo: repositories.NewTableAssignmentRepository(db),
		db:        db,
	}
}

// validateNames kurulumu tamamlama niyetindeki kayıtta isimleri denetler.
func validateNames(firstName, lastName string) error {
	if len(strings.TrimSpace(firstName)) < minNameLength || len(strings.TrimSpace(lastName)) < minNameLength {
		return ErrProfileValidation
	}
	return nil
}

// GetByUserID profili getirir.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Save kısmi güncellemeyi uygular. Validasyon hatasında profil değişmez.
func (s *ProfileService) Save(ctx context.Context, userID string, update ProfileUpdate, completeSetup bool) (*models.Profile, error) {
	if userID == "" {
		return nil, ErrProfileNotFound
	}

	if completeSetup {
		first := ""
		last := ""
		if update.FirstName != nil {
			first = *update.FirstName
		}
		if update.LastName != nil {
			last = *update.LastName
		}

		// Gönderilmeyen alan için mevcut değere bakılır; kısmi kayıt
		// kurulumu tamamlıyor olabilir.
		if update.FirstName == nil || update.LastName == nil {
			if existing, err := s.repo.FindByUserID(ctx, userID); err == nil {
				if update.FirstName == nil {
					first = existing.FirstName
				}
				if update.LastName == nil {
					last = existing.LastName
				}
			}
		}
		if err := validateNames(first, last); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if update.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*update.LastName)
	}
	if update.IsCeliac != nil {
		updates["is_celiac"] = *update.IsCeliac
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.AvatarURL != nil {
		updates["avatar_url"] = *update.AvatarURL
	}
	if len(updates) == 0 {
		return s.GetByUserID(ctx, userID)
	}

	err := s.repo.UpdateFields(ctx, userID, updates)
	if errors.Is(err, repositories.ErrNotFound) {
		// Satır yoksa verilen alanlarla oluştur. Normal akışta kimlik
		// oluşturma profili de açar; bu dal upsert sözleşmesini korur.
		profile := &models.Profile{UserID: userID, Role: models.RoleInvited}
		applyUpdate(profile, update)
		if createErr := s.repo.Create(ctx, profile); createErr != nil {
			configslog.Log.Error("Profil oluşturulamadı", zap.String("userID", userID), zap.Error(createErr))
			return nil, ErrProfileSaveFailed
		}
		return profile, nil
	}
	if err != nil {
		configslog.Log.Error("Profil güncellenemedi", zap.String("userID", userID), zap.Error(err))
		return nil, ErrProfileSaveFailed
	}

	return s.GetByUserID(ctx, userID)
}

func applyUpdate(profile *models.Profile, update ProfileUpdate) {
	if update.FirstName != nil {
		profile.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		profile.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.IsCeliac != nil {
		profile.IsCeliac = *update.IsCeliac
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.AvatarURL != nil {
		profile.AvatarURL = *update.AvatarURL
	}
}

// ListGuests profil, LCV ve masa kayıtlarını tek tek çekip bellekte birleştirir.
// Üç tablo da küçüktür (tek etkinliğin misafir listesi); JOIN kurmaya değmez.
func (s *ProfileService) ListGuests(ctx context.Context, search string) ([]GuestListEntry, error) {
	var profiles []models.Profile
	var err error
	if strings.TrimSpace(search) != "" {
		fragment, args := textsearch.SQLFilter("(first_name || ' ' || last_name)", search)
		profiles, err = s.repo.FindAllFiltered(ctx, fragment, args)
	} else {
		profiles, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	rsvps, err := s.rsvpRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := s.tableRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rsvpByUser := make(map[string]*models.RSVP, len(rsvps))
	for i := range rsvps {
		rsvpByUser[rsvps[i].UserID] = &rsvps[i]
	}
	tableByUser := make(map[string]*models.TableAssignment, len(tables))
	for i := range tables {
		tableByUser[tables[i].UserID] = &tables[i]
	}

	entries := make([]GuestListEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, GuestListEntry{
			Profile: p,
			RSVP:    rsvpByUser[p.UserID],
			Table:   tableByUser[p.UserID],
		})
	}
	return entries, nil
}

var _ IProfileService = (*ProfileService)(nil)

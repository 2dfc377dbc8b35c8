package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/repositories"
)

// RSVPServiceError özel servis hataları.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidStatus   RSVPServiceError = "geçersiz LCV durumu"
	ErrRSVPSaveFailed      RSVPServiceError = "LCV kaydedilemedi"
	ErrTableLabelRequired  RSVPServiceError = "masa etiketi boş olamaz"
	ErrTableAssignFailed   RSVPServiceError = "masa ataması kaydedilemedi"
)

// IRSVPService LCV ve masa ataması işlemleri için arayüz.
// İki kayıt türü de kimlik başına tektir; yazma son-yazan-kazanır.
type IRSVPService interface {
	// SetStatus durumu tam üzerine yazar (idempotent).
	SetStatus(ctx context.Context, userID string, status models.RSVPStatus, note string) error
	// GetStatus kayıt yoksa PENDING döner; yokluk hata değildir.
	GetStatus(ctx context.Context, userID string) (models.RSVPStatus, *models.RSVP, error)
	// AssignTable yalnızca admin akışından çağrılır; etiket formatı serbesttir,
	// tek şart boş olmamasıdır.
	AssignTable(ctx context.Context, userID, label string) error
	GetTable(ctx context.Context, userID string) (*models.TableAssignment, error)
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	repo      repositories.IRSVPRepository
	tableRepo repositories.ITableAssignmentRepository
}

// NewRSVPService bağımlılıkları dışarıdan alan yeni bir RSVPService oluşturur.
func NewRSVPService(db *gorm.DB) IRSVPService {
	return &RSVPService{
		repo:      repositories.NewRSVPRepository(db),
		tableRepo: repositories.NewTableAssignmentRepository(db),
	}
}

// SetStatus misafirin cevabını yazar.
func (s *RSVPService) SetStatus(ctx context.Context, userID string, status models.RSVPStatus, note string) error {
	if userID == "" || !status.IsValid() {
		return ErrRSVPInvalidStatus
	}

	rsvp := &models.RSVP{
		UserID: userID,
		Status: status,
		Note:   strings.TrimSpace(note),
	}
	if err := s.repo.Upsert(ctx, rsvp); err != nil {
		configslog.Log.Error("LCV kaydedilemedi", zap.String("userID", userID), zap.Error(err))
		return ErrRSVPSaveFailed
	}
	configslog.SLog.Infof("LCV güncellendi: %s -> %s", userID, status)
	return nil
}

// GetStatus kaydı okur; kayıt yoksa PENDING varsayılır.
func (s *RSVPService) GetStatus(ctx context.Context, userID string) (models.RSVPStatus, *models.RSVP, error) {
	rsvp, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.RSVPStatusPending, nil, nil
		}
		return "", nil, err
	}
	return rsvp.Status, rsvp, nil
}

// AssignTable masa etiketini yazar (idempotent üzerine yazma).
func (s *RSVPService) AssignTable(ctx context.Context, userID, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrTableLabelRequired
	}
	if userID == "" {
		return ErrTableAssignFailed
	}

	assignment := &models.TableAssignment{UserID: userID, TableLabel: label}
	if err := s.tableRepo.Upsert(ctx, assignment); err != nil {
		configslog.Log.Error("Masa ataması kaydedilemedi", zap.String("userID", userID), zap.Error(err))
		return ErrTableAssignFailed
	}
	configslog.SLog.Infof("Masa atandı: %s -> %s", userID, label)
	return nil
}

// GetTable misafirin masa atamasını okur; kayıt yoksa nil döner (atanmamış).
func (s *RSVPService) GetTable(ctx context.Context, userID string) (*models.TableAssignment, error) {
	assignment, err := s.tableRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return assignment, nil
}

var _ IRSVPService = (*RSVPService)(nil)

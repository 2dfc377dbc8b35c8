package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
)

// ITableAssignmentRepository masa ataması veritabanı işlemleri için arayüz.
type ITableAssignmentRepository interface {
	// Upsert atamayı bulursa üzerine yazar, yoksa oluşturur (idempotent).
	Upsert(ctx context.Context, assignment *models.TableAssignment) error
	FindByUserID(ctx context.Context, userID string) (*models.TableAssignment, error)
	FindAll(ctx context.Context) ([]models.TableAssignment, error)
}

// TableAssignmentRepository ITableAssignmentRepository arayüzünü uygular.
type TableAssignmentRepository struct {
	db *gorm.DB
}

// NewTableAssignmentRepository yeni bir TableAssignmentRepository örneği oluşturur.
func NewTableAssignmentRepository(db *gorm.DB) ITableAssignmentRepository {
	return &TableAssignmentRepository{db: db}
}

func (r *TableAssignmentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Upsert masa etiketini yazar. Yalnızca admin akışından çağrılır.
func (r *TableAssignmentRepository) Upsert(ctx context.Context, assignment *models.TableAssignment) error {
	if assignment == nil || assignment.UserID == "" || assignment.TableLabel == "" {
		return errors.New("geçersiz masa ataması verisi")
	}
	return r.getDB(ctx).Where(models.TableAssignment{UserID: assignment.UserID}).
		Assign(models.TableAssignment{TableLabel: assignment.TableLabel}).
		FirstOrCreate(assignment).Error
}

// FindByUserID kimliğin masa atamasını bulur. Kayıt yoksa ErrNotFound döner;
// yokluk "atanmamış" demektir.
func (r *TableAssignmentRepository) FindByUserID(ctx context.Context, userID string) (*models.TableAssignment, error) {
	if userID == "" {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var assignment models.TableAssignment
	err := r.getDB(ctx).Where("user_id = ?", userID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TableAssignmentRepository.FindByUserID: DB hatası", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &assignment, nil
}

// FindAll tüm atamaları getirir (admin masa yönetimi).
func (r *TableAssignmentRepository) FindAll(ctx context.Context) ([]models.TableAssignment, error) {
	var assignments []models.TableAssignment
	if err := r.getDB(ctx).Find(&assignments).Error; err != nil {
		configslog.Log.Error("TableAssignmentRepository.FindAll: DB hatası", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

var _ ITableAssignmentRepository = (*TableAssignmentRepository)(nil)

package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gemma.link/configs/configslog"
	"gemma.link/models"
)

// IEventConfigRepository tek satırlık etkinlik kaydı için arayüz.
type IEventConfigRepository interface {
	Get(ctx context.Context) (*models.EventConfig, error)
	Create(ctx context.Context, config *models.EventConfig) error
}

// EventConfigRepository IEventConfigRepository arayüzünü uygular.
type EventConfigRepository struct {
	db *gorm.DB
}

// NewEventConfigRepository yeni bir EventConfigRepository örneği oluşturur.
func NewEventConfigRepository(db *gorm.DB) IEventConfigRepository {
	return &EventConfigRepository{db: db}
}

func (r *EventConfigRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Get etkinlik kaydını okur. Tanılama sayfası bunu bağlantı kontrolü olarak kullanır.
func (r *EventConfigRepository) Get(ctx context.Context) (*models.EventConfig, error) {
	var config models.EventConfig
	err := r.getDB(ctx).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventConfigRepository.Get: DB hatası", zap.Error(err))
		return nil, err
	}
	return &config, nil
}

// Create etkinlik kaydını oluşturur (seeder).
func (r *EventConfigRepository) Create(ctx context.Context, config *models.EventConfig) error {
	if config == nil || config.EventDate.IsZero() {
		return errors.New("geçersiz etkinlik kaydı")
	}
	return r.getDB(ctx).Create(config).Error
}

var _ IEventConfigRepository = (*EventConfigRepository)(nil)

package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"gemma.link/configs/configslog"
)

// Config uygulamanın tüm ortam ayarlarını tutar.
// Zorunlu alanlar eksikse uygulama normal rotaları değil,
// tanılama ekranını servis eder (bkz. routes.SetupRoutes).
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"3000"`

	// Postgres bağlantı DSN'i. Örn:
	// host=localhost user=gemma password=... dbname=gemma port=5432 sslmode=disable
	DatabaseDSN string `env:"DATABASE_DSN"`

	// Seeder'ın oluşturacağı sistem yöneticisi.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"gemma_session"`
	SessionSecure     bool   `env:"SESSION_SECURE" envDefault:"false"`
}

// ConfigError eksik zorunlu ayarları taşır (ConfigurationError taksonomisi).
type ConfigError struct {
	MissingVars []string
}

func (e *ConfigError) Error() string {
	return "eksik zorunlu ortam değişkenleri: " + strings.Join(e.MissingVars, ", ")
}

// Load .env dosyasını (varsa) yükler ve ortamı Config struct'ına parse eder.
// .env bulunamaması hata değildir; production'da değişkenler dışarıdan gelir.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ortam değişkenleri parse edilemedi: %w", err)
	}
	return cfg, nil
}

// Validate zorunlu alanları kontrol eder. Hata tipi *ConfigError'dur ki
// tanılama ekranı hangi değişkenlerin eksik olduğunu gösterebilsin.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if len(missing) > 0 {
		return &ConfigError{MissingVars: missing}
	}
	return nil
}

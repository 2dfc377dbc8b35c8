package configsdatabase

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gemma.link/configs/configslog"
)

var db *gorm.DB

// InitDB verilen DSN ile Postgres bağlantısını açar ve havuz ayarlarını yapar.
// Bağlantı kurulamazsa hata döner; çağıran taraf bunu ConnectivityError olarak
// ele alıp tanılama ekranına düşer (uygulamayı öldürmez).
func InitDB(dsn string) error {
	if dsn == "" {
		return errors.New("veritabanı DSN boş")
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı açılamadı", zap.Error(err))
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Error("Alt sql.DB alınamadı", zap.Error(err))
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = gormDB
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
	return nil
}

// GetDB açık GORM bağlantısını döndürür. InitDB'den önce çağrılmamalıdır.
func GetDB() *gorm.DB {
	return db
}

// Ping bağlantının hâlâ canlı olduğunu doğrular (tanılama ve açılış kontrolü).
func Ping() error {
	if db == nil {
		return errors.New("veritabanı bağlantısı başlatılmamış")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CloseDB bağlantı havuzunu kapatır. main'de defer ile çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Bağlantı kapatılırken sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

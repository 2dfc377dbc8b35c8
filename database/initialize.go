package database

import (
	"gemma.link/configs"
	"gemma.link/configs/configslog"
	"gemma.link/database/migrations"
	"gemma.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, cfg *configs.Config, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(tx, cfg); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla oluşturur:
// önce kimlikler, sonra onlara bağlı kayıtlar.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Identity migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateIdentitiesTable(db); err != nil {
		configslog.Log.Error("Identities tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Identity migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Profile migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateProfilesTable(db); err != nil {
		configslog.Log.Error("Profiles tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Profile migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Invite migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateInvitesTable(db); err != nil {
		configslog.Log.Error("Invites tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Invite migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> RSVP migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateRSVPsTable(db); err != nil {
		configslog.Log.Error("RSVPs tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> RSVP migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> TableAssignment migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateTableAssignmentsTable(db); err != nil {
		configslog.Log.Error("Table_assignments tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> TableAssignment migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> EventConfig migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateEventConfigsTable(db); err != nil {
		configslog.Log.Error("Event_configs tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> EventConfig migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, cfg *configs.Config) error {
	configslog.SLog.Info("Sistem yöneticisi kontrol ediliyor/oluşturuluyor/güncelleniyor...")
	if err := seeders.SeedSystemAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		configslog.Log.Error("Sistem yöneticisi seed/update işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> EventConfig seeder çalıştırılıyor...")
	if err := seeders.SeedEventConfig(db); err != nil {
		configslog.Log.Error("Event_configs tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> EventConfig seeder tamamlandı.")

	if cfg.AppEnv == "development" {
		configslog.SLog.Info(" -> Örnek davet kodu seeder çalıştırılıyor...")
		if err := seeders.SeedSampleInvites(db); err != nil {
			configslog.Log.Error("Invites tablosu seed edilemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Info(" -> Örnek davet kodu seeder tamamlandı.")
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}

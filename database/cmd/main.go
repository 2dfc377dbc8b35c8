package main

import (
	"flag"

	"gemma.link/configs"
	"gemma.link/configs/configsdatabase"
	"gemma.link/configs/configslog"
	"gemma.link/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.SLog.Fatalf("Yapılandırma yüklenemedi: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		configslog.SLog.Fatalf("Yapılandırma geçersiz: %v", err)
	}

	if err := configsdatabase.InitDB(cfg.DatabaseDSN); err != nil {
		configslog.SLog.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, cfg, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}

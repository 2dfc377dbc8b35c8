package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"gemma.link/configs"
	"gemma.link/configs/configsdatabase"
	"gemma.link/configs/configslog"
	"gemma.link/pkg/identityevents"
	"gemma.link/routes"
	"gemma.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.SLog.Fatalf("Yapılandırma yüklenemedi: %v", err)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main_layout",
		PassLocalsToViews: true,
	})

	// Zorunlu ayarlar eksikse ya da veritabanına ulaşılamıyorsa uygulama
	// ölmez; yalnızca tanılama ekranı servis edilir.
	if err := cfg.Validate(); err != nil {
		configslog.Log.Error("Yapılandırma eksik, tanılama modunda başlatılıyor", zap.Error(err))
		routes.SetupDiagnosticRoutes(app, err)
		listen(app, cfg)
		return
	}

	if err := configsdatabase.InitDB(cfg.DatabaseDSN); err != nil {
		configslog.Log.Error("Veritabanına ulaşılamıyor, tanılama modunda başlatılıyor", zap.Error(err))
		routes.SetupDiagnosticRoutes(app, err)
		listen(app, cfg)
		return
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()
	hub := identityevents.NewHub()
	startAuditSubscriber(hub)

	deps := routes.Dependencies{
		Config:          cfg,
		DB:              db,
		SessionStore:    configs.SetupSession(cfg),
		IdentityService: services.NewIdentityService(db, hub),
		InviteService:   services.NewInviteService(db, hub),
		ProfileService:  services.NewProfileService(db),
		RSVPService:     services.NewRSVPService(db),
		AuthService:     services.NewAuthService(db, hub),
	}
	routes.SetupRoutes(app, deps)

	listen(app, cfg)
}

// startAuditSubscriber kimlik olaylarını log'a akıtan kalıcı aboneyi başlatır.
func startAuditSubscriber(hub *identityevents.Hub) {
	events, _ := hub.Subscribe(64)
	go func() {
		for event := range events {
			configslog.Log.Info("Kimlik olayı",
				zap.String("type", string(event.Type)),
				zap.String("identityID", event.IdentityID),
				zap.Time("at", event.At),
			)
		}
	}()
}

func listen(app *fiber.App, cfg *configs.Config) {
	addr := ":" + cfg.AppPort
	configslog.SLog.Infof("Sunucu dinlemede: %s (ortam: %s)", addr, cfg.AppEnv)
	if err := app.Listen(addr); err != nil {
		configslog.SLog.Fatalf("Sunucu başlatılamadı: %v", err)
	}
}

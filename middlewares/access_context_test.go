package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gemma.link/configs/configslog"
	"gemma.link/models"
	"gemma.link/pkg/identityevents"
	"gemma.link/services"
	"gemma.link/utils"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(10000)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	err = db.AutoMigrate(
		&models.Identity{},
		&models.Profile{},
		&models.Invite{},
		&models.RSVP{},
		&models.TableAssignment{},
	)
	if err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// newContextApp tam middleware zincirini kurar ve son handler'da erişim
// durumu + kimlik bilgisini düz metin döndürür.
func newContextApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	hub := identityevents.NewHub()
	identitySvc := services.NewIdentityService(db, hub)
	profileSvc := services.NewProfileService(db)
	inviteSvc := services.NewInviteService(db, hub)
	store := session.New()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	})
	app.Use(AccessContext(identitySvc, profileSvc))
	app.Use(RedeemPendingInvite(inviteSvc))
	app.Get("/durum", func(c *fiber.Ctx) error {
		return c.SendString(CurrentAccessState(c).String() + "|" + CurrentIdentityID(c))
	})
	// Testlerin ertelenmiş akışı tetikleyebilmesi için kodu session'a yazan uç.
	app.Post("/kod", func(c *fiber.Ctx) error {
		sess, err := utils.SessionStart(c)
		if err != nil {
			return err
		}
		return utils.SetPendingInviteCode(sess, c.Query("code"))
	})
	return app
}

func requestWithCookie(t *testing.T, app *fiber.App, cookie string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/durum", nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	body := make([]byte, 256)
	n, _ := resp.Body.Read(body)
	return resp, string(body[:n])
}

func TestAccessContextCreatesAnonymousIdentity(t *testing.T) {
	db := newTestDB(t)
	app := newContextApp(t, db)

	resp, body := requestWithCookie(t, app, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	parts := strings.SplitN(body, "|", 2)
	if len(parts) != 2 {
		t.Fatalf("beklenmeyen gövde: %q", body)
	}
	// Anonim kimlik açıldı ama davet kodu talep edilmedi; kapıdan geçmemiş sayılır.
	if parts[0] != "UNAUTHENTICATED" {
		t.Errorf("durum = %s, beklenen UNAUTHENTICATED", parts[0])
	}
	if parts[1] == "" {
		t.Error("kimlik UUID'si boş olmamalı")
	}

	var count int64
	if err := db.Model(&models.Identity{}).Count(&count).Error; err != nil {
		t.Fatalf("sayım başarısız: %v", err)
	}
	if count != 1 {
		t.Errorf("tek anonim kimlik oluşmalıydı, bulunan: %d", count)
	}
}

func TestAccessContextReusesSessionIdentity(t *testing.T) {
	db := newTestDB(t)
	app := newContextApp(t, db)

	resp, first := requestWithCookie(t, app, "")
	cookie := resp.Header.Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("ilk istekte session çerezi dönmeliydi")
	}
	cookie = strings.SplitN(cookie, ";", 2)[0]

	_, second := requestWithCookie(t, app, cookie)
	if first != second {
		t.Errorf("aynı çerezle kimlik değişmemeli: %q != %q", first, second)
	}

	var count int64
	if err := db.Model(&models.Identity{}).Count(&count).Error; err != nil {
		t.Fatalf("sayım başarısız: %v", err)
	}
	if count != 1 {
		t.Errorf("ikinci istek yeni kimlik açmamalıydı, bulunan: %d", count)
	}
}

func TestRedeemPendingInviteAdmitsGuest(t *testing.T) {
	db := newTestDB(t)
	hub := identityevents.NewHub()
	inviteSvc := services.NewInviteService(db, hub)
	if _, err := inviteSvc.CreateInvite(context.Background(), "G15-Y-9", models.SegmentYoung); err != nil {
		t.Fatalf("davet kodu oluşturulamadı: %v", err)
	}

	app := newContextApp(t, db)

	// İlk istek kimliği açar.
	resp, _ := requestWithCookie(t, app, "")
	cookie := strings.SplitN(resp.Header.Get("Set-Cookie"), ";", 2)[0]

	// Kod session'a yazılır (POST /login'in ertelenmiş dalı).
	req := httptest.NewRequest(http.MethodPost, "/kod?code=G15-Y-9", nil)
	req.Header.Set("Cookie", cookie)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("kod isteği başarısız: %v", err)
	}

	// Bir sonraki istekte middleware kodu bir kez kullanır; segment yazılır
	// ve misafir aynı istek içinde kapıdan geçmiş sayılır.
	_, body := requestWithCookie(t, app, cookie)
	if !strings.HasPrefix(body, "AUTHENTICATED_INCOMPLETE") {
		t.Errorf("durum = %q, beklenen AUTHENTICATED_INCOMPLETE", body)
	}

	var invite models.Invite
	if err := db.Where("code = ?", "G15-Y-9").First(&invite).Error; err != nil {
		t.Fatalf("davet kodu bulunamadı: %v", err)
	}
	if !invite.IsUsed || invite.UsedBy == nil {
		t.Errorf("kod kullanılmış işaretlenmeliydi: %+v", invite)
	}

	// Kod düştü; bir sonraki istek yeniden deneme yapmaz.
	_, again := requestWithCookie(t, app, cookie)
	if !strings.HasPrefix(again, "AUTHENTICATED_INCOMPLETE") {
		t.Errorf("durum = %q, beklenen AUTHENTICATED_INCOMPLETE", again)
	}
}

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gemma.link/configs"
	"gemma.link/middlewares"
	"gemma.link/pkg/eventtime"
	"gemma.link/pkg/renderer"
	"gemma.link/repositories"
)

// DebugHandler tanılama sayfasını yürütür: ortam raporu, bağlantı kontrolü
// ve hesaplanan etkinlik saatleri. Gizli değerlerin kendisi asla yazılmaz,
// yalnızca tanımlı olup olmadıkları raporlanır.
type DebugHandler struct {
	cfg             *configs.Config
	eventConfigRepo repositories.IEventConfigRepository
}

// NewDebugHandler bağımlılıkları dışarıdan alan yeni bir DebugHandler oluşturur.
func NewDebugHandler(cfg *configs.Config, db *gorm.DB) *DebugHandler {
	return &DebugHandler{
		cfg:             cfg,
		eventConfigRepo: repositories.NewEventConfigRepository(db),
	}
}

// ShowDebug tanılama sayfasını gösterir (GET /debug).
func (h *DebugHandler) ShowDebug(c *fiber.Ctx) error {
	youngStart, adultStart, end := eventtime.EventTimes()
	now := time.Now()

	dbStatus := "OK"
	var eventDate string
	config, err := h.eventConfigRepo.Get(c.UserContext())
	switch {
	case err == nil:
		eventDate = eventtime.FormatEventDate(config.EventDate)
	case errors.Is(err, repositories.ErrNotFound):
		dbStatus = "BAĞLANTI VAR, ETKİNLİK KAYDI YOK (seeder çalıştırın)"
	default:
		dbStatus = "BAĞLANTI HATASI: " + err.Error()
	}

	profile := middlewares.CurrentProfile(c)
	var segment string
	if profile != nil && profile.Segment != nil {
		segment = string(*profile.Segment)
	}

	return renderer.Render(c, "debug/index", "layouts/main_layout", fiber.Map{
		"Title":       "Tanılama",
		"AppEnv":      h.cfg.AppEnv,
		"AppPort":     h.cfg.AppPort,
		"DSNSet":      h.cfg.DatabaseDSN != "",
		"AdminSet":    h.cfg.AdminEmail != "" && h.cfg.AdminPassword != "",
		"DBStatus":    dbStatus,
		"EventDate":   eventDate,
		"IdentityID":  middlewares.CurrentIdentityID(c),
		"AccessState": middlewares.CurrentAccessState(c).String(),
		"Segment":     segment,
		"Timezone":    eventtime.EventTimezone,
		"YoungStart":  eventtime.FormatEventDate(youngStart),
		"AdultStart":  eventtime.FormatEventDate(adultStart),
		"EventEnd":    eventtime.FormatEventDate(end),
		"ServerNow":   eventtime.FormatEventDate(now),
	})
}

// Package renderer view render çağrılarını tek noktada toplar.
package renderer

import (
	"github.com/gofiber/fiber/v2"

	"gemma.link/pkg/flashmessages"
)

// View veri anahtarları; şablonlar mesajları bu isimlerle okur.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash verisini render map'ine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render view'ı verilen layout ile çizer. status verilmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(code).Render(view, data, layout)
}

// Package flashmessages yönlendirmeler arasında tek seferlik mesaj taşır.
// Mesajlar session'da saklanır, ilk okumada silinir.
package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"gemma.link/utils"
)

// Flash mesaj session anahtarları.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashData bir istekte gösterilecek mesajları taşır.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage verilen anahtara mesaj yazar (FlashSuccessKey/FlashErrorKey).
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan düşürür.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data, err
	}

	if msg, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = msg
		sess.Delete(FlashSuccessKey)
	}
	if msg, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = msg
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}

// SetFlashFormData hatalı form verisini bir sonraki render için saklar.
func SetFlashFormData(c *fiber.Ctx, form interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(form)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini map olarak döndürür ve düşürür.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()

	var form map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil
	}
	return form
}

package notify

import (
	"fmt"
	"strings"

	"github.com/Anhpro1412/Menu-web/internal/menu"
	"github.com/Anhpro1412/Menu-web/internal/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram pushes new-order summaries to the admin chat. Failures are
// the caller's to log; they never fail the order itself.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) OrderPlaced(o order.Order) error {
	_, err := t.api.Send(tgbotapi.NewMessage(t.chatID, FormatOrder(o)))
	return err
}

// FormatOrder renders the order the way it used to appear in the server log.
func FormatOrder(o order.Order) string {
	var b strings.Builder
	b.WriteString("🧾 Đơn hàng mới\n")
	fmt.Fprintf(&b, "Mã đơn: %s\n", o.Code)
	fmt.Fprintf(&b, "Khách: %s (%s)\n", o.Customer.Name, o.Customer.Phone)
	fmt.Fprintf(&b, "Số món: %d\n", len(o.Items))
	fmt.Fprintf(&b, "Tổng: %s\n", menu.FormatVND(o.Total))
	fmt.Fprintf(&b, "Thời gian: %s", o.CreatedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

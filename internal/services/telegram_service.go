package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/dkadris/storefront/internal/models"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the workshop admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// FormatPrice formats price with currency and thousand separators.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "NGN"
	}
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String() + " " + currency
}

// NotifyOrderInquiry sends a new custom-order inquiry to the admin chat,
// measurements included.
func (s *TelegramService) NotifyOrderInquiry(order models.Order) error {
	if s.adminChatID == "" {
		return nil
	}

	var measurements strings.Builder
	for _, field := range order.Measurements.Fields() {
		measurements.WriteString(fmt.Sprintf("%s: %s\n", field[0], field[1]))
	}

	referral := ""
	if order.ReferrerCode != "" {
		referral = fmt.Sprintf("\n<b>🔗 Referral Code:</b> %s", order.ReferrerCode)
	}

	message := fmt.Sprintf(`<b>🧵 NEW CUSTOM ORDER!</b>
<b>📋 Order:</b> %s
<b>👕 Product:</b> %s
<b>✂️ Style:</b> %s
<b>🔢 Quantity:</b> %d
<b>📐 Measurements:</b>
%s<b>💰 Total:</b> %s%s
━━━━━━━━━━━━━━━━━━
<i>D-Kadris Tailoring</i>`,
		order.ID,
		order.ProductName,
		order.ProductType,
		order.Quantity,
		measurements.String(),
		FormatPrice(order.Total, "NGN"),
		referral,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

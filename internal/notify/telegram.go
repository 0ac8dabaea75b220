package notify

import (
	"fmt"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// maxMessageLen is the Telegram limit for a single text message.
const maxMessageLen = 4096

// Bot is the subset of the Telegram client used for delivery.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramSender struct {
	bot    Bot
	logger *logrus.Logger
}

func NewTelegramSender(bot Bot, logger *logrus.Logger) *TelegramSender {
	if logger == nil {
		logger = logrus.New()
	}
	return &TelegramSender{bot: bot, logger: logger}
}

// SendText delivers text, split in several messages when too long.
func (s *TelegramSender) SendText(chatID int64, text string) error {
	for _, part := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(chatID, part)
		msg.DisableWebPagePreview = true
		if _, err := s.bot.Send(msg); err != nil {
			s.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// SendFile uploads a file with an optional caption.
func (s *TelegramSender) SendFile(chatID int64, path, caption string) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	if _, err := s.bot.Send(doc); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"chat_id": chatID,
			"file":    path,
		}).Error("Failed to send document")
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

// SplitMessage cuts text into parts of at most limit runes, preferring line
// breaks as cut points.
func SplitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/config"
	"timesheet-bot/internal/notify"
	"timesheet-bot/internal/service"
	"timesheet-bot/internal/store"
)

// Bot is the Telegram API surface used by the handler. *telegram.Client
// satisfies it.
type Bot interface {
	notify.Bot
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Services struct {
	Employees *service.EmployeeService
	Company   *service.CompanyService
	Timesheet *service.TimesheetService
	Leaves    *service.LeaveService
	Closures  *service.ClosureService
	Reports   *service.ReportService
}

type Handler struct {
	bot       Bot
	sender    *notify.TelegramSender
	employees *service.EmployeeService
	company   *service.CompanyService
	timesheet *service.TimesheetService
	leaves    *service.LeaveService
	closures  *service.ClosureService
	reports   *service.ReportService
	config    *config.BotConfig
	logger    *logrus.Logger
	now       func() time.Time
}

func NewHandler(bot Bot, svc Services, cfg *config.BotConfig, logger *logrus.Logger) *Handler {
	return &Handler{
		bot:       bot,
		sender:    notify.NewTelegramSender(bot, logger),
		employees: svc.Employees,
		company:   svc.Company,
		timesheet: svc.Timesheet,
		leaves:    svc.Leaves,
		closures:  svc.Closures,
		reports:   svc.Reports,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	if !h.isOwner(chatID) {
		return
	}

	// drop the inline keyboard
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.bot.Send(editMsg)

	switch {
	case strings.HasPrefix(data, confirmDeleteEmployee):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, confirmDeleteEmployee), 10, 32)
		if err != nil {
			break
		}
		h.deleteEmployeeConfirmed(chatID, uint(id))
	case data == cancelDelete:
		h.reply(chatID, "❌ Eliminazione annullata.")
	}

	if _, err := h.bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		h.logger.WithError(err).Debug("Failed to answer callback")
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	h.logger.WithFields(logrus.Fields{
		"chat_id": message.Chat.ID,
		"user":    username,
	}).Info(message.Text)

	if !h.isOwner(message.Chat.ID) {
		h.logger.WithField("chat_id", message.Chat.ID).Warn("Message from unauthorized chat")
		h.reply(message.Chat.ID, "⛔ Questo bot è riservato al titolare.")
		return
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "Usa /help per l'elenco dei comandi.")
}

// isOwner reports whether chatID may use the bot. Without a configured owner
// every chat is accepted.
func (h *Handler) isOwner(chatID int64) bool {
	return h.config == nil || h.config.OwnerChatID == 0 || h.config.OwnerChatID == chatID
}

func (h *Handler) reply(chatID int64, text string) {
	if err := h.sender.SendText(chatID, text); err != nil {
		h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to reply")
	}
}

func (h *Handler) replyError(chatID int64, action string, err error) {
	h.logger.WithError(err).WithField("action", action).Warn("Command failed")
	h.reply(chatID, fmt.Sprintf("❌ %s: %s", action, describeError(err)))
}

// describeError translates domain errors for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, store.ErrEmployeeNotFound):
		return "dipendente non trovato"
	case errors.Is(err, store.ErrLeaveNotFound):
		return "assenza non trovata"
	case errors.Is(err, store.ErrLeaveOverlap):
		return "si sovrappone a un'altra assenza"
	case errors.Is(err, store.ErrInvalidSchedule):
		return "orario non valido (7 valori da 0 a 24)"
	case errors.Is(err, store.ErrInvalidHours):
		return "le ore devono essere tra 0 e 24"
	case errors.Is(err, store.ErrInvalidDate):
		return "data non valida"
	case errors.Is(err, store.ErrInvalidEmployee):
		return "dati dipendente non validi"
	case errors.Is(err, store.ErrInvalidCompany):
		return "impostazioni azienda non valide"
	case errors.Is(err, store.ErrInvalidLeave):
		return "assenza non valida"
	case errors.Is(err, notify.ErrMailDisabled):
		return "invio e-mail non configurato"
	case errors.Is(err, notify.ErrNoRecipients):
		return "nessun indirizzo e-mail configurato per l'azienda"
	}
	return err.Error()
}

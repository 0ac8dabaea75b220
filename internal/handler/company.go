package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"timesheet-bot/internal/export"
	"timesheet-bot/internal/service"
)

func (h *Handler) companySettings(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, service.FormatCompany(h.company.Get()))
		return
	}

	field, value, _ := strings.Cut(args, " ")
	c, err := h.company.SetField(field, value)
	if err != nil {
		h.replyError(chatID, "Impostazione non salvata", err)
		return
	}
	h.reply(chatID, "✅ Impostazioni aggiornate.\n\n"+service.FormatCompany(c))
}

func (h *Handler) showClosures(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	month, year, err := parsePeriod(args, h.now())
	if err != nil {
		h.replyError(chatID, "Periodo non valido", err)
		return
	}

	days := h.closures.ForMonth(month, year)
	if len(days) == 0 {
		h.reply(chatID, fmt.Sprintf("Nessuna chiusura aziendale in %s.", export.Period(month, year)))
		return
	}

	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
	}
	h.reply(chatID, fmt.Sprintf("🔒 Chiusure %s:\n%s", export.Period(month, year), strings.Join(dates, "\n")))
}
